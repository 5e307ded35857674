package entity

// ChallengeWinner is an append-only record of resolved challenges with a
// paid-out prize.
type ChallengeWinner struct {
	Base

	ChallengeID   string    `gorm:"index;not null"`
	Challenge     Challenge `gorm:"foreignKey:ChallengeID"`
	UserID        string    `gorm:"not null"`
	ReactionCount int

	// PrizeAmount is in base units of the reward token.
	PrizeAmount int64
}

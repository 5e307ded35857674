package entity

type ChallengeEntry struct {
	Base

	ChallengeID string    `gorm:"index;not null"`
	Challenge   Challenge `gorm:"foreignKey:ChallengeID"`
	UserID      string    `gorm:"not null"`
	MessageID   string    `gorm:"index;not null"`

	ReactionCount int
}

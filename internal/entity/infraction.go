package entity

// Infraction records a single profane message.
type Infraction struct {
	Base

	UserID  string `gorm:"index;not null"`
	SpaceID string `gorm:"index;not null"`
	Message string `gorm:"not null"`
}

package entity

import "time"

// Challenge is a themed, time-boxed photo contest. Nothing enforces a single
// active challenge per space; resolution handles every active row it finds.
type Challenge struct {
	Base

	SpaceID   string `gorm:"index;not null"`
	ChannelID string `gorm:"not null"`
	Theme     string `gorm:"not null"`
	StartTime time.Time
	EndTime   time.Time
	Active    bool `gorm:"index"`
}

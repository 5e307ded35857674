package entity

import "time"

// BotChannel is a channel opted into the daily greeting broadcast.
type BotChannel struct {
	Base

	SpaceID          string `gorm:"not null"`
	ChannelID        string `gorm:"uniqueIndex;not null"`
	ScheduledMessage string
	CronEnabled      bool
	LastCronPost     time.Time
}

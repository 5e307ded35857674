package entity

import "time"

// UserStat keeps one engagement counter row per user of a space.
type UserStat struct {
	UserID        string `gorm:"primarykey"`
	SpaceID       string `gorm:"index;not null"`
	MessageCount  int
	ReactionCount int
	LastActive    time.Time
}

package entity

import "github.com/lenstown/backend/pkg/enum"

type PayoutPurposeType string

var (
	PayoutPurposeTip   = enum.New(PayoutPurposeType("tip"))
	PayoutPurposePrize = enum.New(PayoutPurposeType("prize"))
)

type PayoutStatusType string

var (
	PayoutStatusSubmitted = enum.New(PayoutStatusType("submitted"))
	PayoutStatusFailure   = enum.New(PayoutStatusType("failure"))
)

// TokenPayout is an append-only record of every on-chain transfer the bot
// submitted (or tried to).
type TokenPayout struct {
	Base

	UserID  string `gorm:"index;not null"`
	SpaceID string `gorm:"not null"`

	// Amount is in base units of the reward token.
	Amount  int64
	Purpose PayoutPurposeType
	Status  PayoutStatusType
	TxHash  string
}

package config

import (
	"time"
)

type Configs struct {
	Env string

	Server     ServerConfigs
	Database   DatabaseConfigs
	Bot        BotConfigs
	Chain      ChainConfigs
	Moderation ModerationConfigs
	Challenge  ChallengeConfigs
	Greeting   GreetingConfigs
	Tip        TipConfigs
}

type ServerConfigs struct {
	Host string
	Port string
}

type DatabaseConfigs struct {
	// Path of the sqlite database file.
	Path string
}

type BotConfigs struct {
	// UserID is the bot's own platform identity. Events sent by this id are
	// ignored.
	UserID string

	// WebhookSecret signs the JWT carried by every inbound webhook request.
	WebhookSecret string

	// WebhookTokenExpiration bounds the accepted age of webhook tokens.
	WebhookTokenExpiration time.Duration

	// Gateway is the base URL list of the platform bot gateway.
	Gateway []string

	// Token authorizes outbound calls to the gateway.
	Token string
}

type ChainConfigs struct {
	Chain      string   `toml:"chain"`
	ID         int64    `toml:"id"`
	Rpcs       []string `toml:"rpcs"`
	UseEip1559 bool     `toml:"use_eip_1559"`

	// TokenAddress is the ERC-20 contract used for tips and prizes.
	TokenAddress  string `toml:"token_address"`
	TokenSymbol   string `toml:"token_symbol"`
	TokenDecimals int    `toml:"token_decimals"`

	// WalletPrivateKey is the hex-encoded key of the bot wallet. It never
	// comes from the toml file.
	WalletPrivateKey string `toml:"-"`
}

type ModerationConfigs struct {
	// ExtraWords extends the built-in profanity list.
	ExtraWords []string

	WarnThreshold int
	BanThreshold  int
}

type ChallengeConfigs struct {
	Hashtag  string
	Duration time.Duration

	// PrizeAmount is in base units of the configured token.
	PrizeAmount int64
}

type GreetingConfigs struct {
	DefaultMessage string
}

type TipConfigs struct {
	// Amount is in base units of the configured token.
	Amount int64
}

package model

// MessageEvent is a user message posted to a channel the bot can see.
type MessageEvent struct {
	UserID    string   `json:"user_id"`
	SpaceID   string   `json:"space_id"`
	ChannelID string   `json:"channel_id"`
	MessageID string   `json:"message_id"`
	Text      string   `json:"text"`
	Mentions  []string `json:"mentions"`
}

// ReactionEvent is an emoji reaction added to a message.
type ReactionEvent struct {
	UserID    string `json:"user_id"`
	SpaceID   string `json:"space_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// ChannelJoinEvent fires when a user (or the bot itself) joins a channel.
type ChannelJoinEvent struct {
	UserID    string `json:"user_id"`
	SpaceID   string `json:"space_id"`
	ChannelID string `json:"channel_id"`
}

// TipEvent fires when a user sends the bot an on-platform tip.
type TipEvent struct {
	UserID    string `json:"user_id"`
	SpaceID   string `json:"space_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// SlashCommandEvent is an invocation of one of the bot's registered
// commands. Args carries the raw arguments after the command name.
type SlashCommandEvent struct {
	Command   string   `json:"command"`
	UserID    string   `json:"user_id"`
	SpaceID   string   `json:"space_id"`
	ChannelID string   `json:"channel_id"`
	Args      []string `json:"args"`
	Mentions  []string `json:"mentions"`
}

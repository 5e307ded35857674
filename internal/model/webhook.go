package model

// WebhookToken is the JWT payload the platform signs on every webhook
// delivery. UserID is the bot account the delivery is addressed to.
type WebhookToken struct {
	UserID string `json:"user_id"`
}

// WebhookEvent is the envelope of a webhook delivery. Exactly one of the
// payload fields is set, according to Type.
type WebhookEvent struct {
	Type    string `json:"type"`
	EventID string `json:"event_id"`

	Message      *MessageEvent      `json:"message,omitempty"`
	Reaction     *ReactionEvent     `json:"reaction,omitempty"`
	ChannelJoin  *ChannelJoinEvent  `json:"channel_join,omitempty"`
	Tip          *TipEvent          `json:"tip,omitempty"`
	SlashCommand *SlashCommandEvent `json:"slash_command,omitempty"`
}

const (
	WebhookTypeMessage      = "message"
	WebhookTypeReaction     = "reaction"
	WebhookTypeChannelJoin  = "channel_join"
	WebhookTypeTip          = "tip"
	WebhookTypeSlashCommand = "slash_command"
)

package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/xcontext"
)

var greetingPattern = regexp.MustCompile(`(hello|hi|hey bot)`)

const welcomeMessage = `👋 Welcome <@%s>! We're excited to have you here!

We're excited to have you in our community! Here's how to get started:

📋 **Getting Started:**
• Explore our channels and join conversations
• Use ` + "`/help`" + ` to see available commands
• Check pinned messages for important info
• Introduce yourself when you're ready!

💡 **Quick Tips:**
• Be respectful and kind to all members
• Ask questions - we're here to help!
• Have fun and engage with the community

Welcome aboard! 🚀`

// ConversationDomain covers the small talk surface: keyword replies, the
// welcome message on channel joins, and the thank-you for inbound tips.
type ConversationDomain interface {
	Reply(ctx context.Context, event *model.MessageEvent) error
	WelcomeJoin(ctx context.Context, event *model.ChannelJoinEvent) error
	AcknowledgeTip(ctx context.Context, event *model.TipEvent) error
}

type conversationDomain struct {
	townsEndpoint towns.IEndpoint
}

func NewConversationDomain(townsEndpoint towns.IEndpoint) *conversationDomain {
	return &conversationDomain{townsEndpoint: townsEndpoint}
}

func (d *conversationDomain) Reply(ctx context.Context, event *model.MessageEvent) error {
	lower := strings.ToLower(event.Text)

	// wagmi goes before gm, otherwise its own "gm" substring wins.
	mentionsBot := strings.Contains(lower, "bot")
	switch {
	case mentionsBot && strings.Contains(lower, "wagmi"):
		return d.react(ctx, event.ChannelID, event.MessageID, "🚀")

	case mentionsBot && strings.Contains(lower, "moon"):
		return d.react(ctx, event.ChannelID, event.MessageID, "🌙")

	case mentionsBot && (strings.Contains(lower, "gm") || strings.Contains(lower, "good morning")):
		return d.send(ctx, event.ChannelID, fmt.Sprintf("GM <@%s>! ☀️📸", event.UserID))

	case mentionsBot && (strings.Contains(lower, "gn") || strings.Contains(lower, "good night")):
		return d.send(ctx, event.ChannelID, fmt.Sprintf("Good night <@%s>! 🌙📸", event.UserID))

	case greetingPattern.MatchString(lower):
		return d.send(ctx, event.ChannelID, fmt.Sprintf("Hello <@%s>! 👋📸", event.UserID))

	case (mentionsBot && strings.Contains(lower, "help")) || strings.Contains(lower, "!help"):
		return d.send(ctx, event.ChannelID, "💡 For now, /leaderboard brings up the leaderboard")
	}

	return nil
}

func (d *conversationDomain) WelcomeJoin(ctx context.Context, event *model.ChannelJoinEvent) error {
	if event.UserID == xcontext.Configs(ctx).Bot.UserID {
		xcontext.Logger(ctx).Infof("Bot joined channel %s", event.ChannelID)
		return nil
	}

	isDefault, err := d.townsEndpoint.IsDefaultChannel(ctx, event.SpaceID, event.ChannelID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check default channel: %v", err)
		return errorx.Unknown
	}

	if !isDefault {
		return nil
	}

	return d.send(ctx, event.ChannelID, fmt.Sprintf(welcomeMessage, event.UserID))
}

func (d *conversationDomain) AcknowledgeTip(ctx context.Context, event *model.TipEvent) error {
	return d.send(ctx, event.ChannelID,
		fmt.Sprintf("I see you champ! Keep that coming! <@%s>", event.UserID))
}

func (d *conversationDomain) send(ctx context.Context, channelID, text string) error {
	if err := d.townsEndpoint.SendMessage(ctx, channelID, text); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send conversational reply: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *conversationDomain) react(ctx context.Context, channelID, messageID, emoji string) error {
	if err := d.townsEndpoint.SendReaction(ctx, channelID, messageID, emoji); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send conversational reaction: %v", err)
		return errorx.Unknown
	}

	return nil
}

package domain

import (
	"context"

	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/xcontext"
)

// WebhookDomain routes verified webhook deliveries to the handler domains.
type WebhookDomain interface {
	Handle(ctx context.Context, event *model.WebhookEvent) error
}

type webhookDomain struct {
	statisticDomain    StatisticDomain
	moderationDomain   ModerationDomain
	challengeDomain    ChallengeDomain
	greetingDomain     GreetingDomain
	tipDomain          TipDomain
	conversationDomain ConversationDomain
	helpDomain         HelpDomain
	townsEndpoint      towns.IEndpoint
}

func NewWebhookDomain(
	statisticDomain StatisticDomain,
	moderationDomain ModerationDomain,
	challengeDomain ChallengeDomain,
	greetingDomain GreetingDomain,
	tipDomain TipDomain,
	conversationDomain ConversationDomain,
	helpDomain HelpDomain,
	townsEndpoint towns.IEndpoint,
) *webhookDomain {
	return &webhookDomain{
		statisticDomain:    statisticDomain,
		moderationDomain:   moderationDomain,
		challengeDomain:    challengeDomain,
		greetingDomain:     greetingDomain,
		tipDomain:          tipDomain,
		conversationDomain: conversationDomain,
		helpDomain:         helpDomain,
		townsEndpoint:      townsEndpoint,
	}
}

func (d *webhookDomain) Handle(ctx context.Context, event *model.WebhookEvent) error {
	switch event.Type {
	case model.WebhookTypeMessage:
		if event.Message == nil {
			return errorx.New(errorx.BadRequest, "Missing message payload")
		}
		return d.handleMessage(ctx, event.Message)

	case model.WebhookTypeReaction:
		if event.Reaction == nil {
			return errorx.New(errorx.BadRequest, "Missing reaction payload")
		}
		return d.handleReaction(ctx, event.Reaction)

	case model.WebhookTypeChannelJoin:
		if event.ChannelJoin == nil {
			return errorx.New(errorx.BadRequest, "Missing channel join payload")
		}
		return d.conversationDomain.WelcomeJoin(ctx, event.ChannelJoin)

	case model.WebhookTypeTip:
		if event.Tip == nil {
			return errorx.New(errorx.BadRequest, "Missing tip payload")
		}
		return d.conversationDomain.AcknowledgeTip(ctx, event.Tip)

	case model.WebhookTypeSlashCommand:
		if event.SlashCommand == nil {
			return errorx.New(errorx.BadRequest, "Missing slash command payload")
		}
		return d.handleSlashCommand(ctx, event.SlashCommand)
	}

	return errorx.New(errorx.BadRequest, "Unknown event type %s", event.Type)
}

func (d *webhookDomain) handleMessage(ctx context.Context, event *model.MessageEvent) error {
	if event.UserID == xcontext.Configs(ctx).Bot.UserID {
		return nil
	}

	// A profane message is moderated and nothing else: no stats, no
	// challenge entry, no tip, no reply.
	profane, err := d.moderationDomain.HandleMessage(ctx, event)
	if err != nil {
		return err
	}

	if profane {
		return nil
	}

	isAdmin, err := d.townsEndpoint.HasAdminPermission(ctx, event.SpaceID, event.UserID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot check admin permission, assuming regular user: %v", err)
		isAdmin = false
	}

	if !isAdmin {
		if err := d.challengeDomain.RecordEntry(ctx, event); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot record challenge entry: %v", err)
		}
	}

	if err := d.statisticDomain.RecordMessage(ctx, event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record message stat: %v", err)
	}

	tipped, err := d.tipDomain.HandleMessage(ctx, event, isAdmin)
	if err != nil {
		return err
	}

	if tipped {
		return nil
	}

	return d.conversationDomain.Reply(ctx, event)
}

func (d *webhookDomain) handleReaction(ctx context.Context, event *model.ReactionEvent) error {
	if event.UserID == xcontext.Configs(ctx).Bot.UserID {
		return nil
	}

	if err := d.challengeDomain.RecordReaction(ctx, event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record entry reaction: %v", err)
	}

	return d.statisticDomain.RecordReaction(ctx, event)
}

func (d *webhookDomain) handleSlashCommand(ctx context.Context, cmd *model.SlashCommandEvent) error {
	switch cmd.Command {
	case "help":
		return d.helpDomain.Help(ctx, cmd)
	case "leaderboard":
		return d.statisticDomain.Leaderboard(ctx, cmd)
	case "infractions":
		return d.moderationDomain.Infractions(ctx, cmd)
	case "set_gm", "set-gm":
		return d.greetingDomain.SetGM(ctx, cmd)
	case "challenge_start":
		return d.challengeDomain.Start(ctx, cmd)
	case "challenge_end":
		return d.challengeDomain.End(ctx, cmd)
	case "challenge_current":
		return d.challengeDomain.Current(ctx, cmd)
	case "challenge_winners":
		return d.challengeDomain.Winners(ctx, cmd)
	}

	return errorx.New(errorx.BadRequest, "Unknown command %s", cmd.Command)
}

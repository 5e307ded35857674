package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/xcontext"
)

type GreetingDomain interface {
	SetGM(ctx context.Context, cmd *model.SlashCommandEvent) error

	// Broadcast sends every enabled channel its greeting and stamps the post
	// time. A failing channel is logged and skipped, the rest still get
	// their message.
	Broadcast(ctx context.Context, now time.Time) error
}

type greetingDomain struct {
	botChannelRepo repository.BotChannelRepository
	townsEndpoint  towns.IEndpoint
}

func NewGreetingDomain(
	botChannelRepo repository.BotChannelRepository,
	townsEndpoint towns.IEndpoint,
) *greetingDomain {
	return &greetingDomain{
		botChannelRepo: botChannelRepo,
		townsEndpoint:  townsEndpoint,
	}
}

func (d *greetingDomain) SetGM(ctx context.Context, cmd *model.SlashCommandEvent) error {
	isAdmin, err := d.townsEndpoint.HasAdminPermission(ctx, cmd.SpaceID, cmd.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check admin permission: %v", err)
		return errorx.Unknown
	}

	if !isAdmin {
		if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, "❌ Only admins can schedule gms."); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot send permission reply: %v", err)
			return errorx.Unknown
		}

		return nil
	}

	err = d.botChannelRepo.Enable(ctx, &entity.BotChannel{
		Base:             entity.Base{ID: uuid.NewString()},
		SpaceID:          cmd.SpaceID,
		ChannelID:        cmd.ChannelID,
		ScheduledMessage: strings.TrimSpace(strings.Join(cmd.Args, " ")),
		CronEnabled:      true,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot enable greeting channel: %v", err)
		return errorx.Unknown
	}

	if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, "✅ We keep the 'gm' rolling every morning!"); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send set_gm confirmation: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *greetingDomain) Broadcast(ctx context.Context, now time.Time) error {
	channels, err := d.botChannelRepo.GetEnabled(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get greeting channels: %v", err)
		return errorx.Unknown
	}

	defaultMessage := xcontext.Configs(ctx).Greeting.DefaultMessage
	for _, channel := range channels {
		message := channel.ScheduledMessage
		if message == "" {
			message = defaultMessage
		}

		if err := d.townsEndpoint.SendMessage(ctx, channel.ChannelID, message); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot greet channel %s: %v", channel.ChannelID, err)
			continue
		}

		if err := d.botChannelRepo.UpdateLastCronPost(ctx, channel.ChannelID, now); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot stamp greeting post for %s: %v", channel.ChannelID, err)
		}
	}

	return nil
}

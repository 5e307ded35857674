package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/profanity"
	"github.com/lenstown/backend/pkg/xcontext"
)

var moderationReactions = []string{"👎🏾", "❌"}

type ModerationDomain interface {
	// HandleMessage reports whether the message was profane. A profane
	// message is fully consumed here and must not reach any other handler.
	HandleMessage(ctx context.Context, event *model.MessageEvent) (bool, error)
	Infractions(ctx context.Context, cmd *model.SlashCommandEvent) error
}

type moderationDomain struct {
	infractionRepo repository.InfractionRepository
	townsEndpoint  towns.IEndpoint
	filter         *profanity.Filter
}

func NewModerationDomain(
	infractionRepo repository.InfractionRepository,
	townsEndpoint towns.IEndpoint,
	filter *profanity.Filter,
) *moderationDomain {
	return &moderationDomain{
		infractionRepo: infractionRepo,
		townsEndpoint:  townsEndpoint,
		filter:         filter,
	}
}

func (d *moderationDomain) HandleMessage(ctx context.Context, event *model.MessageEvent) (bool, error) {
	if !d.filter.IsProfane(event.Text) {
		return false, nil
	}

	xcontext.Logger(ctx).Infof("Profanity detected from %s", event.UserID)

	for _, emoji := range moderationReactions {
		if err := d.townsEndpoint.SendReaction(ctx, event.ChannelID, event.MessageID, emoji); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot send moderation reaction: %v", err)
		}
	}

	err := d.infractionRepo.Create(ctx, &entity.Infraction{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  event.UserID,
		SpaceID: event.SpaceID,
		Message: event.Text,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create infraction: %v", err)
		return true, errorx.Unknown
	}

	total, err := d.infractionRepo.CountByUser(ctx, event.UserID, event.SpaceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count infractions: %v", err)
		return true, errorx.Unknown
	}

	cfg := xcontext.Configs(ctx).Moderation
	if total >= int64(cfg.WarnThreshold) {
		warning := fmt.Sprintf("⚠️ <@%s>, please avoid using inappropriate language.", event.UserID)
		if err := d.townsEndpoint.SendMessage(ctx, event.ChannelID, warning); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot send moderation warning: %v", err)
		}
	}

	// The ban fires on the exact threshold so a failed ban attempt is not
	// retried on every later infraction.
	if total == int64(cfg.BanThreshold) {
		notice := fmt.Sprintf("⛔ <@%s>, you have been muted for repeated profanity.", event.UserID)
		if err := d.townsEndpoint.SendMessage(ctx, event.ChannelID, notice); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot send ban notice: %v", err)
		}

		if err := d.townsEndpoint.Ban(ctx, event.SpaceID, event.UserID); err != nil {
			xcontext.Logger(ctx).Warnf("Ban not supported or failed: %v", err)
		}
	}

	return true, nil
}

func (d *moderationDomain) Infractions(ctx context.Context, cmd *model.SlashCommandEvent) error {
	offenders, err := d.infractionRepo.TopOffenders(ctx, cmd.SpaceID, 10)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get top offenders: %v", err)
		return errorx.Unknown
	}

	if len(offenders) == 0 {
		if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, "✅ No infractions logged yet!"); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot send empty infractions reply: %v", err)
			return errorx.Unknown
		}

		return nil
	}

	var b strings.Builder
	b.WriteString("🚨 **Top Offenders**\n\n")
	for _, offender := range offenders {
		fmt.Fprintf(&b, "• <@%s> — %d infractions\n", offender.UserID, offender.Count)
	}

	if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, b.String()); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send infractions reply: %v", err)
		return errorx.Unknown
	}

	return nil
}

package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/xcontext"
)

const leaderboardLimit = 10

type StatisticDomain interface {
	RecordMessage(ctx context.Context, event *model.MessageEvent) error
	RecordReaction(ctx context.Context, event *model.ReactionEvent) error
	Leaderboard(ctx context.Context, cmd *model.SlashCommandEvent) error
}

type statisticDomain struct {
	userStatRepo  repository.UserStatRepository
	townsEndpoint towns.IEndpoint
}

func NewStatisticDomain(
	userStatRepo repository.UserStatRepository,
	townsEndpoint towns.IEndpoint,
) *statisticDomain {
	return &statisticDomain{
		userStatRepo:  userStatRepo,
		townsEndpoint: townsEndpoint,
	}
}

func (d *statisticDomain) RecordMessage(ctx context.Context, event *model.MessageEvent) error {
	err := d.userStatRepo.IncreaseMessageCount(ctx, event.UserID, event.SpaceID, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase message count: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *statisticDomain) RecordReaction(ctx context.Context, event *model.ReactionEvent) error {
	err := d.userStatRepo.IncreaseReactionCount(ctx, event.UserID, event.SpaceID, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase reaction count: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *statisticDomain) Leaderboard(ctx context.Context, cmd *model.SlashCommandEvent) error {
	topUsers, err := d.userStatRepo.GetTopBySpace(ctx, cmd.SpaceID, leaderboardLimit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard: %v", err)
		if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, "❌ Error fetching leaderboard"); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot send leaderboard error reply: %v", err)
		}

		return errorx.Unknown
	}

	if len(topUsers) == 0 {
		if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, "📊 No activity data yet!"); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot send empty leaderboard reply: %v", err)
			return errorx.Unknown
		}

		return nil
	}

	medals := []string{"🥇", "🥈", "🥉"}

	var b strings.Builder
	b.WriteString("🏆 **Top Contributors**\n\n")
	for i, user := range topUsers {
		medal := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			medal = medals[i]
		}

		fmt.Fprintf(&b, "%s <@%s>\n", medal, user.UserID)
		fmt.Fprintf(&b, "   💬 %d messages | ❤️ %d reactions\n\n", user.MessageCount, user.ReactionCount)

		if cmd.UserID == user.UserID {
			fmt.Fprintf(&b, "   🎉 You are position %d with %d messages and %d reactions\n",
				i+1, user.MessageCount, user.ReactionCount)
		}
	}

	if err := d.townsEndpoint.SendMessage(ctx, cmd.ChannelID, b.String()); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send leaderboard: %v", err)
		return errorx.Unknown
	}

	return nil
}

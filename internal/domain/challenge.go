package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/blockchain/eth"
	"github.com/lenstown/backend/pkg/dateutil"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/xcontext"
)

type ChallengeDomain interface {
	Start(ctx context.Context, cmd *model.SlashCommandEvent) error
	End(ctx context.Context, cmd *model.SlashCommandEvent) error
	Current(ctx context.Context, cmd *model.SlashCommandEvent) error
	Winners(ctx context.Context, cmd *model.SlashCommandEvent) error

	// RecordEntry turns a hashtag message into a challenge entry when the
	// space has an active challenge. Non-qualifying messages are a no-op.
	RecordEntry(ctx context.Context, event *model.MessageEvent) error

	// RecordReaction bumps the reaction counter of the entry owning the
	// reacted message. The match is global by message id.
	RecordReaction(ctx context.Context, event *model.ReactionEvent) error

	// ResolveExpired sweeps every active challenge past its end time and
	// resolves each one independently.
	ResolveExpired(ctx context.Context, now time.Time) error
}

type challengeDomain struct {
	payoutSubmitter

	challengeRepo repository.ChallengeRepository
	entryRepo     repository.ChallengeEntryRepository
	winnerRepo    repository.ChallengeWinnerRepository
	townsEndpoint towns.IEndpoint
}

func NewChallengeDomain(
	challengeRepo repository.ChallengeRepository,
	entryRepo repository.ChallengeEntryRepository,
	winnerRepo repository.ChallengeWinnerRepository,
	tokenPayoutRepo repository.TokenPayoutRepository,
	townsEndpoint towns.IEndpoint,
	ethClient eth.EthClient,
) *challengeDomain {
	return &challengeDomain{
		payoutSubmitter: payoutSubmitter{
			tokenPayoutRepo: tokenPayoutRepo,
			ethClient:       ethClient,
		},
		challengeRepo: challengeRepo,
		entryRepo:     entryRepo,
		winnerRepo:    winnerRepo,
		townsEndpoint: townsEndpoint,
	}
}

func (d *challengeDomain) Start(ctx context.Context, cmd *model.SlashCommandEvent) error {
	isAdmin, err := d.townsEndpoint.HasAdminPermission(ctx, cmd.SpaceID, cmd.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check admin permission: %v", err)
		return errorx.Unknown
	}

	if !isAdmin {
		return d.reply(ctx, cmd.ChannelID, "❌ Only admins can start challenges.")
	}

	theme := strings.TrimSpace(strings.Join(cmd.Args, " "))
	if theme == "" {
		return d.reply(ctx, cmd.ChannelID,
			"⚠️ Please specify a theme, e.g. `/challenge_start Reflections`")
	}

	cfg := xcontext.Configs(ctx).Challenge
	now := time.Now()
	err = d.challengeRepo.Create(ctx, &entity.Challenge{
		Base:      entity.Base{ID: uuid.NewString()},
		SpaceID:   cmd.SpaceID,
		ChannelID: cmd.ChannelID,
		Theme:     theme,
		StartTime: now,
		EndTime:   now.Add(cfg.Duration),
		Active:    true,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create challenge: %v", err)
		return errorx.Unknown
	}

	announcement := fmt.Sprintf(
		"📸 **New Weekly Photo Challenge!**\n\nTheme: *%s*\n\nPost your photos with **%s** this week! ❤️",
		theme, cfg.Hashtag)
	return d.reply(ctx, cmd.ChannelID, announcement)
}

func (d *challengeDomain) End(ctx context.Context, cmd *model.SlashCommandEvent) error {
	isAdmin, err := d.townsEndpoint.HasAdminPermission(ctx, cmd.SpaceID, cmd.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check admin permission: %v", err)
		return errorx.Unknown
	}

	if !isAdmin {
		return d.reply(ctx, cmd.ChannelID, "❌ Only admins can end challenges.")
	}

	actives, err := d.challengeRepo.GetActiveBySpace(ctx, cmd.SpaceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active challenges: %v", err)
		return errorx.Unknown
	}

	for i := range actives {
		if err := d.resolve(ctx, &actives[i]); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot resolve challenge %s: %v", actives[i].ID, err)
		}
	}

	return d.reply(ctx, cmd.ChannelID, "✅ The current photo challenge has been closed for submissions.")
}

func (d *challengeDomain) Current(ctx context.Context, cmd *model.SlashCommandEvent) error {
	actives, err := d.challengeRepo.GetActiveBySpace(ctx, cmd.SpaceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active challenges: %v", err)
		return errorx.Unknown
	}

	if len(actives) == 0 {
		return d.reply(ctx, cmd.ChannelID, "📷 No active challenge right now!")
	}

	current := actives[0]
	daysLeft := dateutil.DaysLeft(time.Now(), current.EndTime)
	return d.reply(ctx, cmd.ChannelID,
		fmt.Sprintf("🗓️ Current theme: *%s* (%d days left)", current.Theme, daysLeft))
}

func (d *challengeDomain) Winners(ctx context.Context, cmd *model.SlashCommandEvent) error {
	winners, err := d.winnerRepo.GetRecentBySpace(ctx, cmd.SpaceID, 5)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get challenge winners: %v", err)
		return errorx.Unknown
	}

	if len(winners) == 0 {
		return d.reply(ctx, cmd.ChannelID,
			"🏆 No photo challenge winners yet! Participate this week to become the first!")
	}

	chainCfg := xcontext.Configs(ctx).Chain

	var b strings.Builder
	b.WriteString("📸 **Photo Challenge Hall of Fame**\n\n")
	for i, winner := range winners {
		fmt.Fprintf(&b, "**%d.** <@%s> — *%s*\n💰 %s %s — 🗓 %s\n\n",
			i+1, winner.UserID, winner.Theme,
			formatTokenAmount(winner.PrizeAmount, chainCfg.TokenDecimals), chainCfg.TokenSymbol,
			winner.CreatedAt.Format("Jan 2"))
	}

	return d.reply(ctx, cmd.ChannelID, b.String())
}

func (d *challengeDomain) RecordEntry(ctx context.Context, event *model.MessageEvent) error {
	cfg := xcontext.Configs(ctx).Challenge
	if !strings.Contains(event.Text, cfg.Hashtag) {
		return nil
	}

	actives, err := d.challengeRepo.GetActiveBySpace(ctx, event.SpaceID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active challenges: %v", err)
		return errorx.Unknown
	}

	if len(actives) == 0 {
		return nil
	}

	err = d.entryRepo.Create(ctx, &entity.ChallengeEntry{
		Base:        entity.Base{ID: uuid.NewString()},
		ChallengeID: actives[0].ID,
		UserID:      event.UserID,
		MessageID:   event.MessageID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create challenge entry: %v", err)
		return errorx.Unknown
	}

	confirmation := fmt.Sprintf("✅ <@%s> entered this week's challenge! Good luck! 📷", event.UserID)
	return d.reply(ctx, event.ChannelID, confirmation)
}

func (d *challengeDomain) RecordReaction(ctx context.Context, event *model.ReactionEvent) error {
	if err := d.entryRepo.IncreaseReactionCount(ctx, event.MessageID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase entry reaction count: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *challengeDomain) ResolveExpired(ctx context.Context, now time.Time) error {
	expired, err := d.challengeRepo.GetExpired(ctx, now)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get expired challenges: %v", err)
		return errorx.Unknown
	}

	for i := range expired {
		if err := d.resolve(ctx, &expired[i]); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot resolve challenge %s: %v", expired[i].ID, err)
		}
	}

	return nil
}

// resolve picks the most-reacted entry, pays the prize, appends the winner
// record, and announces the outcome in the challenge channel. The challenge
// ends up inactive whichever branch is taken.
func (d *challengeDomain) resolve(ctx context.Context, challenge *entity.Challenge) error {
	top, err := d.entryRepo.GetTopByChallenge(ctx, challenge.ID, 1)
	if err != nil {
		return err
	}

	if len(top) == 0 {
		noEntries := fmt.Sprintf("📸 The challenge %q ended with no entries this week.", challenge.Theme)
		if err := d.townsEndpoint.SendMessage(ctx, challenge.ChannelID, noEntries); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot announce empty challenge: %v", err)
		}

		return d.challengeRepo.Deactivate(ctx, challenge.ID)
	}

	winner := top[0]
	chainCfg := xcontext.Configs(ctx).Chain
	prize := xcontext.Configs(ctx).Challenge.PrizeAmount

	if err := d.submit(ctx, winner.UserID, challenge.SpaceID, prize, entity.PayoutPurposePrize); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot pay challenge prize: %v", err)

		apology := fmt.Sprintf(
			"⚠️ Could not send tip to <@%s>. Please check the bot's permissions or wallet balance.",
			winner.UserID)
		if err := d.townsEndpoint.SendMessage(ctx, challenge.ChannelID, apology); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot announce prize failure: %v", err)
		}

		return d.challengeRepo.Deactivate(ctx, challenge.ID)
	}

	err = d.winnerRepo.Create(ctx, &entity.ChallengeWinner{
		Base:          entity.Base{ID: uuid.NewString()},
		ChallengeID:   challenge.ID,
		UserID:        winner.UserID,
		ReactionCount: winner.ReactionCount,
		PrizeAmount:   prize,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record challenge winner: %v", err)
	}

	announcement := fmt.Sprintf(
		"🏆 **Photo of the Week — Theme: %s** 🏆\n\n<@%s> wins with %d reactions!\n\n💰 **Prize:** %s %s sent on-chain!",
		challenge.Theme, winner.UserID, winner.ReactionCount,
		formatTokenAmount(prize, chainCfg.TokenDecimals), chainCfg.TokenSymbol)
	if err := d.townsEndpoint.SendMessage(ctx, challenge.ChannelID, announcement); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot announce challenge winner: %v", err)
	}

	return d.challengeRepo.Deactivate(ctx, challenge.ID)
}

func (d *challengeDomain) reply(ctx context.Context, channelID, text string) error {
	if err := d.townsEndpoint.SendMessage(ctx, channelID, text); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot send challenge reply: %v", err)
		return errorx.Unknown
	}

	return nil
}

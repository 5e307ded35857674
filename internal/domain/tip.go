package domain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/blockchain/eth"
	"github.com/lenstown/backend/pkg/errorx"
	"github.com/lenstown/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type TipDomain interface {
	// HandleMessage reports whether the message was a tip request. Only a
	// message containing "tip" with at least one mention qualifies.
	HandleMessage(ctx context.Context, event *model.MessageEvent, isAdmin bool) (bool, error)
}

type tipDomain struct {
	payoutSubmitter

	townsEndpoint towns.IEndpoint
}

func NewTipDomain(
	tokenPayoutRepo repository.TokenPayoutRepository,
	townsEndpoint towns.IEndpoint,
	ethClient eth.EthClient,
) *tipDomain {
	return &tipDomain{
		payoutSubmitter: payoutSubmitter{
			tokenPayoutRepo: tokenPayoutRepo,
			ethClient:       ethClient,
		},
		townsEndpoint: townsEndpoint,
	}
}

func (d *tipDomain) HandleMessage(ctx context.Context, event *model.MessageEvent, isAdmin bool) (bool, error) {
	if !strings.Contains(strings.ToLower(event.Text), "tip") || len(event.Mentions) == 0 {
		return false, nil
	}

	if !isAdmin {
		rejection := fmt.Sprintf("❌ <@%s>, you need admin permissions to use this command.", event.UserID)
		if err := d.townsEndpoint.SendMessage(ctx, event.ChannelID, rejection); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot send tip rejection: %v", err)
			return true, errorx.Unknown
		}

		return true, nil
	}

	cfg := xcontext.Configs(ctx)
	balance, err := d.botWalletBalance(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read bot token balance: %v", err)
		return true, errorx.Unknown
	}

	if balance.Cmp(big.NewInt(cfg.Tip.Amount)) < 0 {
		notice := fmt.Sprintf("⚠️ I don't have enough %s to send a tip.", cfg.Chain.TokenSymbol)
		if err := d.townsEndpoint.SendMessage(ctx, event.ChannelID, notice); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot send balance notice: %v", err)
			return true, errorx.Unknown
		}

		return true, nil
	}

	// One transfer per mentioned user, however many times they are mentioned.
	var tipped []string
	for _, mention := range event.Mentions {
		if slices.Contains(tipped, mention) {
			continue
		}
		tipped = append(tipped, mention)

		err := d.submit(ctx, mention, event.SpaceID, cfg.Tip.Amount, entity.PayoutPurposeTip)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot tip %s: %v", mention, err)
			continue
		}

		confirmation := fmt.Sprintf("💸💸 You've been tipped <@%s>", mention)
		if err := d.townsEndpoint.SendMessage(ctx, event.ChannelID, confirmation); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot send tip confirmation: %v", err)
		}
	}

	return true, nil
}

package testutil

import (
	"context"
	"time"

	"github.com/lenstown/backend/config"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/pkg/authenticator"
	"github.com/lenstown/backend/pkg/logger"
	"github.com/lenstown/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Bot: config.BotConfigs{
			UserID:                 "bot-user",
			WebhookSecret:          "secret",
			WebhookTokenExpiration: time.Minute,
			Gateway:                []string{"https://gateway.example"},
			Token:                  "bot-token",
		},
		Chain: config.ChainConfigs{
			Chain:         "base",
			ID:            8453,
			UseEip1559:    true,
			TokenAddress:  "0x000000000000000000000000000000000000dEaD",
			TokenSymbol:   "USDC",
			TokenDecimals: 6,

			// A throwaway development key, never funded.
			WalletPrivateKey: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		},
		Moderation: config.ModerationConfigs{
			WarnThreshold: 5,
			BanThreshold:  20,
		},
		Challenge: config.ChallengeConfigs{
			Hashtag:     "#weeklychallenge",
			Duration:    7 * 24 * time.Hour,
			PrizeAmount: 10,
		},
		Greeting: config.GreetingConfigs{
			DefaultMessage: "gm gm ☀️",
		},
		Tip: config.TipConfigs{
			Amount: 1,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine[model.WebhookToken](
		cfg.Bot.WebhookSecret, cfg.Bot.WebhookTokenExpiration))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}

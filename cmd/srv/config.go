package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lenstown/backend/config"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/pkg/authenticator"
	"github.com/lenstown/backend/pkg/logger"
	"github.com/lenstown/backend/pkg/xcontext"
)

// loadConfig reads the whole configuration from the environment (plus the
// optional chain toml file) and prepares the base context. Missing secrets
// are fatal at startup.
func (s *srv) loadConfig() error {
	var missing []string
	requireEnv := func(key string) string {
		value := os.Getenv(key)
		if value == "" {
			missing = append(missing, key)
		}

		return value
	}

	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		Server: config.ServerConfigs{
			Host: getEnv("HOST", ""),
			Port: getEnv("PORT", "8080"),
		},
		Database: config.DatabaseConfigs{
			Path: getEnv("DATABASE_PATH", "./lenstown.db"),
		},
		Bot: config.BotConfigs{
			UserID:                 requireEnv("BOT_USER_ID"),
			WebhookSecret:          requireEnv("WEBHOOK_JWT_SECRET"),
			WebhookTokenExpiration: getDurationEnv("WEBHOOK_TOKEN_EXPIRATION", time.Minute*5),
			Gateway:                getListEnv("BOT_GATEWAY", nil),
			Token:                  requireEnv("BOT_TOKEN"),
		},
		Chain: config.ChainConfigs{
			Chain:         getEnv("CHAIN", "base"),
			ID:            getInt64Env("CHAIN_ID", 8453),
			Rpcs:          getListEnv("CHAIN_RPC_URLS", nil),
			UseEip1559:    getBoolEnv("CHAIN_USE_EIP_1559", true),
			TokenAddress:  getEnv("TOKEN_ADDRESS", ""),
			TokenSymbol:   getEnv("TOKEN_SYMBOL", "USDC"),
			TokenDecimals: getIntEnv("TOKEN_DECIMALS", 6),
		},
		Moderation: config.ModerationConfigs{
			ExtraWords:    getListEnv("MODERATION_EXTRA_WORDS", nil),
			WarnThreshold: getIntEnv("MODERATION_WARN_THRESHOLD", 5),
			BanThreshold:  getIntEnv("MODERATION_BAN_THRESHOLD", 20),
		},
		Challenge: config.ChallengeConfigs{
			Hashtag:     getEnv("CHALLENGE_HASHTAG", "#weeklychallenge"),
			Duration:    getDurationEnv("CHALLENGE_DURATION", 7*24*time.Hour),
			PrizeAmount: getInt64Env("CHALLENGE_PRIZE_AMOUNT", 5_000_000),
		},
		Greeting: config.GreetingConfigs{
			DefaultMessage: getEnv("GREETING_DEFAULT_MESSAGE", "🌞 gm everyone!"),
		},
		Tip: config.TipConfigs{
			Amount: getInt64Env("TIP_AMOUNT", 1_000_000),
		},
	}

	// The chain file carries everything but the wallet key, which only ever
	// comes from the environment.
	if path := os.Getenv("CHAIN_CONFIG_PATH"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg.Chain); err != nil {
			return fmt.Errorf("cannot decode chain config %s: %w", path, err)
		}
	}
	cfg.Chain.WalletPrivateKey = requireEnv("BOT_PRIVATE_KEY")

	if len(cfg.Chain.Rpcs) == 0 {
		missing = append(missing, "CHAIN_RPC_URLS")
	}

	if cfg.Chain.TokenAddress == "" {
		missing = append(missing, "TOKEN_ADDRESS")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(getIntEnv("LOG_LEVEL", logger.INFO)))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine[model.WebhookToken](
		cfg.Bot.WebhookSecret, cfg.Bot.WebhookTokenExpiration))

	s.ctx = ctx
	return nil
}

func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return def
}

func getListEnv(key string, def []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}

	return list
}

func getIntEnv(key string, def int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}

	return value
}

func getInt64Env(key string, def int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return def
	}

	return value
}

func getBoolEnv(key string, def bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}

	return value
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}

	return value
}

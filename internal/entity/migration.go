package entity

import (
	"context"

	"github.com/lenstown/backend/pkg/xcontext"
)

// MigrateTable creates missing tables and columns. There is no versioned
// migration, creation is idempotent.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&UserStat{},
		&BotChannel{},
		&Infraction{},
		&Challenge{},
		&ChallengeEntry{},
		&ChallengeWinner{},
		&TokenPayout{},
	)
}

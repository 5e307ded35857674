package repository

import (
	"context"
	"time"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type BotChannelRepository interface {
	Enable(ctx context.Context, channel *entity.BotChannel) error
	GetEnabled(ctx context.Context) ([]entity.BotChannel, error)
	UpdateLastCronPost(ctx context.Context, channelID string, at time.Time) error
}

type botChannelRepository struct{}

func NewBotChannelRepository() *botChannelRepository {
	return &botChannelRepository{}
}

// Enable turns the daily greeting on for a channel. A channel that is already
// registered keeps its stored message, only the flag is flipped.
func (r *botChannelRepository) Enable(ctx context.Context, channel *entity.BotChannel) error {
	return xcontext.DB(ctx).Model(&entity.BotChannel{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "channel_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"cron_enabled": true,
			}),
		}).
		Create(channel).Error
}

func (r *botChannelRepository) GetEnabled(ctx context.Context) ([]entity.BotChannel, error) {
	var result []entity.BotChannel
	err := xcontext.DB(ctx).Where("cron_enabled=?", true).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *botChannelRepository) UpdateLastCronPost(ctx context.Context, channelID string, at time.Time) error {
	return xcontext.DB(ctx).Model(&entity.BotChannel{}).
		Where("channel_id=?", channelID).
		Update("last_cron_post", at).Error
}

package repository

import (
	"context"
	"time"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatRepository interface {
	IncreaseMessageCount(ctx context.Context, userID, spaceID string, at time.Time) error
	IncreaseReactionCount(ctx context.Context, userID, spaceID string, at time.Time) error
	Get(ctx context.Context, userID string) (*entity.UserStat, error)
	GetTopBySpace(ctx context.Context, spaceID string, limit int) ([]entity.UserStat, error)
}

type userStatRepository struct{}

func NewUserStatRepository() *userStatRepository {
	return &userStatRepository{}
}

func (r *userStatRepository) IncreaseMessageCount(ctx context.Context, userID, spaceID string, at time.Time) error {
	return xcontext.DB(ctx).Model(&entity.UserStat{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"message_count": gorm.Expr("message_count + 1"),
				"last_active":   at,
			}),
		}).
		Create(&entity.UserStat{
			UserID:       userID,
			SpaceID:      spaceID,
			MessageCount: 1,
			LastActive:   at,
		}).Error
}

func (r *userStatRepository) IncreaseReactionCount(ctx context.Context, userID, spaceID string, at time.Time) error {
	return xcontext.DB(ctx).Model(&entity.UserStat{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"reaction_count": gorm.Expr("reaction_count + 1"),
				"last_active":    at,
			}),
		}).
		Create(&entity.UserStat{
			UserID:        userID,
			SpaceID:       spaceID,
			ReactionCount: 1,
			LastActive:    at,
		}).Error
}

func (r *userStatRepository) Get(ctx context.Context, userID string) (*entity.UserStat, error) {
	var result entity.UserStat
	err := xcontext.DB(ctx).Where("user_id=?", userID).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userStatRepository) GetTopBySpace(ctx context.Context, spaceID string, limit int) ([]entity.UserStat, error) {
	var result []entity.UserStat
	err := xcontext.DB(ctx).Model(&entity.UserStat{}).
		Where("space_id=?", spaceID).
		Order("message_count DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

package repository

import (
	"context"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/pkg/xcontext"
)

type Offender struct {
	UserID string
	Count  int64
}

type InfractionRepository interface {
	Create(ctx context.Context, infraction *entity.Infraction) error
	CountByUser(ctx context.Context, userID, spaceID string) (int64, error)
	TopOffenders(ctx context.Context, spaceID string, limit int) ([]Offender, error)
}

type infractionRepository struct{}

func NewInfractionRepository() *infractionRepository {
	return &infractionRepository{}
}

func (r *infractionRepository) Create(ctx context.Context, infraction *entity.Infraction) error {
	return xcontext.DB(ctx).Create(infraction).Error
}

func (r *infractionRepository) CountByUser(ctx context.Context, userID, spaceID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Infraction{}).
		Where("user_id=? AND space_id=?", userID, spaceID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *infractionRepository) TopOffenders(ctx context.Context, spaceID string, limit int) ([]Offender, error) {
	var result []Offender
	err := xcontext.DB(ctx).Model(&entity.Infraction{}).
		Select("user_id, COUNT(*) as count").
		Where("space_id=?", spaceID).
		Group("user_id").
		Order("count DESC").
		Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

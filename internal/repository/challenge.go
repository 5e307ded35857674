package repository

import (
	"context"
	"time"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/pkg/xcontext"
)

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	GetByID(ctx context.Context, id string) (*entity.Challenge, error)
	GetActiveBySpace(ctx context.Context, spaceID string) ([]entity.Challenge, error)
	GetExpired(ctx context.Context, now time.Time) ([]entity.Challenge, error)
	Deactivate(ctx context.Context, id string) error
}

type challengeRepository struct{}

func NewChallengeRepository() *challengeRepository {
	return &challengeRepository{}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	return xcontext.DB(ctx).Create(challenge).Error
}

func (r *challengeRepository) GetByID(ctx context.Context, id string) (*entity.Challenge, error) {
	var result entity.Challenge
	err := xcontext.DB(ctx).Where("id=?", id).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *challengeRepository) GetActiveBySpace(ctx context.Context, spaceID string) ([]entity.Challenge, error) {
	var result []entity.Challenge
	err := xcontext.DB(ctx).
		Where("space_id=? AND active=?", spaceID, true).
		Order("start_time DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *challengeRepository) GetExpired(ctx context.Context, now time.Time) ([]entity.Challenge, error) {
	var result []entity.Challenge
	err := xcontext.DB(ctx).
		Where("active=? AND end_time<=?", true, now).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *challengeRepository) Deactivate(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Model(&entity.Challenge{}).
		Where("id=?", id).
		Update("active", false).Error
}

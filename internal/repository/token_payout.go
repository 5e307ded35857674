package repository

import (
	"context"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/pkg/xcontext"
)

type TokenPayoutRepository interface {
	Create(ctx context.Context, payout *entity.TokenPayout) error
	GetByUser(ctx context.Context, userID string) ([]entity.TokenPayout, error)
}

type tokenPayoutRepository struct{}

func NewTokenPayoutRepository() *tokenPayoutRepository {
	return &tokenPayoutRepository{}
}

func (r *tokenPayoutRepository) Create(ctx context.Context, payout *entity.TokenPayout) error {
	return xcontext.DB(ctx).Create(payout).Error
}

func (r *tokenPayoutRepository) GetByUser(ctx context.Context, userID string) ([]entity.TokenPayout, error) {
	var result []entity.TokenPayout
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

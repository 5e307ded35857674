package repository

import (
	"context"
	"time"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/pkg/xcontext"
)

type WinnerRecord struct {
	UserID        string
	Theme         string
	ReactionCount int
	PrizeAmount   int64
	CreatedAt     time.Time
}

type ChallengeWinnerRepository interface {
	Create(ctx context.Context, winner *entity.ChallengeWinner) error
	GetRecentBySpace(ctx context.Context, spaceID string, limit int) ([]WinnerRecord, error)
}

type challengeWinnerRepository struct{}

func NewChallengeWinnerRepository() *challengeWinnerRepository {
	return &challengeWinnerRepository{}
}

func (r *challengeWinnerRepository) Create(ctx context.Context, winner *entity.ChallengeWinner) error {
	return xcontext.DB(ctx).Create(winner).Error
}

func (r *challengeWinnerRepository) GetRecentBySpace(ctx context.Context, spaceID string, limit int) ([]WinnerRecord, error) {
	var result []WinnerRecord
	err := xcontext.DB(ctx).Model(&entity.ChallengeWinner{}).
		Select("challenge_winners.user_id, challenges.theme, challenge_winners.reaction_count, challenge_winners.prize_amount, challenge_winners.created_at").
		Joins("join challenges on challenges.id=challenge_winners.challenge_id").
		Where("challenges.space_id=?", spaceID).
		Order("challenge_winners.created_at DESC").
		Limit(limit).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

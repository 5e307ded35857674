package repository

import (
	"context"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ChallengeEntryRepository interface {
	Create(ctx context.Context, entry *entity.ChallengeEntry) error
	IncreaseReactionCount(ctx context.Context, messageID string) error
	GetTopByChallenge(ctx context.Context, challengeID string, limit int) ([]entity.ChallengeEntry, error)
	CountByChallenge(ctx context.Context, challengeID string) (int64, error)
}

type challengeEntryRepository struct{}

func NewChallengeEntryRepository() *challengeEntryRepository {
	return &challengeEntryRepository{}
}

func (r *challengeEntryRepository) Create(ctx context.Context, entry *entity.ChallengeEntry) error {
	return xcontext.DB(ctx).Create(entry).Error
}

// IncreaseReactionCount bumps the counter of whichever entry owns messageID.
// Reaction deliveries carry no challenge id, so the match is on message id
// alone. A reaction to a message that is not an entry is a no-op.
func (r *challengeEntryRepository) IncreaseReactionCount(ctx context.Context, messageID string) error {
	return xcontext.DB(ctx).Model(&entity.ChallengeEntry{}).
		Where("message_id=?", messageID).
		Update("reaction_count", gorm.Expr("reaction_count + 1")).Error
}

func (r *challengeEntryRepository) GetTopByChallenge(ctx context.Context, challengeID string, limit int) ([]entity.ChallengeEntry, error) {
	var result []entity.ChallengeEntry
	err := xcontext.DB(ctx).Model(&entity.ChallengeEntry{}).
		Where("challenge_id=?", challengeID).
		Order("reaction_count DESC, created_at ASC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *challengeEntryRepository) CountByChallenge(ctx context.Context, challengeID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.ChallengeEntry{}).
		Where("challenge_id=?", challengeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

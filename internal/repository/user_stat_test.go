package repository_test

import (
	"testing"
	"time"

	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userStatRepository_IncreaseMessageCount(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewUserStatRepository()

	now := time.Now()
	require.NoError(t, repo.IncreaseMessageCount(ctx, "user1", "space1", now))
	require.NoError(t, repo.IncreaseMessageCount(ctx, "user1", "space1", now.Add(time.Minute)))
	require.NoError(t, repo.IncreaseMessageCount(ctx, "user2", "space1", now))

	stat, err := repo.Get(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, 2, stat.MessageCount)
	require.Equal(t, 0, stat.ReactionCount)

	stat, err = repo.Get(ctx, "user2")
	require.NoError(t, err)
	require.Equal(t, 1, stat.MessageCount)
}

func Test_userStatRepository_IncreaseReactionCount(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewUserStatRepository()

	now := time.Now()
	require.NoError(t, repo.IncreaseMessageCount(ctx, "user1", "space1", now))
	require.NoError(t, repo.IncreaseReactionCount(ctx, "user1", "space1", now))
	require.NoError(t, repo.IncreaseReactionCount(ctx, "user1", "space1", now))

	stat, err := repo.Get(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, 1, stat.MessageCount)
	require.Equal(t, 2, stat.ReactionCount)
}

func Test_userStatRepository_GetTopBySpace(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewUserStatRepository()

	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncreaseMessageCount(ctx, "chatty", "space1", now))
	}
	require.NoError(t, repo.IncreaseMessageCount(ctx, "quiet", "space1", now))
	require.NoError(t, repo.IncreaseMessageCount(ctx, "outsider", "space2", now))

	top, err := repo.GetTopBySpace(ctx, "space1", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "chatty", top[0].UserID)
	require.Equal(t, "quiet", top[1].UserID)

	top, err = repo.GetTopBySpace(ctx, "space1", 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "chatty", top[0].UserID)
}

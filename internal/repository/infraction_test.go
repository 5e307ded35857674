package repository_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_infractionRepository_CountByUser(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewInfractionRepository()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Infraction{
			Base:    entity.Base{ID: uuid.NewString()},
			UserID:  "user1",
			SpaceID: "space1",
			Message: fmt.Sprintf("bad message %d", i),
		}))
	}

	require.NoError(t, repo.Create(ctx, &entity.Infraction{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  "user1",
		SpaceID: "space2",
		Message: "bad message elsewhere",
	}))

	count, err := repo.CountByUser(ctx, "user1", "space1")
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	count, err = repo.CountByUser(ctx, "user2", "space1")
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func Test_infractionRepository_TopOffenders(t *testing.T) {
	ctx := testutil.MockContext()
	repo := repository.NewInfractionRepository()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Infraction{
			Base:    entity.Base{ID: uuid.NewString()},
			UserID:  "repeat-offender",
			SpaceID: "space1",
			Message: "bad",
		}))
	}

	require.NoError(t, repo.Create(ctx, &entity.Infraction{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  "one-timer",
		SpaceID: "space1",
		Message: "bad",
	}))

	offenders, err := repo.TopOffenders(ctx, "space1", 10)
	require.NoError(t, err)
	require.Len(t, offenders, 2)
	require.Equal(t, "repeat-offender", offenders[0].UserID)
	require.Equal(t, int64(4), offenders[0].Count)
	require.Equal(t, "one-timer", offenders[1].UserID)
	require.Equal(t, int64(1), offenders[1].Count)
}

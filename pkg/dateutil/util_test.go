package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_NextDailyAt(t *testing.T) {
	now := time.Date(2023, 5, 10, 8, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC), NextDailyAt(now, 9))

	now = time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2023, 5, 11, 9, 0, 0, 0, time.UTC), NextDailyAt(now, 9))
}

func Test_NextWeeklyAt(t *testing.T) {
	// 2023-05-10 is a Wednesday.
	now := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	next := NextWeeklyAt(now, time.Sunday, 23)
	require.Equal(t, time.Date(2023, 5, 14, 23, 0, 0, 0, time.UTC), next)

	// Exactly at the trigger time, the next week is returned.
	now = time.Date(2023, 5, 14, 23, 0, 0, 0, time.UTC)
	next = NextWeeklyAt(now, time.Sunday, 23)
	require.Equal(t, time.Date(2023, 5, 21, 23, 0, 0, 0, time.UTC), next)
}

func Test_DaysLeft(t *testing.T) {
	now := time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 7, DaysLeft(now, now.AddDate(0, 0, 7)))
	require.Equal(t, 1, DaysLeft(now, now.Add(time.Hour)))
	require.Equal(t, 0, DaysLeft(now, now.Add(-time.Hour)))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_formatTokenAmount(t *testing.T) {
	require.Equal(t, "5", formatTokenAmount(5_000_000, 6))
	require.Equal(t, "1.5", formatTokenAmount(1_500_000, 6))
	require.Equal(t, "0.000001", formatTokenAmount(1, 6))
	require.Equal(t, "10", formatTokenAmount(10, 0))
	require.Equal(t, "0", formatTokenAmount(0, 6))
}

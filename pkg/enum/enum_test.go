package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type greetingKind string

var (
	morningGreeting = New(greetingKind("gm"))
	nightGreeting   = New(greetingKind("gn"))
)

func Test_ToEnum(t *testing.T) {
	kind, err := ToEnum[greetingKind]("gm")
	require.NoError(t, err)
	require.Equal(t, morningGreeting, kind)

	kind, err = ToEnum[greetingKind]("gn")
	require.NoError(t, err)
	require.Equal(t, nightGreeting, kind)

	_, err = ToEnum[greetingKind]("good afternoon")
	require.Error(t, err)
}

package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type tokenObj struct {
	SpaceID string `json:"space_id"`
}

func Test_jwtTokenEngine_GenerateVerify(t *testing.T) {
	engine := NewTokenEngine[tokenObj]("secret", time.Minute)

	token, err := engine.Generate("webhook", tokenObj{SpaceID: "space1"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "space1", obj.SpaceID)
}

func Test_jwtTokenEngine_VerifyWrongSecret(t *testing.T) {
	engine := NewTokenEngine[tokenObj]("secret", time.Minute)
	another := NewTokenEngine[tokenObj]("another-secret", time.Minute)

	token, err := engine.Generate("webhook", tokenObj{SpaceID: "space1"})
	require.NoError(t, err)

	_, err = another.Verify(token)
	require.Error(t, err)
}

func Test_jwtTokenEngine_VerifyExpired(t *testing.T) {
	engine := NewTokenEngine[tokenObj]("secret", -time.Minute)

	token, err := engine.Generate("webhook", tokenObj{SpaceID: "space1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

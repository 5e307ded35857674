package towns

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/lenstown/backend/config"
	"github.com/lenstown/backend/pkg/api"
	"github.com/stretchr/testify/require"
)

func newTestEndpoint(client api.MockAPIClient) *Endpoint {
	e := New(config.BotConfigs{Token: "token", UserID: "bot-user"})
	e.apiGenerator = &api.MockAPIGenerator{MockClient: client}
	return e
}

func Test_Endpoint_SendMessage(t *testing.T) {
	var posts int
	endpoint := newTestEndpoint(api.MockAPIClient{
		POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
			posts++
			return &api.Response{Code: http.StatusOK, Body: api.JSON{}}, nil
		},
	})

	err := endpoint.SendMessage(context.Background(), "channel1", "gm")
	require.NoError(t, err)
	require.Equal(t, 1, posts)
}

func Test_Endpoint_SendMessage_rateLimited(t *testing.T) {
	resetAt := time.Now().Add(time.Minute).Unix()
	header := http.Header{}
	header.Set("X-Ratelimit-Reset", strconv.FormatInt(resetAt, 10))

	var posts int
	endpoint := newTestEndpoint(api.MockAPIClient{
		POSTFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
			posts++
			return &api.Response{
				Code:   http.StatusTooManyRequests,
				Header: header,
				Body:   api.JSON{},
			}, nil
		},
	})

	err := endpoint.SendMessage(context.Background(), "channel1", "gm")
	require.Error(t, err)

	gotReset, ok := IsRateLimit(err)
	require.True(t, ok)
	require.Equal(t, time.Unix(resetAt, 0), gotReset)

	// The limit is remembered per channel, the next call never reaches the
	// gateway.
	err = endpoint.SendMessage(context.Background(), "channel1", "gm again")
	require.Error(t, err)
	_, ok = IsRateLimit(err)
	require.True(t, ok)
	require.Equal(t, 1, posts)

	// Other channels are not limited.
	err = endpoint.SendMessage(context.Background(), "channel2", "gm")
	require.Error(t, err)
	require.Equal(t, 2, posts)
}

func Test_Endpoint_HasAdminPermission(t *testing.T) {
	endpoint := newTestEndpoint(api.MockAPIClient{
		GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
			return &api.Response{
				Code: http.StatusOK,
				Body: api.JSON{"is_admin": true},
			}, nil
		},
	})

	isAdmin, err := endpoint.HasAdminPermission(context.Background(), "space1", "user1")
	require.NoError(t, err)
	require.True(t, isAdmin)
}

func Test_Endpoint_IsDefaultChannel(t *testing.T) {
	endpoint := newTestEndpoint(api.MockAPIClient{
		GETFunc: func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
			return &api.Response{
				Code: http.StatusOK,
				Body: api.JSON{"is_default": false},
			}, nil
		},
	})

	isDefault, err := endpoint.IsDefaultChannel(context.Background(), "space1", "channel1")
	require.NoError(t, err)
	require.False(t, isDefault)
}

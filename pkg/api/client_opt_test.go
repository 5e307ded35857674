package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Bearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/channels/channel1/messages", nil)
	Bearer("secret").Do(defaultClient{}, req)
	require.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
}

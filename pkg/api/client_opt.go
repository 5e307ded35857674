package api

import (
	"net/http"
)

type bearerOpt struct {
	token string
}

// Bearer authorizes a request with the bot's gateway token.
func Bearer(token string) *bearerOpt {
	return &bearerOpt{token: token}
}

func (opt *bearerOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+opt.token)
}

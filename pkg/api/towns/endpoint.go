package towns

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lenstown/backend/config"
	"github.com/lenstown/backend/pkg/api"
	"github.com/puzpuzpuz/xsync"
)

const userAgent = "LensTownBot (https://lenstown.xyz, 1.0)"

const (
	sendMessageResource = "send_message"
	banMemberResource   = "ban_member"
)

// Endpoint talks to the platform bot gateway on behalf of the bot identity.
type Endpoint struct {
	BotToken string
	BotID    string

	apiGenerator      api.Generator
	rateLimitResource *xsync.MapOf[string, *xsync.MapOf[string, time.Time]]
}

func New(cfg config.BotConfigs) *Endpoint {
	return &Endpoint{
		BotToken:          cfg.Token,
		BotID:             cfg.UserID,
		apiGenerator:      api.NewGenerator(cfg.Gateway...),
		rateLimitResource: xsync.NewMapOf[*xsync.MapOf[string, time.Time]](),
	}
}

func (e *Endpoint) SendMessage(ctx context.Context, channelID, text string) error {
	if err := e.checkLimitingResource(sendMessageResource, channelID); err != nil {
		return err
	}

	resp, err := e.apiGenerator.New("/channels/%s/messages", channelID).
		Header("User-Agent", userAgent).
		Body(api.JSON{"text": text}).
		POST(ctx, api.Bearer(e.BotToken))
	if err != nil {
		return err
	}

	if err := e.checkTooManyRequest(resp, sendMessageResource, channelID); err != nil {
		return err
	}

	if resp.Code != http.StatusOK {
		return errors.New("cannot send message")
	}

	return nil
}

func (e *Endpoint) SendReaction(ctx context.Context, channelID, messageID, emoji string) error {
	resp, err := e.apiGenerator.New("/channels/%s/messages/%s/reactions", channelID, messageID).
		Header("User-Agent", userAgent).
		Body(api.JSON{"emoji": emoji}).
		POST(ctx, api.Bearer(e.BotToken))
	if err != nil {
		return err
	}

	if resp.Code != http.StatusOK {
		return errors.New("cannot send reaction")
	}

	return nil
}

func (e *Endpoint) Ban(ctx context.Context, spaceID, userID string) error {
	if err := e.checkLimitingResource(banMemberResource, spaceID); err != nil {
		return err
	}

	resp, err := e.apiGenerator.New("/spaces/%s/bans", spaceID).
		Header("User-Agent", userAgent).
		Body(api.JSON{"user_id": userID}).
		POST(ctx, api.Bearer(e.BotToken))
	if err != nil {
		return err
	}

	if err := e.checkTooManyRequest(resp, banMemberResource, spaceID); err != nil {
		return err
	}

	if resp.Code != http.StatusOK {
		return errors.New("cannot ban member")
	}

	return nil
}

func (e *Endpoint) HasAdminPermission(ctx context.Context, spaceID, userID string) (bool, error) {
	resp, err := e.apiGenerator.New("/spaces/%s/members/%s/permissions", spaceID, userID).
		Header("User-Agent", userAgent).
		GET(ctx, api.Bearer(e.BotToken))
	if err != nil {
		return false, err
	}

	if resp.Code != http.StatusOK {
		return false, errors.New("cannot get member permissions")
	}

	return resp.Body.GetBool("is_admin")
}

func (e *Endpoint) IsDefaultChannel(ctx context.Context, spaceID, channelID string) (bool, error) {
	resp, err := e.apiGenerator.New("/spaces/%s/channels/%s", spaceID, channelID).
		Header("User-Agent", userAgent).
		GET(ctx, api.Bearer(e.BotToken))
	if err != nil {
		return false, err
	}

	if resp.Code != http.StatusOK {
		return false, errors.New("cannot get channel")
	}

	return resp.Body.GetBool("is_default")
}

func (e *Endpoint) checkLimitingResource(resource, identifier string) error {
	if limit, ok := e.rateLimitResource.Load(resource); ok {
		if resetAt, ok := limit.Load(identifier); ok {
			if resetAt.After(time.Now()) {
				return wrapRateLimit(resetAt.Unix())
			}

			// If the rate limit is reset, delete the limit for this resource.
			limit.Delete(identifier)
		}
	}

	return nil
}

func (e *Endpoint) checkTooManyRequest(resp *api.Response, resource, identifier string) error {
	if resp.Code == http.StatusTooManyRequests {
		resetAt, err := strconv.Atoi(resp.Header.Get("X-Ratelimit-Reset"))
		if err != nil {
			return err
		}

		resourceLimiter, _ := e.rateLimitResource.LoadOrStore(resource, xsync.NewMapOf[time.Time]())
		resourceLimiter.Store(identifier, time.Unix(int64(resetAt), 0))
		return wrapRateLimit(int64(resetAt))
	}

	return nil
}

package testutil

import (
	"context"
	"errors"

	"github.com/lenstown/backend/pkg/api/towns"
)

type MockTownsEndpoint struct {
	SendMessageFunc        func(context.Context, string, string) error
	SendReactionFunc       func(context.Context, string, string, string) error
	BanFunc                func(context.Context, string, string) error
	HasAdminPermissionFunc func(context.Context, string, string) (bool, error)
	IsDefaultChannelFunc   func(context.Context, string, string) (bool, error)
}

func (e *MockTownsEndpoint) SendMessage(ctx context.Context, channelID, text string) error {
	if e.SendMessageFunc != nil {
		return e.SendMessageFunc(ctx, channelID, text)
	}

	return nil
}

func (e *MockTownsEndpoint) SendReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if e.SendReactionFunc != nil {
		return e.SendReactionFunc(ctx, channelID, messageID, emoji)
	}

	return nil
}

func (e *MockTownsEndpoint) Ban(ctx context.Context, spaceID, userID string) error {
	if e.BanFunc != nil {
		return e.BanFunc(ctx, spaceID, userID)
	}

	return nil
}

func (e *MockTownsEndpoint) HasAdminPermission(ctx context.Context, spaceID, userID string) (bool, error) {
	if e.HasAdminPermissionFunc != nil {
		return e.HasAdminPermissionFunc(ctx, spaceID, userID)
	}

	return false, errors.New("not implemented")
}

func (e *MockTownsEndpoint) IsDefaultChannel(ctx context.Context, spaceID, channelID string) (bool, error) {
	if e.IsDefaultChannelFunc != nil {
		return e.IsDefaultChannelFunc(ctx, spaceID, channelID)
	}

	return false, errors.New("not implemented")
}

var _ towns.IEndpoint = (*MockTownsEndpoint)(nil)

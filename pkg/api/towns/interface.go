package towns

import "context"

type IEndpoint interface {
	SendMessage(ctx context.Context, channelID, text string) error
	SendReaction(ctx context.Context, channelID, messageID, emoji string) error
	Ban(ctx context.Context, spaceID, userID string) error
	HasAdminPermission(ctx context.Context, spaceID, userID string) (bool, error)
	IsDefaultChannel(ctx context.Context, spaceID, channelID string) (bool, error)
}

package domain

import (
	"testing"

	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/api/towns"
	"github.com/lenstown/backend/pkg/profanity"
	"github.com/lenstown/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestWebhookDomain(endpoint towns.IEndpoint) *webhookDomain {
	ethClient := &testutil.MockEthClient{}
	return NewWebhookDomain(
		NewStatisticDomain(repository.NewUserStatRepository(), endpoint),
		NewModerationDomain(repository.NewInfractionRepository(), endpoint, profanity.NewFilter()),
		NewChallengeDomain(
			repository.NewChallengeRepository(),
			repository.NewChallengeEntryRepository(),
			repository.NewChallengeWinnerRepository(),
			repository.NewTokenPayoutRepository(),
			endpoint,
			ethClient,
		),
		NewGreetingDomain(repository.NewBotChannelRepository(), endpoint),
		NewTipDomain(repository.NewTokenPayoutRepository(), endpoint, ethClient),
		NewConversationDomain(endpoint),
		NewHelpDomain(endpoint),
		endpoint,
	)
}

func Test_webhookDomain_Handle_skipsBotMessages(t *testing.T) {
	ctx := testutil.MockContext()

	var sent []string
	webhookDomain := newTestWebhookDomain(adminEndpoint(&sent))

	err := webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeMessage,
		Message: &model.MessageEvent{
			UserID: "bot-user", SpaceID: "space1", ChannelID: "channel1",
			MessageID: "message1", Text: "this shit would be an infraction",
		},
	})
	require.NoError(t, err)
	require.Empty(t, sent)

	count, err := repository.NewInfractionRepository().CountByUser(ctx, "bot-user", "space1")
	require.NoError(t, err)
	require.Zero(t, count)
}

func Test_webhookDomain_Handle_profaneMessageShortCircuits(t *testing.T) {
	ctx := testutil.MockContext()

	challenge, err := testutil.SampleChallenge(ctx, &entity.Challenge{SpaceID: "space1"})
	require.NoError(t, err)

	var sent []string
	webhookDomain := newTestWebhookDomain(adminEndpoint(&sent))

	// A profane message is logged as an infraction and nothing else, even
	// when it carries the challenge hashtag.
	err = webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeMessage,
		Message: &model.MessageEvent{
			UserID: "member", SpaceID: "space1", ChannelID: "channel1",
			MessageID: "message1", Text: "shit #weeklychallenge",
		},
	})
	require.NoError(t, err)

	count, err := repository.NewInfractionRepository().CountByUser(ctx, "member", "space1")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	entries, err := repository.NewChallengeEntryRepository().CountByChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	require.Zero(t, entries)

	stats, err := repository.NewUserStatRepository().GetTopBySpace(ctx, "space1", 10)
	require.NoError(t, err)
	require.Empty(t, stats)
}

func Test_webhookDomain_Handle_memberMessageRecordsEntry(t *testing.T) {
	ctx := testutil.MockContext()

	challenge, err := testutil.SampleChallenge(ctx, &entity.Challenge{SpaceID: "space1"})
	require.NoError(t, err)

	var sent []string
	webhookDomain := newTestWebhookDomain(adminEndpoint(&sent))

	err = webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeMessage,
		Message: &model.MessageEvent{
			UserID: "member", SpaceID: "space1", ChannelID: "channel1",
			MessageID: "message1", Text: "my best shot #weeklychallenge",
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"✅ <@member> entered this week's challenge! Good luck! 📷"}, sent)

	// The same message from an admin counts toward stats but never becomes
	// an entry.
	err = webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeMessage,
		Message: &model.MessageEvent{
			UserID: "admin", SpaceID: "space1", ChannelID: "channel1",
			MessageID: "message2", Text: "my best shot #weeklychallenge",
		},
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	entries, err := repository.NewChallengeEntryRepository().CountByChallenge(ctx, challenge.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), entries)

	userStatRepo := repository.NewUserStatRepository()
	for _, userID := range []string{"member", "admin"} {
		stat, err := userStatRepo.Get(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, 1, stat.MessageCount)
	}
}

func Test_webhookDomain_Handle_reaction(t *testing.T) {
	ctx := testutil.MockContext()

	challenge, err := testutil.SampleChallenge(ctx, &entity.Challenge{SpaceID: "space1"})
	require.NoError(t, err)

	_, err = testutil.SampleChallengeEntry(ctx, &entity.ChallengeEntry{
		ChallengeID: challenge.ID, UserID: "member", MessageID: "message1",
	})
	require.NoError(t, err)

	var sent []string
	webhookDomain := newTestWebhookDomain(adminEndpoint(&sent))

	err = webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeReaction,
		Reaction: &model.ReactionEvent{
			UserID: "member2", SpaceID: "space1", ChannelID: "channel1",
			MessageID: "message1", Emoji: "🔥",
		},
	})
	require.NoError(t, err)

	// The bot's own reactions never count.
	err = webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeReaction,
		Reaction: &model.ReactionEvent{
			UserID: "bot-user", SpaceID: "space1", ChannelID: "channel1",
			MessageID: "message1", Emoji: "🔥",
		},
	})
	require.NoError(t, err)

	entries, err := repository.NewChallengeEntryRepository().GetTopByChallenge(ctx, challenge.ID, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 1, entries[0].ReactionCount)

	stat, err := repository.NewUserStatRepository().Get(ctx, "member2")
	require.NoError(t, err)
	require.Equal(t, 1, stat.ReactionCount)
	require.Zero(t, stat.MessageCount)
}

func Test_webhookDomain_Handle_slashCommand(t *testing.T) {
	ctx := testutil.MockContext()

	var sent []string
	webhookDomain := newTestWebhookDomain(adminEndpoint(&sent))

	err := webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeSlashCommand,
		SlashCommand: &model.SlashCommandEvent{
			Command: "help", UserID: "member", SpaceID: "space1", ChannelID: "channel1",
		},
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.Contains(t, sent[0], "Available Commands")

	err = webhookDomain.Handle(ctx, &model.WebhookEvent{
		Type: model.WebhookTypeSlashCommand,
		SlashCommand: &model.SlashCommandEvent{
			Command: "frobnicate", UserID: "member", SpaceID: "space1", ChannelID: "channel1",
		},
	})
	require.Error(t, err)
}

func Test_webhookDomain_Handle_invalidEvents(t *testing.T) {
	ctx := testutil.MockContext()
	webhookDomain := newTestWebhookDomain(&testutil.MockTownsEndpoint{})

	err := webhookDomain.Handle(ctx, &model.WebhookEvent{Type: model.WebhookTypeMessage})
	require.Error(t, err)

	err = webhookDomain.Handle(ctx, &model.WebhookEvent{Type: "telepathy"})
	require.Error(t, err)
}

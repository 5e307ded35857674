package domain

import (
	"context"
	"testing"

	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_conversationDomain_Reply(t *testing.T) {
	ctx := testutil.MockContext()

	testcases := []struct {
		text         string
		wantMessage  string
		wantReaction string
	}{
		{text: "gm bot", wantMessage: "GM <@user1>! ☀️📸"},
		{text: "bot good morning", wantMessage: "GM <@user1>! ☀️📸"},
		{text: "gn bot", wantMessage: "Good night <@user1>! 🌙📸"},
		{text: "hello everyone", wantMessage: "Hello <@user1>! 👋📸"},
		{text: "bot wagmi", wantReaction: "🚀"},
		{text: "to the moon bot", wantReaction: "🌙"},
		{text: "!help", wantMessage: "💡 For now, /leaderboard brings up the leaderboard"},
		{text: "just a regular message"},
	}

	for _, tc := range testcases {
		var messages, reactions []string
		endpoint := &testutil.MockTownsEndpoint{
			SendMessageFunc: func(ctx context.Context, channelID, text string) error {
				messages = append(messages, text)
				return nil
			},
			SendReactionFunc: func(ctx context.Context, channelID, messageID, emoji string) error {
				reactions = append(reactions, emoji)
				return nil
			},
		}

		conversationDomain := NewConversationDomain(endpoint)
		err := conversationDomain.Reply(ctx, &model.MessageEvent{
			UserID: "user1", ChannelID: "channel1", MessageID: "message1", Text: tc.text,
		})
		require.NoError(t, err, tc.text)

		if tc.wantMessage != "" {
			require.Equal(t, []string{tc.wantMessage}, messages, tc.text)
		} else {
			require.Empty(t, messages, tc.text)
		}

		if tc.wantReaction != "" {
			require.Equal(t, []string{tc.wantReaction}, reactions, tc.text)
		} else {
			require.Empty(t, reactions, tc.text)
		}
	}
}

func Test_conversationDomain_WelcomeJoin(t *testing.T) {
	ctx := testutil.MockContext()

	var sent []string
	endpoint := &testutil.MockTownsEndpoint{
		SendMessageFunc: func(ctx context.Context, channelID, text string) error {
			sent = append(sent, text)
			return nil
		},
		IsDefaultChannelFunc: func(ctx context.Context, spaceID, channelID string) (bool, error) {
			return channelID == "general", nil
		},
	}

	conversationDomain := NewConversationDomain(endpoint)

	// The bot joining is ignored. MockContext registers the bot as bot-user.
	err := conversationDomain.WelcomeJoin(ctx, &model.ChannelJoinEvent{
		UserID: "bot-user", SpaceID: "space1", ChannelID: "general",
	})
	require.NoError(t, err)
	require.Empty(t, sent)

	// Joins outside the default channel are ignored.
	err = conversationDomain.WelcomeJoin(ctx, &model.ChannelJoinEvent{
		UserID: "user1", SpaceID: "space1", ChannelID: "side-channel",
	})
	require.NoError(t, err)
	require.Empty(t, sent)

	err = conversationDomain.WelcomeJoin(ctx, &model.ChannelJoinEvent{
		UserID: "user1", SpaceID: "space1", ChannelID: "general",
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.Contains(t, sent[0], "Welcome <@user1>!")
}

func Test_conversationDomain_AcknowledgeTip(t *testing.T) {
	ctx := testutil.MockContext()

	var sent []string
	endpoint := &testutil.MockTownsEndpoint{
		SendMessageFunc: func(ctx context.Context, channelID, text string) error {
			sent = append(sent, text)
			return nil
		},
	}

	conversationDomain := NewConversationDomain(endpoint)
	err := conversationDomain.AcknowledgeTip(ctx, &model.TipEvent{
		UserID: "user1", ChannelID: "channel1",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"I see you champ! Keep that coming! <@user1>"}, sent)
}

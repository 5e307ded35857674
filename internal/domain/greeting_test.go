package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/model"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_greetingDomain_SetGM(t *testing.T) {
	ctx := testutil.MockContext()
	botChannelRepo := repository.NewBotChannelRepository()

	var sent []string
	greetingDomain := NewGreetingDomain(botChannelRepo, adminEndpoint(&sent))

	err := greetingDomain.SetGM(ctx, &model.SlashCommandEvent{
		UserID: "admin", SpaceID: "space1", ChannelID: "channel1",
		Args: []string{"rise", "and", "shine"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"✅ We keep the 'gm' rolling every morning!"}, sent)

	channels, err := botChannelRepo.GetEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	require.Equal(t, "rise and shine", channels[0].ScheduledMessage)
}

func Test_greetingDomain_SetGM_notAdmin(t *testing.T) {
	ctx := testutil.MockContext()
	botChannelRepo := repository.NewBotChannelRepository()

	var sent []string
	greetingDomain := NewGreetingDomain(botChannelRepo, adminEndpoint(&sent))

	err := greetingDomain.SetGM(ctx, &model.SlashCommandEvent{
		UserID: "member", SpaceID: "space1", ChannelID: "channel1",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"❌ Only admins can schedule gms."}, sent)

	channels, err := botChannelRepo.GetEnabled(ctx)
	require.NoError(t, err)
	require.Empty(t, channels)
}

func Test_greetingDomain_Broadcast(t *testing.T) {
	ctx := testutil.MockContext()
	botChannelRepo := repository.NewBotChannelRepository()

	_, err := testutil.SampleBotChannel(ctx, &entity.BotChannel{
		ChannelID: "broken", ScheduledMessage: "gm!",
	})
	require.NoError(t, err)

	_, err = testutil.SampleBotChannel(ctx, &entity.BotChannel{
		ChannelID: "healthy", ScheduledMessage: "gm!",
	})
	require.NoError(t, err)

	var greeted []string
	endpoint := &testutil.MockTownsEndpoint{
		SendMessageFunc: func(ctx context.Context, channelID, text string) error {
			if channelID == "broken" {
				return errors.New("channel gone")
			}

			greeted = append(greeted, channelID)
			return nil
		},
	}

	greetingDomain := NewGreetingDomain(botChannelRepo, endpoint)

	// One channel failing does not stop the others.
	now := time.Now()
	require.NoError(t, greetingDomain.Broadcast(ctx, now))
	require.Equal(t, []string{"healthy"}, greeted)

	channels, err := botChannelRepo.GetEnabled(ctx)
	require.NoError(t, err)
	for _, channel := range channels {
		if channel.ChannelID == "healthy" {
			require.True(t, channel.LastCronPost.Equal(now))
		} else {
			require.True(t, channel.LastCronPost.IsZero())
		}
	}

	// A second run within the same tick sends again, there is no dedup.
	later := now.Add(time.Minute)
	require.NoError(t, greetingDomain.Broadcast(ctx, later))
	require.Equal(t, []string{"healthy", "healthy"}, greeted)
}

func Test_greetingDomain_Broadcast_defaultMessage(t *testing.T) {
	ctx := testutil.MockContext()
	botChannelRepo := repository.NewBotChannelRepository()

	// A channel enabled without a custom message falls back to the
	// configured default.
	require.NoError(t, botChannelRepo.Enable(ctx, &entity.BotChannel{
		Base:        entity.Base{ID: uuid.NewString()},
		SpaceID:     "space1",
		ChannelID:   "channel1",
		CronEnabled: true,
	}))

	var sent []string
	endpoint := &testutil.MockTownsEndpoint{
		SendMessageFunc: func(ctx context.Context, channelID, text string) error {
			sent = append(sent, text)
			return nil
		},
	}

	greetingDomain := NewGreetingDomain(botChannelRepo, endpoint)
	require.NoError(t, greetingDomain.Broadcast(ctx, time.Now()))
	require.Equal(t, []string{"gm gm ☀️"}, sent)
}

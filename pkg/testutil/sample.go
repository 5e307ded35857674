package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/repository"
)

// SampleChallenge creates an active challenge with randomized fields. Non-zero
// fields of init overwrite the sample before it is saved.
func SampleChallenge(ctx context.Context, init *entity.Challenge) (entity.Challenge, error) {
	challengeRepo := repository.NewChallengeRepository()

	now := time.Now()
	sample := &entity.Challenge{
		Base:      entity.Base{ID: uuid.NewString()},
		SpaceID:   uuid.NewString(),
		ChannelID: uuid.NewString(),
		Theme:     uuid.NewString(),
		StartTime: now,
		EndTime:   now.Add(7 * 24 * time.Hour),
		Active:    true,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := challengeRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleChallengeEntry creates an entry of the given challenge.
func SampleChallengeEntry(ctx context.Context, init *entity.ChallengeEntry) (entity.ChallengeEntry, error) {
	entryRepo := repository.NewChallengeEntryRepository()

	sample := &entity.ChallengeEntry{
		Base:        entity.Base{ID: uuid.NewString()},
		ChallengeID: uuid.NewString(),
		UserID:      uuid.NewString(),
		MessageID:   uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := entryRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleBotChannel creates a greeting-enabled channel.
func SampleBotChannel(ctx context.Context, init *entity.BotChannel) (entity.BotChannel, error) {
	botChannelRepo := repository.NewBotChannelRepository()

	sample := &entity.BotChannel{
		Base:             entity.Base{ID: uuid.NewString()},
		SpaceID:          uuid.NewString(),
		ChannelID:        uuid.NewString(),
		ScheduledMessage: "gm!",
		CronEnabled:      true,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := botChannelRepo.Enable(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}

package cron

import (
	"context"
	"time"

	"github.com/lenstown/backend/internal/domain"
	"github.com/lenstown/backend/pkg/dateutil"
	"github.com/lenstown/backend/pkg/xcontext"
)

const resolutionHourUTC = 23

// ChallengeResolutionCronJob sweeps expired active challenges every Sunday
// at 23:00 UTC and resolves each one.
type ChallengeResolutionCronJob struct {
	challengeDomain domain.ChallengeDomain
}

func NewChallengeResolutionCronJob(challengeDomain domain.ChallengeDomain) *ChallengeResolutionCronJob {
	return &ChallengeResolutionCronJob{challengeDomain: challengeDomain}
}

func (job *ChallengeResolutionCronJob) Do(ctx context.Context) {
	xcontext.Logger(ctx).Infof("Running weekly challenge results")
	if err := job.challengeDomain.ResolveExpired(ctx, time.Now()); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot resolve expired challenges: %v", err)
	}
}

func (job *ChallengeResolutionCronJob) RunNow() bool {
	return false
}

func (job *ChallengeResolutionCronJob) Next() time.Time {
	return dateutil.NextWeeklyAt(time.Now(), time.Sunday, resolutionHourUTC)
}

package cron

import (
	"context"
	"time"

	"github.com/lenstown/backend/internal/domain"
	"github.com/lenstown/backend/pkg/dateutil"
	"github.com/lenstown/backend/pkg/xcontext"
)

const greetingHourUTC = 9

// DailyGreetingCronJob posts the configured greeting to every enabled
// channel once a day at 09:00 UTC.
type DailyGreetingCronJob struct {
	greetingDomain domain.GreetingDomain
}

func NewDailyGreetingCronJob(greetingDomain domain.GreetingDomain) *DailyGreetingCronJob {
	return &DailyGreetingCronJob{greetingDomain: greetingDomain}
}

func (job *DailyGreetingCronJob) Do(ctx context.Context) {
	if err := job.greetingDomain.Broadcast(ctx, time.Now()); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot broadcast daily greeting: %v", err)
	}
}

func (job *DailyGreetingCronJob) RunNow() bool {
	return false
}

func (job *DailyGreetingCronJob) Next() time.Time {
	return dateutil.NextDailyAt(time.Now(), greetingHourUTC)
}

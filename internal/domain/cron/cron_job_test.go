package cron

import (
	"context"
	"testing"
	"time"

	"github.com/lenstown/backend/pkg/testutil"
)

type fakeJob struct {
	ran    chan struct{}
	runNow bool
	delay  time.Duration
}

func (j *fakeJob) Do(ctx context.Context) { j.ran <- struct{}{} }
func (j *fakeJob) RunNow() bool           { return j.runNow }
func (j *fakeJob) Next() time.Time        { return time.Now().Add(j.delay) }

func Test_CronJobManager_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.MockContext())
	defer cancel()

	immediate := &fakeJob{ran: make(chan struct{}, 16), runNow: true, delay: time.Hour}
	scheduled := &fakeJob{ran: make(chan struct{}, 16), runNow: false, delay: 10 * time.Millisecond}

	manager := NewCronJobManager()
	manager.Register(immediate)
	manager.Register(scheduled)

	stopped := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(stopped)
	}()

	select {
	case <-immediate.ran:
	case <-time.After(time.Second):
		t.Fatal("run-now job did not run")
	}

	select {
	case <-scheduled.ran:
	case <-time.After(time.Second):
		t.Fatal("scheduled job did not run")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("manager did not stop on cancel")
	}
}

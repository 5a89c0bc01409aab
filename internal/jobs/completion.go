package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/restaurant-booking/internal/repository"
	"github.com/Eursukkul/restaurant-booking/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// CompletionJob moves confirmed bookings whose seating has ended to Completed.
type CompletionJob struct {
	repo repository.BookingRepository
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewCompletionJob(repo repository.BookingRepository, log logrus.FieldLogger) *CompletionJob {
	return &CompletionJob{repo: repo, log: log, now: time.Now}
}

// Run completes every confirmed booking that started more than one
// turnover window ago and returns how many rows changed.
func (j *CompletionJob) Run(ctx context.Context) (int64, error) {
	cutoff := j.now().UTC().Truncate(time.Second).Add(-service.TurnoverWindow)

	n, err := j.repo.CompleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("complete bookings before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	if n > 0 {
		j.log.WithFields(logrus.Fields{
			"completed": n,
			"cutoff":    cutoff,
		}).Info("bookings completed")
	}
	return n, nil
}

// Schedule registers the job on a new scheduler. The caller starts and stops it.
func Schedule(ctx context.Context, job *CompletionJob, schedule string, loc *time.Location) (*cron.Cron, error) {
	if loc == nil {
		loc = time.UTC
	}
	sched := cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := sched.AddFunc(schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				job.log.WithField("panic", r).Error("completion job panicked")
			}
		}()
		if _, err := job.Run(ctx); err != nil {
			job.log.WithError(err).Error("completion job failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule completion job %q: %w", schedule, err)
	}
	return sched, nil
}

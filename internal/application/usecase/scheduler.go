package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/onramp/internal/logging"
)

// SchedulePolicy decides how Scheduler spaces out jobs.
type SchedulePolicy string

const (
	// ScheduleStagger starts job i after i*delay without waiting for earlier jobs.
	ScheduleStagger SchedulePolicy = "stagger"
	// ScheduleSerial runs jobs one at a time with delay between them.
	ScheduleSerial SchedulePolicy = "serial"

	DefaultScheduleDelay = 1500 * time.Millisecond
)

// Job is one resource load.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler spreads API calls over time so a dashboard refresh does not burst
// the rate limit.
type Scheduler struct {
	policy SchedulePolicy
	delay  time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewScheduler returns a scheduler. Unknown policies fall back to stagger.
func NewScheduler(policy SchedulePolicy, delay time.Duration) *Scheduler {
	if policy != ScheduleSerial {
		policy = ScheduleStagger
	}
	if delay < 0 {
		delay = 0
	}
	return &Scheduler{policy: policy, delay: delay, sleep: sleepCtx}
}

// Policy returns the active policy.
func (s *Scheduler) Policy() SchedulePolicy {
	return s.policy
}

// Run executes jobs and waits for all of them. A failing job does not stop the
// others; failures are joined into the returned error.
func (s *Scheduler) Run(ctx context.Context, jobs ...Job) error {
	if s.policy == ScheduleSerial {
		return s.runSerial(ctx, jobs)
	}
	return s.runStaggered(ctx, jobs)
}

func (s *Scheduler) runSerial(ctx context.Context, jobs []Job) error {
	log := logging.FromContext(logging.WithComponent(ctx, "scheduler"))

	var errs []error
	for i, job := range jobs {
		if i > 0 && s.delay > 0 {
			if err := s.sleep(ctx, s.delay); err != nil {
				errs = append(errs, err)
				break
			}
		}
		if err := job.Run(ctx); err != nil {
			log.Debug().Err(err).Str("job", job.Name).Msg("scheduled job failed")
			errs = append(errs, fmt.Errorf("%s: %w", job.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Scheduler) runStaggered(ctx context.Context, jobs []Job) error {
	log := logging.FromContext(logging.WithComponent(ctx, "scheduler"))

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for i, job := range jobs {
		g.Go(func() error {
			if wait := time.Duration(i) * s.delay; wait > 0 {
				if err := s.sleep(ctx, wait); err != nil {
					return err
				}
			}
			if err := job.Run(ctx); err != nil {
				log.Debug().Err(err).Str("job", job.Name).Msg("scheduled job failed")
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", job.Name, err))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

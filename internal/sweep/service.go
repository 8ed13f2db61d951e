package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/metrics"
)

const (
	defaultInterval     = 15 * time.Minute
	defaultStartupDelay = 15 * time.Second
)

// ServiceParams configure one sweep loop.
type ServiceParams struct {
	Name     string
	Logger   *logger.Logger
	Registry *Registry
	Metrics  *metrics.SweepMetrics
	Interval time.Duration
	// StartupDelay is the wait before the first cycle, so a fresh process
	// checks soon after launch instead of idling a full interval.
	StartupDelay time.Duration
}

// Service executes registered jobs on a fixed cadence after a short startup
// delay. Cycles are idempotent by construction: every job bounds its side
// effects with dedup keys, so an extra cycle only costs redundant condition
// checks. Canceling the context stops the timer loop; no cycle starts after
// shutdown is requested.
type Service struct {
	name     string
	logg     *logger.Logger
	registry *Registry
	metrics  *metrics.SweepMetrics
	interval time.Duration
	delay    time.Duration
}

// NewService builds a sweep service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("name required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	registry := params.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	interval := params.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	delay := params.StartupDelay
	if delay <= 0 {
		delay = defaultStartupDelay
	}
	return &Service{
		name:     params.Name,
		logg:     params.Logger,
		registry: registry,
		metrics:  params.Metrics,
		interval: interval,
		delay:    delay,
	}, nil
}

// Run starts the sweep loop until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = s.logg.WithField(ctx, "sweep", s.name)

	startup := time.NewTimer(s.delay)
	defer startup.Stop()
	select {
	case <-ctx.Done():
		s.logg.Info(ctx, "sweep service context canceled")
		return ctx.Err()
	case <-startup.C:
		s.runCycle(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logg.Info(ctx, "sweep service context canceled")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Service) runCycle(ctx context.Context) {
	s.logg.Info(ctx, "sweep starting")
	for _, job := range s.registry.Jobs() {
		s.runJob(ctx, job)
	}
	s.logg.Info(ctx, "sweep complete")
}

func (s *Service) runJob(ctx context.Context, job Job) {
	jobCtx := s.logg.WithField(ctx, "job", job.Name())
	s.logg.Info(jobCtx, "job start")
	start := time.Now()
	err := job.Run(jobCtx)
	duration := time.Since(start)
	s.observeDuration(job.Name(), duration)
	jobCtx = s.logg.WithField(jobCtx, "duration_ms", duration.Milliseconds())
	if err != nil {
		s.logg.Error(jobCtx, "job failed", err)
		s.recordFailure(job.Name())
		return
	}
	s.logg.Info(jobCtx, "job completed")
	s.recordSuccess(job.Name())
}

func (s *Service) observeDuration(job string, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveDuration(job, duration)
}

func (s *Service) recordSuccess(job string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncSuccess(job)
}

func (s *Service) recordFailure(job string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncFailure(job)
}

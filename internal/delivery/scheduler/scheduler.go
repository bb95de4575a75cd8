// Package scheduler runs the invitation expiry sweep and retention pruning on a fixed cadence.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"smokebreak/config"
	"smokebreak/internal/delivery"
	"smokebreak/internal/domain/lifecycle"
	"smokebreak/internal/usecase"

	"go.uber.org/fx"
)

// runTimeout bounds a single sweep.
const runTimeout = 30 * time.Second

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	InvitationUC usecase.InvitationUsecase
	SessionUC    usecase.SessionUsecase
}

type scheduler struct {
	interval     time.Duration
	retention    time.Duration
	invitationUC usecase.InvitationUsecase
	sessionUC    usecase.SessionUsecase
	logger       *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler builds the background sweep. It does nothing unless scheduler.sweepInterval is set.
func NewScheduler(params Params) delivery.Delivery {
	s := newScheduler(params.Cfg.Scheduler, params.InvitationUC, params.SessionUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newScheduler(
	cfg *config.SchedulerConfig,
	invitationUC usecase.InvitationUsecase,
	sessionUC usecase.SessionUsecase,
	logger *slog.Logger,
) *scheduler {
	s := &scheduler{
		invitationUC: invitationUC,
		sessionUC:    sessionUC,
		logger:       logger.With(slog.String("component", "scheduler")),
		stopCh:       make(chan struct{}),
	}
	if cfg != nil {
		s.interval = cfg.SweepInterval
		s.retention = cfg.Retention
	}

	return s
}

// Serve blocks until the scheduler is stopped or ctx ends.
func (s *scheduler) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Scheduled sweep disabled")

		return nil
	}

	s.wg.Add(1)
	defer s.wg.Done()

	s.logger.Info("Scheduler started",
		slog.Duration("interval", s.interval),
		slog.Duration("retention", s.retention),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce expires overdue invitations and prunes old history.
func (s *scheduler) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	expired, err := s.invitationUC.ExpireSweep(ctx)
	if err != nil {
		s.logger.Error("Expiry sweep failed", slog.Any("error", err))
	} else if expired > 0 {
		s.logger.Info("Expired invitations", slog.Int64("count", expired))
	}

	if s.retention <= 0 {
		return
	}

	invitations, sessions, err := s.sessionUC.Prune(ctx, s.retention)
	if err != nil {
		s.logger.Error("Prune failed", slog.Any("error", err))

		return
	}
	if invitations > 0 || sessions > 0 {
		s.logger.Info("Pruned history",
			slog.Int64("invitations", invitations),
			slog.Int64("sessions", sessions),
		)
	}
}

func (s *scheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		s.logger.Info("Scheduler stopped")
	case <-waitCtx.Done():
		s.logger.Warn("Scheduler did not stop in time")
	}

	return nil
}

package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"smokebreak/config"
	mockUsecase "smokebreak/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

func TestScheduler_DisabledReturnsImmediately(t *testing.T) {
	s := newScheduler(nil, mockUsecase.NewMockInvitationUsecase(t), mockUsecase.NewMockSessionUsecase(t), discard)

	assert.NoError(t, s.Serve(context.Background()))
}

func TestScheduler_RunOnceSweepsAndPrunes(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	invitations.EXPECT().ExpireSweep(mock.Anything).Return(int64(2), nil).Once()
	sessions.EXPECT().Prune(mock.Anything, 30*24*time.Hour).Return(int64(4), int64(1), nil).Once()

	s := newScheduler(&config.SchedulerConfig{SweepInterval: time.Minute, Retention: 30 * 24 * time.Hour}, invitations, sessions, discard)
	s.runOnce(context.Background())
}

func TestScheduler_SweepFailureStillPrunes(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	sessions := mockUsecase.NewMockSessionUsecase(t)
	invitations.EXPECT().ExpireSweep(mock.Anything).Return(int64(0), errors.New("remote down")).Once()
	sessions.EXPECT().Prune(mock.Anything, time.Hour).Return(int64(0), int64(0), nil).Once()

	s := newScheduler(&config.SchedulerConfig{SweepInterval: time.Minute, Retention: time.Hour}, invitations, sessions, discard)
	s.runOnce(context.Background())
}

func TestScheduler_NoRetentionSkipsPrune(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	invitations.EXPECT().ExpireSweep(mock.Anything).Return(int64(0), nil).Once()

	s := newScheduler(&config.SchedulerConfig{SweepInterval: time.Minute}, invitations, mockUsecase.NewMockSessionUsecase(t), discard)
	s.runOnce(context.Background())
}

func TestScheduler_ServeTicksUntilStopped(t *testing.T) {
	invitations := mockUsecase.NewMockInvitationUsecase(t)
	invitations.EXPECT().ExpireSweep(mock.Anything).Return(int64(0), nil)

	s := newScheduler(&config.SchedulerConfig{SweepInterval: 10 * time.Millisecond}, invitations, mockUsecase.NewMockSessionUsecase(t), discard)

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background()) }()

	assert.Eventually(t, func() bool {
		return len(invitations.Calls) >= 2
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, s.stop(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

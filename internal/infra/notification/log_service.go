package notification

import (
	"context"
	"log/slog"

	"smokebreak/internal/domain/service"
)

type logService struct {
	logger *slog.Logger
}

// NewLogService returns a NotificationService that only logs messages. It stands in for
// Firebase Cloud Messaging when no firebase section is configured.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger.With(slog.String("component", "push"))}
}

func (s *logService) SendSingleNotification(ctx context.Context, token string, msg service.PushMessage) error {
	s.log(1, msg)

	return nil
}

func (s *logService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, errTooManyTokens(len(tokens))
	}
	s.log(len(tokens), msg)

	return len(tokens), 0, nil, nil
}

func (s *logService) log(recipients int, msg service.PushMessage) {
	s.logger.Info("Push notification",
		slog.String("channel", string(msg.Channel)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Int("recipients", recipients),
	)
}

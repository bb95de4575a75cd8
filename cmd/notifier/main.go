package main

import (
	"context"
	"log/slog"
	"os"

	"smokebreak/config"
	"smokebreak/internal/delivery"
	"smokebreak/internal/delivery/worker"
	"smokebreak/internal/delivery/worker/handler"
	"smokebreak/internal/domain/service"
	firebaseapp "smokebreak/internal/infra/firebase"
	logs "smokebreak/internal/infra/log"
	"smokebreak/internal/infra/notification"
	"smokebreak/internal/infra/persistence/remote"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		remote.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewUserStore,
			remote.NewMemberStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			newFirebaseApp,
			newNotificationService,
		),
	)
}

func newFirebaseApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	app, err := firebaseapp.NewApp(ctx, cfg, logger)
	if errors.Is(err, firebaseapp.ErrNotConfigured) {
		logger.Warn("Firebase not configured, push notifications will only be logged")

		return nil, nil
	}

	return app, err
}

func newNotificationService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil {
		return notification.NewLogService(logger), nil
	}

	return notification.NewFirebaseService(ctx, app)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

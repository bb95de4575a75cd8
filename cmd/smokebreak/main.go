package main

import (
	"context"
	"log/slog"
	"os"

	"smokebreak/config"
	"smokebreak/internal/delivery"
	"smokebreak/internal/delivery/api"
	"smokebreak/internal/delivery/api/middleware"
	"smokebreak/internal/delivery/api/router/handler"
	"smokebreak/internal/delivery/scheduler"
	workerhandler "smokebreak/internal/delivery/worker/handler"
	"smokebreak/internal/domain/constants"
	"smokebreak/internal/domain/repository"
	"smokebreak/internal/domain/service"
	"smokebreak/internal/infra/auth"
	"smokebreak/internal/infra/auth/google"
	firebaseapp "smokebreak/internal/infra/firebase"
	"smokebreak/internal/infra/identity"
	logs "smokebreak/internal/infra/log"
	"smokebreak/internal/infra/notification"
	"smokebreak/internal/infra/persistence/remote"
	"smokebreak/internal/infra/persistence/sqlite"
	"smokebreak/internal/infra/pubsub"
	"smokebreak/internal/infra/qrcode"
	"smokebreak/internal/usecase/impl"
	"smokebreak/internal/viewmodel"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
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
		injectUsecase(),
		injectViewModel(),
		injectMiddleware(),
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
		sqlite.NewChangeFeed,
		func(feed *sqlite.ChangeFeed) repository.ChangeFeed { return feed },
		sqlite.New,
		remote.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewTransactionManager,
			sqlite.NewUserRepository,
			sqlite.NewCredentialRepository,
			sqlite.NewGroupRepository,
			sqlite.NewMemberRepository,
			sqlite.NewInvitationRepository,
			sqlite.NewSessionRepository,
			remote.NewUserStore,
			remote.NewGroupStore,
			remote.NewMemberStore,
			remote.NewInvitationStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewTokenVerifier,
			newFirebaseApp,
			identity.NewIdentityProvider,
			newNotificationService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newFirebaseApp returns a nil app when no firebase section is configured.
func newFirebaseApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	app, err := firebaseapp.NewApp(ctx, cfg, logger)
	if errors.Is(err, firebaseapp.ErrNotConfigured) {
		return nil, nil // Firebase is optional
	}

	return app, err
}

// newNotificationService sends through Firebase Cloud Messaging when an app is available.
func newNotificationService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil {
		return notification.NewLogService(logger), nil
	}

	return notification.NewFirebaseService(ctx, app)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewGroupService,
			impl.NewInvitationService,
			impl.NewSessionService,
		),
	)
}

func injectViewModel() fx.Option {
	return fx.Provide(
		viewmodel.NewFactory,
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewGroupHandler,
			handler.NewInvitationHandler,
			handler.NewSessionHandler,
			handler.NewStreamHandler,
			newLocalPushHandler,
		),
	)
}

// newLocalPushHandler serves invitation events in-process when the local publisher is used.
func newLocalPushHandler(params workerhandler.PushHandlerParams) *workerhandler.PushHandler {
	if params.Config.PubSub == nil || params.Config.PubSub.Provider != constants.PubSubProviderLocal {
		return nil
	}

	return workerhandler.NewPushHandler(params)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
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

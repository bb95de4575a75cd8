// Package firebase builds the shared Firebase Admin SDK app.
package firebase

import (
	"context"
	"log/slog"

	"smokebreak/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when a Firebase-backed component is requested without a firebase section.
var ErrNotConfigured = errors.New("firebase is not configured")

// NewApp initializes the Firebase app from the service account file, or from
// application default credentials when no file is configured.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, ErrNotConfigured
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized", slog.String("project_id", cfg.Firebase.ProjectID))

	return app, nil
}

package firestore

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/trip-planner-service/internal/config"
)

// NewClient opens a Firestore client from a base64-encoded service account.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig, logger *zap.Logger) (*firestore.Client, error) {
	credentials, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: cfg.ProjectID,
	}, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	logger.Info("Firestore client initialized", zap.String("project_id", cfg.ProjectID))
	return client, nil
}

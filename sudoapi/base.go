package sudoapi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blogicum/blogicum/db"
	"github.com/blogicum/blogicum/internal/config"
)

type BaseAPI struct {
	db *db.DB
}

func (s *BaseAPI) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("couldn't close DB: %w", err)
	}
	return nil
}

func GetBaseAPI(db *db.DB) *BaseAPI {
	return &BaseAPI{db: db}
}

func InitializeBaseAPI(ctx context.Context) (*BaseAPI, error) {
	dbClient, err := db.NewPSQL(ctx, config.Database.String())
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to DB: %w", err)
	}
	slog.InfoContext(ctx, "Connected to DB")

	if err := dbClient.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("couldn't run migrations: %w", err)
	}

	return GetBaseAPI(dbClient), nil
}

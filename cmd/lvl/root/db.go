package root

import (
	"context"
	"database/sql"

	"github.com/itskrishnabajaj/LevelUp/internal/engine"
	"github.com/itskrishnabajaj/LevelUp/internal/storage"
	"github.com/itskrishnabajaj/LevelUp/pkg/logger"
)

func dbPath() (string, error) {
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return storage.ResolveDBPath()
}

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := dbPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db, cfg.Username, logger.Logger()), cleanup, nil
}

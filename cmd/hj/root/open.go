package root

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mattrebelskey/IFS-app/internal/advisor"
	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/config"
	"github.com/mattrebelskey/IFS-app/internal/storage"
)

// openApp builds the full stack for a command invocation: config,
// logger, store, container and advisor. The cleanup closes the store
// and flushes the logger.
func openApp() (*app.Container, *advisor.Advisor, func(), error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := config.NewLogger(cfg.LogPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}

	container := app.NewContainer(store, logger)
	adv := advisor.New(cfg.AIAPIKey, cfg.AIAPIEndpoint, cfg.AIModel, logger)

	cleanup := func() {
		_ = store.Close()
		_ = logger.Sync()
	}
	return container, adv, cleanup, nil
}

func openStore(cfg config.Config, logger *zap.SugaredLogger) (storage.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		path := cfg.DataPath
		if path == "" {
			var err error
			path, err = storage.DefaultSQLitePath()
			if err != nil {
				return nil, err
			}
		}
		return storage.OpenSQLite(path, logger)
	case config.DriverJSON, "":
		path := cfg.DataPath
		if path == "" {
			var err error
			path, err = storage.DefaultJSONPath()
			if err != nil {
				return nil, err
			}
		}
		return storage.NewJSONStore(path, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

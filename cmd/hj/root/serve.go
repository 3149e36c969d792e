package root

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/advisor"
	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/config"
	"github.com/mattrebelskey/IFS-app/internal/httpapi"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API for the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := config.NewLogger(cfg.LogPath)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			store, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if cfg.Environment == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			container := app.NewContainer(store, logger)
			adv := advisor.New(cfg.AIAPIKey, cfg.AIAPIEndpoint, cfg.AIModel, logger)
			router := httpapi.NewRouter(httpapi.NewHandler(container, adv), logger)

			if port == "" {
				port = cfg.ServerPort
			}
			logger.Infow("serving", "port", port, "driver", cfg.StoreDriver)
			return router.Run(":" + port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default from config)")
	return cmd
}

package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vecha2468/stockquote/api"
	"github.com/vecha2468/stockquote/logging"
	"github.com/vecha2468/stockquote/pkg/config"
	"github.com/vecha2468/stockquote/pkg/service"
	"go.uber.org/zap"
)

const version = "1.0.0"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "stock quote web service",
	Long:  `Starts an http server serving the quote form UI and the JSON quote API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startServer()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func startServer() error {
	cfg := config.LoadConfig()
	logger := logging.SetupLogger(cfg.LogFile)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	fetcher, source, err := newFetcher(cfg)
	if err != nil {
		return err
	}
	svc := service.NewService(fetcher, source.Name(), version, logger)

	router := api.SetupRouter(svc, logger)
	go func() {
		logger.Info("starting server",
			zap.String("port", cfg.HTTPPort),
			zap.String("source", source.Name()))
		if err := router.Run(":" + cfg.HTTPPort); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("shutting down")
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vilab/labsite/internal/datasource"
	"github.com/vilab/labsite/internal/server"
)

var (
	serveAddr  string
	serveWatch bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides the config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "Reload documents when files in the data directory change")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	Long: `Serve the site over HTTP.

Pages are rendered on request from the configured documents. With a local
data directory, changes to its JSON files are picked up automatically.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	if debugFlag {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := newSource(cfg)
	defer src.Close()

	if serveWatch && !cfg.UsesRemoteData() {
		w, err := datasource.NewWatcher(cfg.DataDir, src.ClearCache, logger)
		if err != nil {
			exitWithError(ExitError, "watching %s: %v", cfg.DataDir, err)
		}
		if err := w.Start(ctx); err != nil {
			exitWithError(ExitError, "watching %s: %v", cfg.DataDir, err)
		}
		defer w.Stop()
	}

	srv := server.New(newSite(cfg, src), server.Options{
		Addr:      cfg.Addr,
		AssetsDir: cfg.AssetsDir,
		AssetsURL: cfg.AssetsURL,
		Logger:    logger,
	})
	logger.Info("starting server",
		zap.String("addr", cfg.Addr),
		zap.String("data_dir", cfg.DataDir),
		zap.String("data_url", cfg.DataURL))

	if err := srv.Run(ctx); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return nil
}

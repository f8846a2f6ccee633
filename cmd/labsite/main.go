// Package main provides the labsite CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vilab/labsite/internal/config"
	"github.com/vilab/labsite/internal/datasource"
	"github.com/vilab/labsite/internal/logging"
	"github.com/vilab/labsite/internal/render"
	"github.com/vilab/labsite/internal/site"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	configPath  string
	dataDirFlag string
	debugFlag   bool

	logger = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set, so cobra errors are printed here
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labsite",
	Short: "Render and serve the lab website",
	Long: `labsite renders the public website of a research lab from JSON documents
(publications, people, news, faculty, research).

It serves the pages over HTTP, exports them as a static site, and answers
queries about the content. All query commands output JSON by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to "+config.ConfigFile+" (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding the JSON documents (overrides the config)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.Version = Version
}

// loadConfig finds and loads the configuration and applies command-line
// overrides. A missing configuration file is not an error.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		found, err := config.Find(cwd)
		if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
			return nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dataDirFlag != "" {
		cfg.DataDir = config.ExpandPath(dataDirFlag)
		cfg.DataURL = ""
	}
	return cfg, nil
}

// mustLoadConfig loads and validates the configuration and sets up the
// logger, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoDataSource) {
			fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		}
		exitWithError(ExitConfigError, "invalid config: %v", err)
	}

	l, err := logging.New(logging.Options{Level: cfg.LogLevel, Debug: debugFlag})
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	logger = l
	return cfg
}

// newFetcher returns the fetcher for the configured data source.
func newFetcher(cfg *config.Config) datasource.Fetcher {
	if cfg.UsesRemoteData() {
		return datasource.NewHTTPFetcher(cfg.DataURL,
			datasource.WithRate(cfg.FetchRate),
			datasource.WithTimeout(cfg.FetchTimeout))
	}
	return datasource.DirFetcher{Dir: cfg.DataDir}
}

// newSource opens the data source. The caller is responsible for calling
// Close() on the returned source.
func newSource(cfg *config.Config) *datasource.Source {
	return datasource.NewSource(newFetcher(cfg), datasource.WithLogger(logger))
}

// newSite builds the site over src with server links.
func newSite(cfg *config.Config, src site.Source) *site.Site {
	return site.New(src, site.Options{
		LabName:        cfg.LabName,
		AssetsURL:      cfg.AssetsURL,
		PeopleImageDir: cfg.PeopleImageDir,
		YearButtons:    cfg.YearButtons,
		Links:          render.ServerLinks(cfg.AssetsURL),
		Logger:         logger,
	})
}

// exitOnDataError exits with ExitDataError when err is set.
func exitOnDataError(err error, what string) {
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		exitWithError(ExitError, "%s: interrupted", what)
	}
	if datasource.IsNotFound(err) {
		exitWithError(ExitDataError, "%s: document not found: %v", what, err)
	}
	exitWithError(ExitDataError, "%s: %v", what, err)
}

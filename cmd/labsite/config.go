package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vilab/labsite/internal/config"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration: the config file merged with .env,
environment variables and defaults.

Usage:
  labsite config                 # Show effective config
  labsite config init [dir]      # Write a starter labsite.yml
  labsite config validate        # Check the config for errors`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if !humanOutput {
		return outputJSON(cfg)
	}

	path := cfg.Path
	if path == "" {
		path = "(none)"
	}
	fmt.Printf("config:           %s\n", path)
	fmt.Printf("lab_name:         %s\n", cfg.LabName)
	fmt.Printf("data_dir:         %s\n", cfg.DataDir)
	fmt.Printf("data_url:         %s\n", cfg.DataURL)
	fmt.Printf("assets_url:       %s\n", cfg.AssetsURL)
	fmt.Printf("assets_dir:       %s\n", cfg.AssetsDir)
	fmt.Printf("people_image_dir: %s\n", cfg.PeopleImageDir)
	fmt.Printf("addr:             %s\n", cfg.Addr)
	fmt.Printf("log_level:        %s\n", cfg.LogLevel)
	fmt.Printf("year_buttons:     %v\n", cfg.YearButtons)
	fmt.Printf("fetch_rate:       %v\n", cfg.FetchRate)
	fmt.Printf("fetch_timeout:    %v\n", cfg.FetchTimeout)
	return nil
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter " + config.ConfigFile,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	path := filepath.Join(dir, config.ConfigFile)
	if _, err := os.Stat(path); err == nil {
		exitWithError(ExitConfigError, "%s already exists", path)
	}

	cfg := config.Default()
	cfg.DataDir = "data"
	cfg.AssetsDir = "assets"
	if err := cfg.Save(path); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Created %s\n", path)
		return nil
	}
	return outputJSON(StatusResponse{Status: "created", Path: path})
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for errors",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoDataSource) && humanOutput {
			fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		}
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		outputHuman("Configuration is valid\n")
		return nil
	}
	return outputJSON(StatusResponse{Status: "valid", Path: cfg.Path})
}

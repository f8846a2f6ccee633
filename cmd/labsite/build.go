package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vilab/labsite/internal/site"
)

var (
	buildOutput  string
	buildWorkers int
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "public", "Output directory")
	buildCmd.Flags().IntVar(&buildWorkers, "workers", site.DefaultExportWorkers, "Pages rendered concurrently")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static HTML",
	Long: `Export the site as static HTML.

Writes index.html (publications), faculty.html, research.html and one
news/{id}.html per news item. When assets_dir is configured it is copied
to {output}/assets and pages link to it relatively.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	src := newSource(cfg)
	defer src.Close()

	res, err := newSite(cfg, src).Export(context.Background(), site.ExportOptions{
		OutDir:    buildOutput,
		AssetsDir: cfg.AssetsDir,
		AssetsURL: cfg.AssetsURL,
		Workers:   buildWorkers,
	})
	if err != nil {
		exitWithError(ExitError, "exporting site: %v", err)
	}

	if humanOutput {
		outputHuman("Wrote %d pages to %s\n", len(res.Files), buildOutput)
		if res.Assets > 0 {
			outputHuman("Copied %d asset files\n", res.Assets)
		}
		for _, w := range res.Warnings {
			outputHuman("warning: %s\n", w)
		}
		return nil
	}
	return outputJSON(BuildResult{Output: buildOutput, ExportResult: res})
}

// BuildResult is the response for the build command.
type BuildResult struct {
	Output string `json:"output"`
	*site.ExportResult
}

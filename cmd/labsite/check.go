package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vilab/labsite/internal/assets"
	"github.com/vilab/labsite/internal/datasource"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify documents and asset links",
	Long: `Verify that every document loads and that local paper and supplement
links point to existing files under assets_dir. Local PDFs are opened to
make sure they are readable.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status    string            `json:"status"`
	Documents map[string]string `json:"documents"`
	Assets    *assets.Report    `json:"assets,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	src := newSource(cfg)
	defer src.Close()
	ctx := context.Background()

	result := CheckResult{Status: "ok", Documents: make(map[string]string)}
	record := func(name string, err error) {
		if err != nil {
			result.Documents[name] = err.Error()
			result.Status = "failed"
			return
		}
		result.Documents[name] = "ok"
	}

	pubs, err := src.Publications(ctx)
	record(datasource.PublicationsFile, err)
	_, err = src.People(ctx)
	record(datasource.PeopleFile, err)
	_, err = src.News(ctx)
	record(datasource.NewsFile, err)
	_, err = src.Faculty(ctx)
	record(datasource.FacultyFile, err)
	_, err = src.Research(ctx)
	record(datasource.ResearchFile, err)

	if cfg.AssetsDir != "" && pubs != nil {
		report := assets.CheckPublications(pubs, cfg.AssetsDir, cfg.AssetsURL)
		result.Assets = &report
		if !report.OK() {
			result.Status = "failed"
		}
	}

	if humanOutput {
		for _, name := range datasource.Documents {
			fmt.Printf("%-18s %s\n", name, result.Documents[name])
		}
		if r := result.Assets; r != nil {
			fmt.Printf("\nChecked %d local links (%d remote skipped)\n", r.Checked, r.Remote)
			for _, p := range r.Problems {
				fmt.Printf("  %s [%s] %s: %s\n", truncateString(p.Title, ListTitleMaxLen), p.Field, p.Path, p.Reason)
			}
		} else {
			fmt.Println("\nassets_dir not set, asset links not checked")
		}
	} else {
		outputJSON(result)
	}

	if result.Status != "ok" {
		os.Exit(ExitCheckFailed)
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vilab/labsite/internal/research"
)

func init() {
	rootCmd.AddCommand(researchCmd)
}

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Show the research areas with resolved media",
	Args:  cobra.NoArgs,
	RunE:  runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	src := newSource(cfg)
	defer src.Close()

	page := newSite(cfg, src).ResearchPage(context.Background())
	if page == nil {
		exitWithError(ExitDataError, "%s", research.MsgLoadFailed)
	}

	if !humanOutput {
		return outputJSON(page)
	}
	for _, s := range page.Sections {
		fmt.Printf("== %s ==\n", s.Title)
		if s.Description != "" {
			fmt.Println(wrapText(s.Description, TextWrapWidth, ""))
		}
		for _, c := range s.Cards {
			title := c.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Printf("  %s", title)
			if c.Media.URL != "" {
				fmt.Printf(" [%s]", c.Media.URL)
			}
			fmt.Println()
		}
		fmt.Println()
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vilab/labsite/internal/datasource"
	"github.com/vilab/labsite/internal/news"
)

func init() {
	rootCmd.AddCommand(newsCmd)
}

var newsCmd = &cobra.Command{
	Use:   "news [id]",
	Short: "List news items or show one detail page",
	Long: `List news items, or show the detail page of one item.

Without an id every item is listed. With an id the detail page is built the
way the site renders it: related publications, people cards, gallery or
career appointments depending on the item type.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNews,
}

// NewsSummary is a news item in the news list.
type NewsSummary struct {
	ID    string    `json:"id"`
	Date  string    `json:"date"`
	Kind  news.Kind `json:"kind"`
	Title string    `json:"title"`
}

func runNews(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	src := newSource(cfg)
	defer src.Close()
	ctx := context.Background()

	if len(args) == 0 {
		items, err := src.News(ctx)
		exitOnDataError(err, "loading news")
		summaries := make([]NewsSummary, 0, len(items))
		for _, it := range items {
			summaries = append(summaries, NewsSummary{
				ID:    strings.TrimSpace(it.ID.String()),
				Date:  src.FormatDate(it.Date, datasource.StyleShort),
				Kind:  it.Kind(),
				Title: it.DisplayTitle(),
			})
		}
		if humanOutput {
			for _, s := range summaries {
				fmt.Printf("%-6s %-12s %-12s %s\n", s.ID, s.Date, s.Kind, truncateString(s.Title, ListTitleMaxLen))
			}
			return nil
		}
		return outputJSON(summaries)
	}

	page := newSite(cfg, src).NewsPage(ctx, args[0])
	if page.State != news.Rendered {
		code := ExitDataError
		if page.Message == news.MsgInvalidID {
			code = ExitError
		}
		exitWithError(code, "%s", page.Message)
	}

	if humanOutput {
		printNewsHuman(page.Detail)
		return nil
	}
	return outputJSON(page)
}

func printNewsHuman(d *news.Detail) {
	fmt.Println(d.Header.Title)
	meta := d.Header.Date
	if d.Header.Badge != "" {
		meta += "  [" + d.Header.Badge + "]"
	}
	fmt.Println(meta)
	fmt.Println()

	if d.Summary != "" {
		fmt.Println(wrapText(d.Summary, TextWrapWidth, ""))
	}
	if d.Description != "" {
		fmt.Println(wrapText(d.Description, TextWrapWidth, ""))
	}
	if p := d.Publications; p != nil {
		if p.Message != "" {
			fmt.Println(p.Message)
		} else {
			fmt.Println(p.Summary)
			for _, v := range p.Items {
				fmt.Printf("  - %s (%s)\n", truncateString(v.Title, ListTitleMaxLen), v.Venue)
			}
		}
	}
	if d.PeopleMessage != "" {
		fmt.Println(d.PeopleMessage)
	}
	for _, g := range d.Groups {
		fmt.Printf("%s:\n", g.Title)
		for _, c := range g.Cards {
			line := "  - " + c.Name
			if c.Thesis != "" {
				line += ": " + c.Thesis
			}
			fmt.Println(line)
		}
	}
	for _, c := range d.Careers {
		line := "  - " + c.Person.Name
		if c.Career != "" {
			line += ": " + c.Career
		}
		fmt.Println(line)
	}
	for _, l := range d.Links {
		fmt.Printf("  %s: %s\n", l.Label, l.URL)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vilab/labsite/internal/export"
	"github.com/vilab/labsite/internal/publication"
)

var (
	pubsYear   string
	pubsVenue  string
	pubsStatus string
	pubsSearch string
	pubsBibTeX bool
)

func init() {
	addPublicationFilterFlags(publicationsCmd)
	publicationsCmd.Flags().StringVarP(&pubsSearch, "search", "q", "", "Free-text search over titles, authors and keywords")
	rootCmd.AddCommand(publicationsCmd)
}

func addPublicationFilterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&pubsBibTeX, "bibtex", false, "Output BibTeX instead of JSON (patents are skipped)")
	cmd.Flags().StringVar(&pubsYear, "year", publication.All, `Year filter ("2024", or "-2020" for 2020 and older)`)
	cmd.Flags().StringVar(&pubsVenue, "venue", publication.All, "Venue filter (CVPR, ICCV, ECCV, Other Conferences, Journals, Patents)")
	cmd.Flags().StringVar(&pubsStatus, "status", publication.All, "Patent status filter (active, expired, application)")
}

var publicationsCmd = &cobra.Command{
	Use:     "publications",
	Aliases: []string{"pubs"},
	Short:   "List publications grouped as on the publications page",
	Args:    cobra.NoArgs,
	RunE:    runPublications,
}

func filterQuery(search string) publication.Query {
	return publication.DefaultQuery().
		WithYear(pubsYear).
		WithVenue(pubsVenue).
		WithStatus(pubsStatus).
		WithSearch(search)
}

// PublicationsResult is the response for the publications and search commands.
type PublicationsResult struct {
	Query   publication.Query   `json:"query"`
	Listing publication.Listing `json:"listing"`
}

func runPublications(cmd *cobra.Command, args []string) error {
	return listPublications(filterQuery(pubsSearch))
}

func listPublications(q publication.Query) error {
	cfg := mustLoadConfig()
	src := newSource(cfg)
	defer src.Close()

	pubs, err := newSite(cfg, src).Publications(context.Background(), q)
	exitOnDataError(err, "loading publications")
	if pubsBibTeX {
		fmt.Print(export.ToBibTeXList(pubs))
		return nil
	}
	listing := publication.NewListing(pubs)

	if humanOutput {
		printListingHuman(listing)
		return nil
	}
	return outputJSON(PublicationsResult{Query: q, Listing: listing})
}

// printListingHuman prints a listing section by section.
func printListingHuman(l publication.Listing) {
	if l.Empty() {
		fmt.Println(publication.MsgNoResults)
		return
	}
	for _, s := range l.Sections {
		fmt.Printf("== %s (%d) ==\n", s.Title, len(s.Items))
		for _, v := range s.Items {
			fmt.Printf("  %s\n", truncateString(v.Title, ListTitleMaxLen))
			if v.Authors != "" {
				fmt.Printf("    %s\n", wrapText(v.Authors, TextWrapWidth, "    "))
			}
			venue := v.Venue
			if v.Presentation != "" {
				venue += " (" + v.Presentation + ")"
			}
			fmt.Printf("    %s\n", venue)
		}
		fmt.Println()
	}
	fmt.Printf("%d publications\n", l.Total)
}

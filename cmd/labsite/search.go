package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	addPublicationFilterFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search publications",
	Long: `Search publications by title, authors and keywords (English and Korean).

Every word must match the start of a word in the publication. Prefix a
word with author:, title: or keyword: to restrict it to one field.

Examples:
  labsite search optical flow
  labsite search author:kim --year 2024`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	return listPublications(filterQuery(strings.Join(args, " ")))
}

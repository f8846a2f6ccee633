package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vilab/labsite/internal/faculty"
)

func init() {
	rootCmd.AddCommand(facultyCmd)
}

var facultyCmd = &cobra.Command{
	Use:   "faculty",
	Short: "Show the faculty profile",
	Args:  cobra.NoArgs,
	RunE:  runFaculty,
}

// FacultyResult is the response for the faculty command.
type FacultyResult struct {
	faculty.Faculty
	Sections []string `json:"sections"`
}

func runFaculty(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	src := newSource(cfg)
	defer src.Close()

	f, err := src.Faculty(context.Background())
	exitOnDataError(err, faculty.MsgLoadFailed)
	page := faculty.NewPage(f)

	if !humanOutput {
		return outputJSON(FacultyResult{Faculty: f, Sections: page.Sections()})
	}

	fmt.Printf("%s, %s\n", page.Name, page.Title)
	if page.Email != "" {
		fmt.Println(page.Email)
	}
	fmt.Println()
	fmt.Println(wrapText(page.Intro, TextWrapWidth, ""))
	fmt.Println()
	for _, s := range page.Sections() {
		fmt.Printf("- %s\n", s)
	}
	for _, g := range page.AcademicGroups {
		fmt.Printf("\n%s:\n", g.Title)
		for _, r := range g.Roles {
			fmt.Printf("  %s: %s\n", r.Role, r.Org.Joined())
		}
	}
	return nil
}

package news

import "fmt"

// DefaultLabName is used in acceptance sentences when none is configured.
const DefaultLabName = "VILAB"

func plural(n int, word string) string {
	if n > 1 {
		return word + "s"
	}
	return word
}

// AcceptanceSentence summarises how many main-track and workshop papers of
// the lab were accepted to a venue.
func AcceptanceSentence(lab string, main, workshop int, venue string) string {
	paper := plural(main, "paper")
	wsPaper := plural(workshop, "workshop paper")

	switch {
	case main > 0 && workshop > 0:
		return fmt.Sprintf("%d %s and %d %s from %s have been accepted to %s.", main, paper, workshop, wsPaper, lab, venue)
	case main > 1:
		return fmt.Sprintf("%d %s from %s have been accepted to %s.", main, paper, lab, venue)
	case main == 1:
		return fmt.Sprintf("%d %s from %s has been accepted to %s.", main, paper, lab, venue)
	case workshop > 1:
		return fmt.Sprintf("%d %s from %s have been accepted to %s.", workshop, wsPaper, lab, venue)
	default:
		return fmt.Sprintf("%d %s from %s has been accepted to %s.", workshop, wsPaper, lab, venue)
	}
}

package publication

import (
	"sort"
	"strconv"
)

// PreprintsKey is the section key of the preprints bucket.
const PreprintsKey = "preprints"

// Section is one heading of the publications listing.
type Section struct {
	Key          string        `json:"key"`   // "preprints" or the year
	Title        string        `json:"title"` // "Preprints" or the year
	Publications []Publication `json:"publications"`
}

// Group partitions pubs into a leading Preprints section followed by one
// section per resolved year, newest first. Input order is kept inside each
// section.
func Group(pubs []Publication) []Section {
	var preprints []Publication
	byYear := make(map[int][]Publication)
	var years []int

	for _, p := range pubs {
		if p.Type == Preprint {
			preprints = append(preprints, p)
			continue
		}
		y := YearOf(p)
		if _, seen := byYear[y]; !seen {
			years = append(years, y)
		}
		byYear[y] = append(byYear[y], p)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	sections := make([]Section, 0, len(years)+1)
	if len(preprints) > 0 {
		sections = append(sections, Section{Key: PreprintsKey, Title: "Preprints", Publications: preprints})
	}
	for _, y := range years {
		key := strconv.Itoa(y)
		sections = append(sections, Section{Key: key, Title: key, Publications: byYear[y]})
	}
	return sections
}

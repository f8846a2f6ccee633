// Package news builds the news detail page: one layout per news type, with
// people and publication lookups for the types that need them.
package news

import (
	"encoding/json"

	"github.com/vilab/labsite/internal/publication"
)

// Image is a gallery image of award, service and media news.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// Link is an outbound link chip.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Groups lists admitted or graduated members by degree.
type Groups struct {
	PhD []string `json:"phd,omitempty"`
	MS  []string `json:"ms,omitempty"`
}

// CareerEntry is one member of a career news item.
type CareerEntry struct {
	Name         string `json:"name"`
	Career       string `json:"career,omitempty"`
	CareerKo     string `json:"career_ko,omitempty"`
	ArticleTitle string `json:"article_title,omitempty"`
	ArticleURL   string `json:"article_url,omitempty"`
}

// Item is a single entry of news.json. Fields beyond the common header are
// used by specific kinds only.
type Item struct {
	ID    publication.FlexibleString `json:"id"`
	Type  string                     `json:"type"`
	Title string                     `json:"title"`
	Date  string                     `json:"date"`

	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`

	// publication news
	Venue    string           `json:"venue,omitempty"`
	PubVenue string           `json:"pub_venue,omitempty"`
	PubYear  publication.Year `json:"pub_year,omitempty"`
	Year     publication.Year `json:"year,omitempty"`

	// award, service and media news
	AwardName   string  `json:"award_name,omitempty"`
	ServiceName string  `json:"service_name,omitempty"`
	MediaName   string  `json:"media_name,omitempty"`
	Images      []Image `json:"images,omitempty"`
	Image       string  `json:"image,omitempty"`
	Links       []Link  `json:"links,omitempty"`

	// People is {phd: [...], ms: [...]} for admission and graduation news
	// and a list of CareerEntry for career news.
	People json.RawMessage `json:"people,omitempty"`
}

// Kind returns the layout for the item's type tag.
func (it Item) Kind() Kind {
	return ParseKind(it.Type)
}

// PeopleGroups decodes People as degree groups. Any other shape yields no
// groups.
func (it Item) PeopleGroups() Groups {
	var g Groups
	if len(it.People) == 0 {
		return g
	}
	if err := json.Unmarshal(it.People, &g); err != nil {
		return Groups{}
	}
	return g
}

// CareerPeople decodes People as career entries. Any other shape yields no
// entries.
func (it Item) CareerPeople() []CareerEntry {
	var entries []CareerEntry
	if len(it.People) == 0 {
		return nil
	}
	if err := json.Unmarshal(it.People, &entries); err != nil {
		return nil
	}
	return entries
}

// DisplayTitle returns the kind-specific title override, or the title.
func (it Item) DisplayTitle() string {
	var override string
	switch it.Kind() {
	case KindAward:
		override = it.AwardName
	case KindService:
		override = it.ServiceName
	case KindMedia:
		override = it.MediaName
	}
	if override != "" {
		return override
	}
	return it.Title
}

// Gallery returns the item's images. A single "image" field is accepted in
// place of the array; missing alt text defaults to the display title.
func (it Item) Gallery() []Image {
	title := it.DisplayTitle()

	var images []Image
	switch {
	case it.Images != nil:
		images = make([]Image, len(it.Images))
		copy(images, it.Images)
	case it.Image != "":
		images = []Image{{Src: it.Image}}
	}

	for i := range images {
		if images[i].Alt == "" {
			images[i].Alt = title
		}
	}
	return images
}

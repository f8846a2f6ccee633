// Package research defines research categories and the research page model.
package research

import (
	"strings"

	"github.com/vilab/labsite/internal/assets"
)

// Messages and labels of the research page.
const (
	MsgLoadFailed  = "Failed to load research data. Please try again later."
	ReferenceLabel = "Image/Video Reference"
)

// Document is research.json.
type Document struct {
	Categories []Category `json:"categories"`
}

// Category is a research area. Topics are optional.
type Category struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Media          string  `json:"media,omitempty"`
	Image          string  `json:"image,omitempty"` // older name for media
	MediaReference string  `json:"media_reference,omitempty"`
	Topics         []Topic `json:"topics,omitempty"`
}

// Topic is a sub-topic card of a category.
type Topic struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Media          string `json:"media,omitempty"`
	Image          string `json:"image,omitempty"`
	MediaReference string `json:"media_reference,omitempty"`
}

// MediaFile returns media, falling back to image.
func (t Topic) MediaFile() string {
	if m := strings.TrimSpace(t.Media); m != "" {
		return m
	}
	return strings.TrimSpace(t.Image)
}

// Card is a rendered topic.
type Card struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description"`
	Media       assets.Media `json:"media"`
	MediaAlt    string       `json:"media_alt,omitempty"`
	Reference   string       `json:"reference,omitempty"`
	Single      bool         `json:"single,omitempty"`
}

// Section is a rendered category. Description is set only when the category
// has topics; otherwise it is carried by the single card.
type Section struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Cards       []Card `json:"cards"`
}

// Page is the research page model.
type Page struct {
	Sections []Section `json:"sections"`
}

// NewPage builds the research page, resolving media with r.
func NewPage(doc Document, r assets.Resolver) Page {
	p := Page{Sections: make([]Section, 0, len(doc.Categories))}
	for _, c := range doc.Categories {
		s := Section{Title: c.Title}
		if len(c.Topics) == 0 {
			card := newCard(Topic{
				Description:    c.Description,
				Media:          c.Media,
				Image:          c.Image,
				MediaReference: c.MediaReference,
			}, r)
			card.Single = true
			s.Cards = []Card{card}
		} else {
			s.Description = c.Description
			for _, t := range c.Topics {
				s.Cards = append(s.Cards, newCard(t, r))
			}
		}
		p.Sections = append(p.Sections, s)
	}
	return p
}

func newCard(t Topic, r assets.Resolver) Card {
	c := Card{
		Title:       strings.TrimSpace(t.Title),
		Description: t.Description,
		Media:       r.Media(t.MediaFile()),
		Reference:   t.MediaReference,
	}
	if c.Media.IsImage() {
		c.MediaAlt = c.Title
		if c.MediaAlt == "" {
			c.MediaAlt = assets.DefaultMediaAltText
		}
	}
	return c
}

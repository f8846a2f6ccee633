// Package assets resolves site asset URLs and checks linked files.
package assets

import (
	"path"
	"strings"
)

// Defaults for asset resolution.
const (
	DefaultPeopleDir    = "images/people"
	PlaceholderFile     = "student-placeholder.svg"
	MediaPlaceholder    = "Media"
	DefaultMediaAltText = "Research media"
)

// Resolver builds URLs under the site's assets root.
type Resolver struct {
	BaseURL   string // e.g. "/assets" or "../../assets"
	PeopleDir string // relative to BaseURL
}

// NewResolver returns a resolver rooted at baseURL.
func NewResolver(baseURL, peopleDir string) Resolver {
	if peopleDir == "" {
		peopleDir = DefaultPeopleDir
	}
	return Resolver{BaseURL: strings.TrimRight(baseURL, "/"), PeopleDir: strings.Trim(peopleDir, "/")}
}

func (r Resolver) join(parts ...string) string {
	rel := path.Join(parts...)
	if r.BaseURL == "" {
		return rel
	}
	return r.BaseURL + "/" + rel
}

// PersonPhoto returns the photo URL for an image file, or the placeholder
// when file is empty.
func (r Resolver) PersonPhoto(file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return r.Placeholder()
	}
	return r.join(r.PeopleDir, file)
}

// Placeholder returns the fallback person photo URL.
func (r Resolver) Placeholder() string {
	return r.join(r.PeopleDir, PlaceholderFile)
}

// MediaKind distinguishes research media.
type MediaKind int

const (
	MediaNone MediaKind = iota
	MediaImage
	MediaVideo
)

// Media is a resolved research media reference.
type Media struct {
	Kind MediaKind
	URL  string
}

// IsVideo reports whether the media renders as a looping video.
func (m Media) IsVideo() bool { return m.Kind == MediaVideo }

// IsImage reports whether the media renders as an image.
func (m Media) IsImage() bool { return m.Kind == MediaImage }

// Media resolves a research media file. Files ending in .mp4 are videos,
// anything else is an image, and an empty name yields MediaNone.
func (r Resolver) Media(file string) Media {
	file = strings.TrimSpace(file)
	if file == "" {
		return Media{Kind: MediaNone}
	}
	m := Media{Kind: MediaImage, URL: r.join(file)}
	if strings.HasSuffix(strings.ToLower(file), ".mp4") {
		m.Kind = MediaVideo
	}
	return m
}

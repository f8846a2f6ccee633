package news

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/vilab/labsite/internal/assets"
	"github.com/vilab/labsite/internal/people"
	"github.com/vilab/labsite/internal/publication"
)

// Messages shown inside a detail page section.
const (
	MsgNoMatchingPublications = "No matching publications found in the publications list."
	MsgPublicationsFailed     = "Failed to load publication list."
	MsgPeopleFailed           = "Failed to load people information."
	MsgNoGraduates            = "No graduated members are listed."
)

// Header is the title block common to every layout.
type Header struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Kind  Kind   `json:"kind"`
	Badge string `json:"badge,omitempty"`
}

// PersonCard is a person shown on admission, graduation and career pages.
// Photo is empty for names that did not resolve to a person, except on
// career pages where the placeholder is used.
type PersonCard struct {
	Name        string `json:"name"`
	Resolved    bool   `json:"resolved"`
	Photo       string `json:"photo,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Major       string `json:"major,omitempty"`
	Thesis      string `json:"thesis,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
}

// PeopleGroup is a degree group of person cards.
type PeopleGroup struct {
	Key   people.Degree `json:"key"`
	Title string        `json:"title"`
	Cards []PersonCard  `json:"cards"`
}

// CareerCard is a person card plus the appointment lines.
type CareerCard struct {
	Person       PersonCard `json:"person"`
	Career       string     `json:"career,omitempty"`
	CareerKo     string     `json:"career_ko,omitempty"`
	ArticleTitle string     `json:"article_title,omitempty"`
	ArticleURL   string     `json:"article_url,omitempty"`
}

// HasArticle reports whether the related-article line is shown.
func (c CareerCard) HasArticle() bool {
	return c.ArticleTitle != "" && c.ArticleURL != ""
}

// RelatedPublications is the paper list of publication news. Either Message
// or Summary and Items are set.
type RelatedPublications struct {
	Summary string             `json:"summary,omitempty"`
	Items   []publication.View `json:"items,omitempty"`
	Message string             `json:"message,omitempty"`
}

// Detail is the view model of a news detail page.
type Detail struct {
	Header      Header `json:"header"`
	Summary     string `json:"summary,omitempty"`     // generic news
	Description string `json:"description,omitempty"` // may contain markup

	Publications *RelatedPublications `json:"publications,omitempty"`

	Groups        []PeopleGroup `json:"groups,omitempty"`
	PeopleMessage string        `json:"people_message,omitempty"`

	Images []Image `json:"images,omitempty"`
	Links  []Link  `json:"links,omitempty"`

	Careers []CareerCard `json:"careers,omitempty"`
}

// Kind returns the layout of the page.
func (d *Detail) Kind() Kind {
	return d.Header.Kind
}

// Source supplies the documents a detail page reads.
type Source interface {
	NewsItem(ctx context.Context, id string) (*Item, error)
	People(ctx context.Context) ([]people.Person, error)
	Publications(ctx context.Context) ([]publication.Publication, error)
}

// DateFormatter renders an item date in the given style ("long", "short").
type DateFormatter func(date, style string) string

// Dispatcher renders news items with the strategy for their kind.
type Dispatcher struct {
	src        Source
	photos     assets.Resolver
	labName    string
	formatDate DateFormatter
	log        *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLabName sets the lab name used in acceptance sentences.
func WithLabName(name string) Option {
	return func(d *Dispatcher) {
		if name != "" {
			d.labName = name
		}
	}
}

// WithPhotos sets the resolver for person photos.
func WithPhotos(r assets.Resolver) Option {
	return func(d *Dispatcher) { d.photos = r }
}

// WithDateFormatter sets the date formatter.
func WithDateFormatter(f DateFormatter) Option {
	return func(d *Dispatcher) {
		if f != nil {
			d.formatDate = f
		}
	}
}

// WithLogger sets the logger used for degraded secondary fetches.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDispatcher creates a dispatcher reading from src.
func NewDispatcher(src Source, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		src:        src,
		photos:     assets.NewResolver("", ""),
		labName:    DefaultLabName,
		formatDate: func(date, _ string) string { return date },
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render builds the detail page of it. Secondary fetches that fail are
// reported inside the returned view, never as an error.
func (d *Dispatcher) Render(ctx context.Context, it Item) *Detail {
	kind := it.Kind()
	detail := &Detail{
		Header: Header{
			Title: it.DisplayTitle(),
			Date:  d.formatDate(it.Date, "long"),
			Kind:  kind,
			Badge: kind.Badge(),
		},
	}

	switch kind {
	case KindPublication:
		detail.Publications = d.relatedPublications(ctx, it)
	case KindAdmission:
		detail.Description = it.Description
		d.admission(ctx, it, detail)
	case KindGraduation:
		detail.Description = it.Description
		d.graduation(ctx, it, detail)
	case KindAward, KindService, KindMedia:
		detail.Description = it.Description
		detail.Images = it.Gallery()
		detail.Links = it.Links
	case KindCareer:
		detail.Description = firstNonEmpty(it.Description, it.Summary)
		d.career(ctx, it, detail)
	default:
		detail.Summary = firstNonEmpty(it.Summary, it.Description)
	}
	return detail
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var digits = regexp.MustCompile(`[0-9]`)

// VenueKey strips digits from a news venue: "CVPR 2025" becomes "CVPR".
func VenueKey(it Item) string {
	return strings.TrimSpace(digits.ReplaceAllString(firstNonEmpty(it.PubVenue, it.Venue), ""))
}

// PublicationYear is pub_year, then year, then the year of the item date.
// Zero means unknown.
func PublicationYear(it Item) int {
	if y := it.PubYear.Int(); y != 0 {
		return y
	}
	if y := it.Year.Int(); y != 0 {
		return y
	}
	return publication.YearFromDate(it.Date)
}

// MatchPublications returns the publications a publication news item refers
// to. An empty venue key or an unknown year matches everything.
func MatchPublications(it Item, pubs []publication.Publication) []publication.Publication {
	key := VenueKey(it)
	year := PublicationYear(it)

	var matched []publication.Publication
	for _, p := range pubs {
		v := strings.TrimSpace(p.Venue)
		if key != "" && !strings.Contains(v, key) {
			continue
		}
		if year != 0 && publication.YearOf(p) != year {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// IsWorkshop reports whether a publication is a workshop paper.
func IsWorkshop(p publication.Publication) bool {
	return strings.Contains(strings.ToLower(p.Venue), "workshop")
}

// VenueLabel is the venue named in the acceptance sentence.
func VenueLabel(it Item) string {
	if it.Venue != "" {
		return it.Venue
	}
	label := VenueKey(it)
	if y := PublicationYear(it); y != 0 {
		label = strings.TrimSpace(label + " " + strconv.Itoa(y))
	}
	return label
}

func (d *Dispatcher) relatedPublications(ctx context.Context, it Item) *RelatedPublications {
	pubs, err := d.src.Publications(ctx)
	if err != nil {
		d.log.Warn("load publications for news", zap.String("id", it.ID.String()), zap.Error(err))
		return &RelatedPublications{Message: MsgPublicationsFailed}
	}

	matched := MatchPublications(it, pubs)
	if len(matched) == 0 {
		return &RelatedPublications{Message: MsgNoMatchingPublications}
	}

	var workshop int
	items := make([]publication.View, 0, len(matched))
	for _, p := range matched {
		if IsWorkshop(p) {
			workshop++
		}
		v := publication.NewView(p)
		v.Presentation = capitalize(v.Presentation)
		v.Abstract = ""
		items = append(items, v)
	}

	return &RelatedPublications{
		Summary: AcceptanceSentence(d.labName, len(matched)-workshop, workshop, VenueLabel(it)),
		Items:   items,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func (d *Dispatcher) peopleIndex(ctx context.Context, it Item) (people.Index, error) {
	all, err := d.src.People(ctx)
	if err != nil {
		d.log.Warn("load people for news", zap.String("id", it.ID.String()), zap.Error(err))
		return people.NewIndex(nil), err
	}
	return people.NewIndex(all), nil
}

type groupSpec struct {
	degree people.Degree
	title  string
}

var (
	admissionGroups  = []groupSpec{{people.PhD, "PhD Students"}, {people.MS, "Masters Students"}}
	graduationGroups = []groupSpec{{people.PhD, "PhD Graduates"}, {people.MS, "Masters Graduates"}}
)

func namesFor(g Groups, d people.Degree) []string {
	if d == people.PhD {
		return g.PhD
	}
	return g.MS
}

// memberCard builds the card of a listed name. Unresolved names get a bare
// card.
func (d *Dispatcher) memberCard(ix people.Index, name string, degree people.Degree, withThesis bool) PersonCard {
	p, ok := ix.Lookup(name)
	if !ok {
		return PersonCard{Name: name}
	}
	card := PersonCard{
		Name:        p.Name,
		Resolved:    true,
		Photo:       d.photos.PersonPhoto(p.Image),
		Placeholder: d.photos.Placeholder(),
		Major:       p.MajorFor(degree),
		Email:       p.Email,
		Website:     p.Website,
	}
	if withThesis {
		card.Thesis, _ = p.ThesisFor(degree)
	}
	return card
}

func (d *Dispatcher) buildGroups(ix people.Index, g Groups, specs []groupSpec, withThesis bool) []PeopleGroup {
	var groups []PeopleGroup
	for _, spec := range specs {
		names := namesFor(g, spec.degree)
		if len(names) == 0 {
			continue
		}
		pg := PeopleGroup{Key: spec.degree, Title: spec.title, Cards: make([]PersonCard, 0, len(names))}
		for _, n := range names {
			pg.Cards = append(pg.Cards, d.memberCard(ix, n, spec.degree, withThesis))
		}
		groups = append(groups, pg)
	}
	return groups
}

func (d *Dispatcher) admission(ctx context.Context, it Item, detail *Detail) {
	// a failed people load leaves bare name cards
	ix, _ := d.peopleIndex(ctx, it)
	detail.Groups = d.buildGroups(ix, it.PeopleGroups(), admissionGroups, false)
}

func (d *Dispatcher) graduation(ctx context.Context, it Item, detail *Detail) {
	ix, err := d.peopleIndex(ctx, it)
	if err != nil {
		detail.PeopleMessage = MsgPeopleFailed
		return
	}
	detail.Groups = d.buildGroups(ix, it.PeopleGroups(), graduationGroups, true)
	if len(detail.Groups) == 0 {
		detail.PeopleMessage = MsgNoGraduates
	}
}

func (d *Dispatcher) career(ctx context.Context, it Item, detail *Detail) {
	ix, _ := d.peopleIndex(ctx, it)
	for _, e := range it.CareerPeople() {
		card := PersonCard{
			Name:        e.Name,
			Photo:       d.photos.Placeholder(),
			Placeholder: d.photos.Placeholder(),
		}
		if p, ok := ix.Lookup(e.Name); ok {
			card.Resolved = true
			card.Photo = d.photos.PersonPhoto(p.Image)
			card.Major = p.DegreeLine()
			card.Email = p.Email
			card.Website = p.Website
		}
		detail.Careers = append(detail.Careers, CareerCard{
			Person:       card,
			Career:       e.Career,
			CareerKo:     e.CareerKo,
			ArticleTitle: e.ArticleTitle,
			ArticleURL:   e.ArticleURL,
		})
	}
}

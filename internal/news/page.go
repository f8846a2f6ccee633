package news

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Messages that replace the whole detail page.
const (
	MsgInvalidID = "Invalid news id."
	MsgNotFound  = "News not found."
	MsgLoadError = "Error loading news."
)

// State is the load state of a detail page.
type State int

const (
	Idle State = iota
	Loading
	Rendered
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Rendered:
		return "rendered"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Rendered || s == Failed
}

// Page is one load of a detail page. It moves Idle -> Loading ->
// Rendered or Failed and never leaves a terminal state.
type Page struct {
	ID      string  `json:"id"`
	State   State   `json:"-"`
	Detail  *Detail `json:"detail,omitempty"`
	Message string  `json:"message,omitempty"`
}

func (p *Page) transition(to State) bool {
	if p.State.Terminal() {
		return false
	}
	if to == Loading && p.State != Idle {
		return false
	}
	p.State = to
	return true
}

func (p *Page) fail(msg string) {
	if p.transition(Failed) {
		p.Message = msg
	}
}

func (p *Page) render(d *Detail) {
	if p.transition(Rendered) {
		p.Detail = d
	}
}

// Load resolves the news item id and renders it. Failures are reported as
// the page message; there are no retries.
func (d *Dispatcher) Load(ctx context.Context, id string) *Page {
	page := &Page{ID: strings.TrimSpace(id)}
	if page.ID == "" {
		page.fail(MsgInvalidID)
		return page
	}

	page.transition(Loading)
	item, err := d.src.NewsItem(ctx, page.ID)
	if err != nil {
		d.log.Error("load news item", zap.String("id", page.ID), zap.Error(err))
		page.fail(MsgLoadError)
		return page
	}
	if item == nil {
		page.fail(MsgNotFound)
		return page
	}

	page.render(d.Render(ctx, *item))
	return page
}

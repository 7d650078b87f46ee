// Package web is the listings frontend: it fetches from the query service,
// samples or filters the result, highlights matches and renders HTML.
package web

import (
	"context"
	"math/rand/v2"
	"sync"

	"property_search/internal/domain"
	"property_search/internal/search"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusErrored:
		return "errored"
	default:
		return "idle"
	}
}

const (
	LoadFailedMessage   = "Failed to load properties. Please try again later."
	SearchFailedMessage = "Failed to search properties. Please try again later."
	EmptyMessage        = "No properties found."
)

// PropertyList holds the state of one listings view. All fields are owned by
// its methods; it is safe for concurrent use.
//
// Every Load or Search takes a new request id and only the most recently
// started request may publish its result, so a slow response can never
// overwrite a newer one.
type PropertyList struct {
	src domain.PropertySource

	mu     sync.Mutex
	rng    *rand.Rand
	status Status
	props  []domain.Property
	errMsg string
	term   string
	seq    uint64
}

func NewPropertyList(src domain.PropertySource, rng *rand.Rand) *PropertyList {
	return &PropertyList{src: src, rng: rng, props: []domain.Property{}}
}

// SetTerm updates the search input. Highlighting follows the input right away;
// the result set only changes on the next Search.
func (l *PropertyList) SetTerm(term string) {
	l.mu.Lock()
	l.term = term
	l.mu.Unlock()
}

// Load fetches every listing and shows a random sample of them. The returned
// error is for logging; the view already carries the user-facing message.
func (l *PropertyList) Load(ctx context.Context) error {
	id := l.begin()
	data, err := l.src.Search(ctx, "")

	l.mu.Lock()
	defer l.mu.Unlock()
	if id != l.seq {
		return nil // superseded
	}
	if err != nil {
		l.fail(LoadFailedMessage)
		return err
	}
	l.succeed(search.Sample(l.rng, data, search.SampleSize))
	return nil
}

// Search sets the term, fetches every listing and keeps those whose name
// contains the term.
func (l *PropertyList) Search(ctx context.Context, term string) error {
	l.SetTerm(term)
	id := l.begin()
	data, err := l.src.Search(ctx, "")

	l.mu.Lock()
	defer l.mu.Unlock()
	if id != l.seq {
		return nil // superseded
	}
	if err != nil {
		l.fail(SearchFailedMessage)
		return err
	}
	l.succeed(search.Filter(data, term))
	return nil
}

func (l *PropertyList) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.status = StatusLoading
	return l.seq
}

// callers hold l.mu
func (l *PropertyList) succeed(ps []domain.Property) {
	if ps == nil {
		ps = []domain.Property{}
	}
	l.status = StatusLoaded
	l.props = ps
	l.errMsg = ""
}

// callers hold l.mu
func (l *PropertyList) fail(msg string) {
	l.status = StatusErrored
	l.props = []domain.Property{}
	l.errMsg = msg
}

// Card is one rendered listing.
type Card struct {
	domain.Property
	Title []search.Span
}

// View is a snapshot of the list, ready for rendering.
type View struct {
	Status Status
	Term   string
	Error  string
	Cards  []Card
}

func (v View) Empty() bool { return len(v.Cards) == 0 }

func (l *PropertyList) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := View{Status: l.status, Term: l.term, Error: l.errMsg, Cards: make([]Card, 0, len(l.props))}
	for _, p := range l.props {
		v.Cards = append(v.Cards, Card{Property: p, Title: search.Highlight(p.Name, l.term)})
	}
	return v
}

package web

import (
	"errors"
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"property_search/internal/domain"
)

// Handlers serves the listings page. Every request mounts a fresh
// PropertyList: a plain GET shows a random sample, ?q= runs a name search.
type Handlers struct {
	src     domain.PropertySource
	newRand func() *rand.Rand
}

func NewHandlers(src domain.PropertySource) *Handlers {
	return &Handlers{
		src: src,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// WithRand replaces the randomness source, for deterministic sampling.
func (h *Handlers) WithRand(fn func() *rand.Rand) *Handlers {
	h.newRand = fn
	return h
}

func (h *Handlers) Register(r chi.Router) {
	r.Get("/", h.index)
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	l := NewPropertyList(h.src, h.newRand())

	q := r.URL.Query()
	if q.Has("q") {
		term := q.Get("q")
		if err := l.Search(r.Context(), term); err != nil {
			log.Warn().Err(err).Str("kind", failureKind(err)).Str("term", term).Msg("property search failed")
		}
	} else if err := l.Load(r.Context()); err != nil {
		log.Warn().Err(err).Str("kind", failureKind(err)).Msg("property load failed")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Render(w, l.View()); err != nil {
		log.Error().Err(err).Msg("render listings page failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// failureKind names the class of a query service failure for logs.
func failureKind(err error) string {
	var qe *domain.QueryError
	var te *domain.TransportError
	switch {
	case errors.As(err, &qe):
		return "query"
	case errors.As(err, &te):
		return "transport"
	default:
		return "other"
	}
}

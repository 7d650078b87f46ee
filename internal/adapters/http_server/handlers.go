// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"property_search/internal/domain"
)

type Handlers struct{ Q domain.PropertySource }

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.root)
	s.mux.Get("/search", h.search)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Property Search API"})
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	log.Debug().Str("city", city).Msg("search request")

	ps, err := h.Q.Search(r.Context(), city)
	if err != nil {
		// the detail stays in the log; clients get a stable message
		log.Error().Err(err).Str("city", city).Msg("property search failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to query properties"})
		return
	}
	if ps == nil {
		ps = []domain.Property{}
	}

	etag, body := calcETagAndBody(ps)
	if body == nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to encode properties"})
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write search body")
	}
}

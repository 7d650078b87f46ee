// internal/adapters/listings/client.go
package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"property_search/internal/adapters/observability"
	"property_search/internal/domain"
)

const service = "query_service"

// Client talks to the query service's GET /search. It never retries: every
// failure is reported once as *domain.TransportError or *domain.QueryError.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid query service URL %q", base)
	}
	if rps <= 0 {
		rps = 20
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// Search fetches the listings in city, or every listing when city is empty.
func (c *Client) Search(ctx context.Context, city string) ([]domain.Property, error) {
	u := c.base + "/search"
	if city != "" {
		u += "?" + url.Values{"city": {city}}.Encode()
	}
	var out []domain.Property
	if err := c.get(ctx, u, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Property{}
	}
	return out, nil
}

// ---- Internals ----

type errorBody struct {
	Error string `json:"error"`
}

// get performs one rate-limited GET and decodes a 2xx JSON body into out.
func (c *Client) get(ctx context.Context, u string, out any) error {
	op := "GET /search"
	if err := c.rl.Wait(ctx); err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "property-search-web/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		// network error or context canceled
		observability.ObserveExternal(service, "/search", 0, time.Since(start))
		log.Warn().Err(err).Str("err_type", observability.LabelErr(errors.Unwrap(err))).Str("url", u).Msg("query service unreachable")
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, "/search", resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// an empty body is as undecodable as a malformed one
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &domain.TransportError{Op: op, Err: fmt.Errorf("decode %d response: %w", resp.StatusCode, err)}
		}
		return nil

	case resp.StatusCode == http.StatusInternalServerError:
		// the query service reports database failures as {"error": "..."}
		var eb errorBody
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(b, &eb) == nil && eb.Error != "" {
			return &domain.QueryError{Message: eb.Error}
		}
		return &domain.TransportError{Op: op, Status: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(b)))}

	default:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &domain.TransportError{Op: op, Status: resp.StatusCode}
	}
}

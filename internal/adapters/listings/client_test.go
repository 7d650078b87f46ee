package listings_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"property_search/internal/adapters/listings"
	"property_search/internal/domain"
)

func newClient(t *testing.T, url string) *listings.Client {
	t.Helper()
	cl, err := listings.New(url, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return cl
}

func TestClient_Search_OK(t *testing.T) {
	var gotCity string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotCity = r.URL.Query().Get("city")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.Property{{ID: 1, Name: "Lovely Loft", City: "São Paulo"}})
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := newClient(t, ts.URL+"/").Search(ctx, "São Paulo")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotCity != "São Paulo" {
		t.Fatalf("city not forwarded: %q", gotCity)
	}
	if len(got) != 1 || got[0].Name != "Lovely Loft" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_Search_NoCityParam(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte("null"))
	}))
	defer ts.Close()

	got, err := newClient(t, ts.URL).Search(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestClient_Search_500IsQueryError(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"relation \"properties\" does not exist"}`))
	}))
	defer ts.Close()

	_, err := newClient(t, ts.URL).Search(context.Background(), "")
	var qe *domain.QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QueryError, got %T %v", err, err)
	}
	if qe.Message != `relation "properties" does not exist` {
		t.Fatalf("unexpected message %q", qe.Message)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("client must not retry, got %d calls", hits)
	}
}

func TestClient_Search_OtherStatusIsTransportError(t *testing.T) {
	for _, code := range []int{http.StatusBadGateway, http.StatusNotFound} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		_, err := newClient(t, ts.URL).Search(context.Background(), "")
		ts.Close()

		var te *domain.TransportError
		if !errors.As(err, &te) || te.Status != code {
			t.Fatalf("status %d: expected TransportError, got %T %v", code, err, err)
		}
	}
}

func TestClient_Search_500WithoutBodyIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newClient(t, ts.URL).Search(context.Background(), "")
	var te *domain.TransportError
	if !errors.As(err, &te) || te.Status != http.StatusInternalServerError {
		t.Fatalf("expected TransportError, got %T %v", err, err)
	}
}

func TestClient_Search_Unreachable(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := newClient(t, url).Search(context.Background(), "")
	var te *domain.TransportError
	if !errors.As(err, &te) || te.Status != 0 {
		t.Fatalf("expected TransportError without status, got %T %v", err, err)
	}
	if !strings.Contains(buf.String(), `"err_type":"*net.OpError"`) {
		t.Fatalf("expected error type in log, got %s", buf.String())
	}
}

func TestClient_Search_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer ts.Close()

	_, err := newClient(t, ts.URL).Search(context.Background(), "")
	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T %v", err, err)
	}
	if !strings.Contains(err.Error(), "decode 200 response") {
		t.Fatalf("decode cause missing from %q", err.Error())
	}
}

func TestClient_Search_EmptyBodyIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ps, err := newClient(t, ts.URL).Search(context.Background(), "")
	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got ps=%v err=%v", ps, err)
	}
	if ps != nil {
		t.Fatalf("expected no result set, got %v", ps)
	}
}

func TestTransportError_MessageKeepsCause(t *testing.T) {
	err := &domain.TransportError{Op: "GET /search", Status: 500, Err: errors.New("gateway said no")}
	if got := err.Error(); got != "GET /search: unexpected status 500: gateway said no" {
		t.Fatalf("Error() = %q", got)
	}
	bare := &domain.TransportError{Op: "GET /search", Status: 502}
	if got := bare.Error(); got != "GET /search: unexpected status 502" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestNew_InvalidURL(t *testing.T) {
	if _, err := listings.New("not a url", 1); err == nil {
		t.Fatal("expected error")
	}
}

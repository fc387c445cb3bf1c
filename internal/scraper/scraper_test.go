package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cmeijn/dp-events/internal/overview"
)

func newTestScraper(t *testing.T) *Scraper {
	s := New(zaptest.NewLogger(t))
	s.retryInterval = time.Millisecond
	return s
}

func serveFixture(t *testing.T, name string) http.HandlerFunc {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	require.NoError(t, err, "failed to load test fixture")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}
}

func TestFetchEvent(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		serveFixture(t, "overview_finalized.html")(w, r)
	}))
	defer srv.Close()

	evt, err := newTestScraper(t).FetchEvent(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "http://datumprikker.nl/afspraak/overzicht/f4wfumjp7a9ih2nq", evt.CanonicalURL)
	assert.Equal(t, "D&D Avernus Week 22", evt.Title)
	require.NotNil(t, evt.FinalDate)
	assert.Equal(t, time.Date(2022, 6, 3, 17, 0, 0, 0, time.UTC), evt.FinalDate.Start)
	assert.Equal(t, int32(1), requests.Load())
}

func TestFetchEventRetriesServerErrors(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		serveFixture(t, "overview_participant.html")(w, r)
	}))
	defer srv.Close()

	evt, err := newTestScraper(t).FetchEvent(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "test", evt.Title)
	assert.Equal(t, int32(3), requests.Load())
}

func TestFetchEventGivesUpAfterMaxRetries(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	evt, err := newTestScraper(t).FetchEvent(context.Background(), srv.URL)
	assert.Nil(t, evt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 500")
	assert.Equal(t, int32(maxRetries+1), requests.Load())
}

func TestFetchEventClientErrorNotRetried(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	evt, err := newTestScraper(t).FetchEvent(context.Background(), srv.URL)
	assert.Nil(t, evt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code: 404")
	assert.Equal(t, int32(1), requests.Load())
}

func TestFetchEventSurfacesExtractionErrors(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		serveFixture(t, "home_index.html")(w, r)
	}))
	defer srv.Close()

	evt, err := newTestScraper(t).FetchEvent(context.Background(), srv.URL)
	assert.Nil(t, evt)
	assert.ErrorIs(t, err, overview.ErrNonExistingEvent)
	// Extraction failures must not trigger another fetch.
	assert.Equal(t, int32(1), requests.Load())
}

func TestFetchEventContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	evt, err := newTestScraper(t).FetchEvent(ctx, srv.URL)
	assert.Nil(t, evt)
	assert.ErrorIs(t, err, context.Canceled)
}

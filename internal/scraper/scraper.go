package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/cmeijn/dp-events/internal/event"
	"github.com/cmeijn/dp-events/internal/overview"
)

const (
	UserAgent = "dp-events-cli/1.0 (github.com/cmeijn/dp-events)"
	Timeout   = 30 * time.Second

	maxRetries = 3
)

// Scraper downloads event-overview pages.
type Scraper struct {
	client *http.Client
	log    *zap.Logger

	// retryInterval seeds the exponential backoff between attempts.
	retryInterval time.Duration
}

// New creates a Scraper with the default timeout. A nil logger disables
// logging.
func New(log *zap.Logger) *Scraper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		log:           log,
		retryInterval: backoff.DefaultInitialInterval,
	}
}

// FetchEvent downloads the overview page at url and extracts its event
// summary. Request failures and 5xx responses are retried; any other
// non-200 status and all extraction failures are terminal.
func (s *Scraper) FetchEvent(ctx context.Context, url string) (*event.Event, error) {
	var body string
	attempt := 0

	fetch := func() error {
		attempt++
		text, err := s.fetchPage(ctx, url)
		if err != nil {
			return err
		}
		body = text
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryInterval

	err := backoff.Retry(fetch, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	evt, err := overview.Parse(body)
	if err != nil {
		return nil, err
	}

	s.log.Debug("event extracted",
		zap.String("canonical_url", evt.CanonicalURL),
		zap.String("title", evt.Title),
		zap.Bool("finalized", evt.HasFinalDate()),
		zap.Int("attempts", attempt),
	)

	return evt, nil
}

func (s *Scraper) fetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("request failed", zap.String("url", url), zap.Error(err))
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError:
		s.log.Warn("server error, will retry",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	default:
		return "", backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(data), nil
}

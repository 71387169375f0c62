package money

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// RateSource provides live exchange rates.
//
// LiveRate reports false if no rate is available for any reason. It never
// returns an error, callers fall back to other sources instead.
type RateSource interface {
	LiveRate(ctx context.Context, from, to string) (decimal.Decimal, bool)
}

// RateSourceFunc adapts a function to the RateSource interface.
type RateSourceFunc func(ctx context.Context, from, to string) (decimal.Decimal, bool)

// LiveRate calls f(ctx, from, to).
func (f RateSourceFunc) LiveRate(ctx context.Context, from, to string) (decimal.Decimal, bool) {
	return f(ctx, from, to)
}

// HTTPSource fetches rates from an exchange rate API that answers
// GET {base}/latest?base=FROM&symbols=TO with {"rates": {"TO": 1.23}}.
type HTTPSource struct {
	baseURL string
	http    *http.Client
}

// NewHTTPSource creates a source for the given API base URL.
// Returns nil if the URL is empty.
func NewHTTPSource(baseURL string) *HTTPSource {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}

	return &HTTPSource{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type latestResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// LiveRate implements RateSource.
func (s *HTTPSource) LiveRate(ctx context.Context, from, to string) (decimal.Decimal, bool) {
	rate, err := s.fetch(ctx, from, to)
	if err != nil {
		log.Warn().Err(err).Str("from", from).Str("to", to).Msg("FX")
		return decimal.Decimal{}, false
	}

	return rate, true
}

func (s *HTTPSource) fetch(ctx context.Context, from, to string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("base", from)
	q.Set("symbols", to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return decimal.Decimal{}, fmt.Errorf("decoding response: %w", err)
	}

	rate, ok := body.Rates[to]
	if !ok || !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("no usable rate for %s in response", to)
	}

	return rate, nil
}

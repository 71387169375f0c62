package money

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxAge is how long a cached rate is considered fresh.
const DefaultMaxAge = time.Hour

// Rate is an exchange rate and the time it was observed.
type Rate struct {
	Rate      decimal.Decimal `json:"rate" example:"3.6725"`
	Timestamp time.Time       `json:"timestamp" example:"2024-05-01T10:11:12Z"`
	Source    string          `json:"source" example:"live"` // One of "identity", "live", "fallback" or "unlisted"
}

// Rates caches the most recent rate per currency pair.
//
// Lookups for the same pair share a single outbound call, lookups for
// different pairs never wait for each other.
type Rates struct {
	source RateSource
	maxAge time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	cache map[string]Rate
	group singleflight.Group
}

// Option configures Rates.
type Option func(*Rates)

// WithMaxAge sets the freshness window for cached rates.
func WithMaxAge(d time.Duration) Option {
	return func(r *Rates) {
		r.maxAge = d
	}
}

// WithClock sets the function used to get the current time.
func WithClock(now func() time.Time) Option {
	return func(r *Rates) {
		r.now = now
	}
}

// NewRates creates a rate cache. source may be nil, in which case only
// the default rates are used.
func NewRates(source RateSource, opts ...Option) *Rates {
	r := &Rates{
		source: source,
		maxAge: DefaultMaxAge,
		now:    time.Now,
		cache:  make(map[string]Rate),
	}

	for _, o := range opts {
		o(r)
	}

	return r
}

// Rate returns the exchange rate to convert from one currency to another.
//
// Same-currency pairs always have rate 1. Otherwise, a fresh cached rate is
// used, then a live rate, then the default table, then 1. Rates from the
// last three are cached.
func (r *Rates) Rate(ctx context.Context, from, to string) Rate {
	if from == to {
		lookups.WithLabelValues(resultIdentity).Inc()
		return Rate{Rate: decimal.NewFromInt(1), Timestamp: r.now(), Source: resultIdentity}
	}

	key := pairKey(from, to)
	if rate, ok := r.fresh(key); ok {
		lookups.WithLabelValues(resultCache).Inc()
		return rate
	}

	v, _, _ := r.group.Do(key, func() (interface{}, error) {
		// Another caller may have refreshed the rate while we waited
		if rate, ok := r.fresh(key); ok {
			return rate, nil
		}

		rate := r.resolve(ctx, from, to)

		r.mu.Lock()
		r.cache[key] = rate
		cachedRates.Set(float64(len(r.cache)))
		r.mu.Unlock()

		return rate, nil
	})

	rate := v.(Rate)
	lookups.WithLabelValues(rate.Source).Inc()
	return rate
}

// CreateMoney converts amount from currency into base.
func (r *Rates) CreateMoney(ctx context.Context, amount decimal.Decimal, currency, base string) Money {
	return New(amount, currency, r.Rate(ctx, currency, base))
}

// All returns a snapshot of all cached rates, keyed by "FROM_TO".
func (r *Rates) All() map[string]Rate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rates := make(map[string]Rate, len(r.cache))
	for k, v := range r.cache {
		rates[k] = v
	}

	return rates
}

func (r *Rates) fresh(key string) (Rate, bool) {
	r.mu.RLock()
	rate, ok := r.cache[key]
	r.mu.RUnlock()

	if !ok || r.now().Sub(rate.Timestamp) >= r.maxAge {
		return Rate{}, false
	}

	return rate, true
}

func (r *Rates) resolve(ctx context.Context, from, to string) Rate {
	if r.source != nil {
		if live, ok := r.source.LiveRate(ctx, from, to); ok {
			return Rate{Rate: live, Timestamp: r.now(), Source: resultLive}
		}
	}

	if fallback, ok := DefaultRate(from, to); ok {
		log.Debug().Str("from", from).Str("to", to).Str("rate", fallback.String()).Msg("FX: using default rate")
		return Rate{Rate: fallback, Timestamp: r.now(), Source: resultFallback}
	}

	log.Warn().Str("from", from).Str("to", to).Msg("FX: no rate available, using 1")
	return Rate{Rate: decimal.NewFromInt(1), Timestamp: r.now(), Source: resultUnlisted}
}

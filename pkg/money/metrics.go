package money

import "github.com/prometheus/client_golang/prometheus"

const (
	resultIdentity = "identity"
	resultCache    = "cache"
	resultLive     = "live"
	resultFallback = "fallback"
	resultUnlisted = "unlisted"
)

var lookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fx_rate_lookups_total",
		Help: "How many exchange rate lookups were resolved, partitioned by where the rate came from.",
	},
	[]string{"result"},
)

var cachedRates = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "fx_rate_cache_size",
		Help: "Number of currency pairs in the exchange rate cache.",
	},
)

// Collectors returns all Prometheus collectors of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{lookups, cachedRates}
}

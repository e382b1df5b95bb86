package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled HTTP requests by method, route pattern and
	// status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_http_requests_total",
		Help: "Number of HTTP requests handled.",
	}, []string{"method", "path", "code"})

	// ItemsCreated counts successfully submitted reports by item type.
	ItemsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_items_created_total",
		Help: "Number of item reports created.",
	}, []string{"item_type"})

	// TaggerFallbacks counts classifications that fell back to the default
	// label because the remote classifier failed or returned an unexpected
	// response.
	TaggerFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_tagger_fallback_total",
		Help: "Number of classifications that used the fallback label.",
	})
)

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

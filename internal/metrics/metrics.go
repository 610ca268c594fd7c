package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pricewatch/backend/internal/domain"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pricewatch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pricewatch",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	basketSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pricewatch",
		Name:      "basket_size",
		Help:      "Number of canonical items in the shopping list",
	})

	rowsCompared = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pricewatch",
		Name:      "rows_compared",
		Help:      "Number of comparison rows in the latest run",
	})

	itemsCounted = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pricewatch",
		Name:      "retailer_items_counted",
		Help:      "Items contributing to each retailer's total in the latest run",
	}, []string{"retailer"})

	lastRunTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pricewatch",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time of the latest comparison run",
	})
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(basketSize)
	prometheus.MustRegister(rowsCompared)
	prometheus.MustRegister(itemsCounted)
	prometheus.MustRegister(lastRunTimestamp)
}

// RecordComparison updates the run-level gauges after a reconciliation.
func RecordComparison(c *domain.Comparison) {
	if c == nil {
		return
	}
	basketSize.Set(float64(c.BasketSize))
	rowsCompared.Set(float64(len(c.Rows)))
	lastRunTimestamp.Set(float64(c.GeneratedAt.Unix()))
	for _, t := range c.Totals {
		itemsCounted.WithLabelValues(t.RetailerID).Set(float64(t.ItemsCounted))
	}
}

package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProductsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cardsync_products_processed_total",
			Help: "Products examined by the sync loop",
		},
	)
	LookupsMissed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cardsync_lookups_missed_total",
			Help: "Products with no usable reference price",
		},
	)
	VariantsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cardsync_variants_updated_total",
			Help: "Variant prices pushed to the platform",
		},
	)
	VariantsUnchanged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cardsync_variants_unchanged_total",
			Help: "Variants whose listed price already matched",
		},
	)
	WriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cardsync_write_failures_total",
			Help: "Variant updates rejected by the platform",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(
		ProductsProcessed,
		LookupsMissed,
		VariantsUpdated,
		VariantsUnchanged,
		WriteFailures,
	)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}

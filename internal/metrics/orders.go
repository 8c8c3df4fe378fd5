package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSavedOrders        = "saved_total"
	NameSaveFailures       = "save_failures_total"
	NameValidationFailures = "validation_failures_total"
	NameSubscribers        = "list_subscribers"
	NameRateLimited        = "rate_limited_requests_total"
	LabelField             = "field"
)

var SavedOrders = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSavedOrders,
		Help:      "Total saved orders",
		Namespace: Namespace,
	},
)

var SaveFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameSaveFailures,
		Help:      "Total failed order writes",
		Namespace: Namespace,
	},
)

var ValidationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameValidationFailures,
		Help:      "Total rejected form fields",
		Namespace: Namespace,
	},
	[]string{LabelField},
)

var Subscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name:      NameSubscribers,
		Help:      "Current order list subscribers",
		Namespace: Namespace,
	},
)

var RateLimited = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameRateLimited,
		Help:      "Total requests rejected by the rate limiter",
		Namespace: Namespace,
	},
)

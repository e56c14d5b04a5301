package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Trade-up Metrics
var (
	TradeUpsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradeUpsComputed,
			Help: HelpTextTradeUpsComputed,
		},
		[]string{LabelRarity},
	)

	TradeUpsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradeUpsRejected,
			Help: HelpTextTradeUpsRejected,
		},
		[]string{LabelReason},
	)

	TradeUpOutcomeCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTradeUpOutcomeCount,
			Help:    HelpTextTradeUpOutcomeCount,
			Buckets: OutcomeCountBuckets,
		},
	)
)

// Catalog Metrics
var (
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	CatalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLookups,
			Help: HelpTextCatalogLookups,
		},
		[]string{LabelKind, LabelResult},
	)
)

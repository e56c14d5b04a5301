package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Trade-up metric names
const (
	MetricNameTradeUpsComputed    = "tradeups_computed_total"
	MetricNameTradeUpsRejected    = "tradeups_rejected_total"
	MetricNameTradeUpOutcomeCount = "tradeup_outcome_count"
)

// Catalog metric names
const (
	MetricNameCatalogItems   = "catalog_items"
	MetricNameCatalogLookups = "catalog_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextTradeUpsComputed    = "Total number of trade-ups computed, by input rarity"
	HelpTextTradeUpsRejected    = "Total number of trade-up requests rejected, by reason"
	HelpTextTradeUpOutcomeCount = "Number of distinct outcomes per computed trade-up"
)

const (
	HelpTextCatalogItems   = "Number of items in the loaded catalog"
	HelpTextCatalogLookups = "Total number of catalog lookups, by kind and result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelRarity = "rarity"
	LabelReason = "reason"
	LabelKind   = "kind"
	LabelResult = "result"
)

// Label values for CatalogLookups
const (
	LookupKindID   = "id"
	LookupKindName = "name"

	LookupResultHit  = "hit"
	LookupResultMiss = "miss"
)

// UnmatchedRoute labels requests chi could not route, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OutcomeCountBuckets covers one to a few dozen possible outputs
var OutcomeCountBuckets = []float64{0, 1, 2, 3, 5, 8, 13, 21, 34}

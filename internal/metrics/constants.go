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

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameLootDrops        = "loot_drops_total"
	MetricNameLootRejected     = "loot_rejected_total"
	MetricNameItemsSold        = "items_sold_total"
	MetricNameGoldEarned       = "gold_earned_total"
	MetricNameItemsSalvaged    = "items_salvaged_total"
	MetricNameMaterialsGained  = "materials_gained_total"
	MetricNameItemsCrafted     = "items_crafted_total"
	MetricNameItemsUpgraded    = "items_upgraded_total"
	MetricNameGoldSpent        = "gold_spent_total"
	MetricNameEquipmentChanges = "equipment_changes_total"
	MetricNameSessionsActive   = "sessions_active"
	MetricNameAutosavesTotal   = "autosaves_total"
	MetricNameAutosaveFailures = "autosave_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextLootDrops        = "Total number of items produced by loot rolls"
	HelpTextLootRejected     = "Total number of looted items rejected by a full inventory"
	HelpTextItemsSold        = "Total number of items sold"
	HelpTextGoldEarned       = "Total gold earned from selling items"
	HelpTextItemsSalvaged    = "Total number of items salvaged"
	HelpTextMaterialsGained  = "Total materials gained from salvaging"
	HelpTextItemsCrafted     = "Total number of items crafted"
	HelpTextItemsUpgraded    = "Total number of item upgrades"
	HelpTextGoldSpent        = "Total gold spent on upgrades"
	HelpTextEquipmentChanges = "Total number of equip and unequip operations"
	HelpTextSessionsActive   = "Number of player sessions held in memory"
	HelpTextAutosavesTotal   = "Total number of autosave runs"
	HelpTextAutosaveFailures = "Total number of sessions that failed to autosave"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelRarity   = "rarity"
	LabelMaterial = "material"
	LabelRecipe   = "recipe"
	LabelSlot     = "slot"
	LabelAction   = "action"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

// unmatchedRoute labels requests chi could not route
const unmatchedRoute = "unmatched"

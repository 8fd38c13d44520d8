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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	LootDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootDrops,
			Help: HelpTextLootDrops,
		},
		[]string{LabelRarity},
	)

	LootRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootRejected,
			Help: HelpTextLootRejected,
		},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelRarity},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	ItemsSalvaged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsSalvaged,
			Help: HelpTextItemsSalvaged,
		},
	)

	MaterialsGained = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMaterialsGained,
			Help: HelpTextMaterialsGained,
		},
		[]string{LabelMaterial},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCrafted,
			Help: HelpTextItemsCrafted,
		},
		[]string{LabelRecipe},
	)

	ItemsUpgraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpgraded,
			Help: HelpTextItemsUpgraded,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	EquipmentChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEquipmentChanges,
			Help: HelpTextEquipmentChanges,
		},
		[]string{LabelAction, LabelSlot},
	)
)

// Session Metrics
var (
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	AutosavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAutosavesTotal,
			Help: HelpTextAutosavesTotal,
		},
	)

	AutosaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAutosaveFailures,
			Help: HelpTextAutosaveFailures,
		},
	)
)

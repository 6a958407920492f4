// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_turns_processed_total",
			Help: "Total number of conversation turns processed",
		},
		[]string{"state"},
	)

	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_intents_classified_total",
			Help: "Total number of intents classified, by intent and source layer",
		},
		[]string{"intent", "layer"},
	)

	TurnDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chatbot_turn_duration_seconds",
			Help:    "Duration of one pipeline turn in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chatbot_active_sessions",
			Help: "Number of sessions currently held by the store",
		},
	)

	LeadLevels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_lead_levels_total",
			Help: "Lead level observed after each turn",
		},
		[]string{"level"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_recommendations_total",
			Help: "Package recommendations issued",
		},
		[]string{"package"},
	)
)

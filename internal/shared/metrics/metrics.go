package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProfileAnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "icebreaker_profile_analyses_total",
			Help: "Total number of profile analyses performed",
		},
	)

	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "icebreaker_selections_total",
			Help: "Total number of icebreaker selection calls",
		},
		[]string{"mode"},
	)

	QuestionsServedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "icebreaker_questions_served_total",
			Help: "Total number of personalized questions returned",
		},
	)

	AIFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "icebreaker_ai_fallbacks_total",
			Help: "Total number of AI customization calls that fell back to rules",
		},
		[]string{"reason"},
	)

	SelectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "icebreaker_selection_duration_seconds",
			Help:    "Duration of a full select-and-personalize call",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)

// Handler exposes metrics in Prometheus format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

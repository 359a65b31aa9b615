// Package metrics defines the Prometheus collectors of the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Namespace prefixes every metric name.
const Namespace = "dupecheck"

// Detector label values.
const (
	DetectorSequence = "sequence"
	DetectorWords    = "words"
)

// Corpus and similarity Prometheus metrics.
var (
	SimilarityChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "similarity_checks_total",
			Help:      "Total number of duplicate checks",
		},
		[]string{"detector", "outcome"}, // outcome: "match" / "no_match" / "error"
	)

	SimilarityCheckDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "similarity_check_duration_seconds",
			Help:      "Duplicate check duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"detector"},
	)

	SimilarityMatches = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "similarity_matches",
			Help:      "Number of matches returned per check",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
		[]string{"detector"},
	)

	CorpusSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "corpus_questions",
			Help:      "Number of questions in the corpus",
		},
	)

	CapacityRejectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "capacity_rejections_total",
			Help:      "Inserts rejected because the corpus was full",
		},
	)
)

var corpusMetricsRegistered bool

// RegisterCorpusMetrics registers corpus and similarity metrics. Must be called once from main.
func RegisterCorpusMetrics() {
	if corpusMetricsRegistered {
		return
	}
	prometheus.MustRegister(SimilarityChecksTotal)
	prometheus.MustRegister(SimilarityCheckDuration)
	prometheus.MustRegister(SimilarityMatches)
	prometheus.MustRegister(CorpusSize)
	prometheus.MustRegister(CapacityRejectionsTotal)
	corpusMetricsRegistered = true
}

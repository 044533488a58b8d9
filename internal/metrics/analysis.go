package metrics

import "github.com/prometheus/client_golang/prometheus"

// Analysis Prometheus metrics.
var (
	AnalysisRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docintel",
			Name:      "analysis_requests_total",
			Help:      "Total number of document analysis requests",
		},
		[]string{"model", "status"},
	)

	AnalysisRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docintel",
			Name:      "analysis_request_duration_seconds",
			Help:      "Document analysis request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"model"},
	)

	AnalysisTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docintel",
			Name:      "analysis_tokens_total",
			Help:      "Total analysis tokens consumed",
		},
		[]string{"model", "type"},
	)

	AnalysisErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docintel",
			Name:      "analysis_errors_total",
			Help:      "Total analysis errors",
		},
		[]string{"model", "error_type"},
	)

	AnalysisCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docintel",
			Name:      "analysis_cache_total",
			Help:      "Analysis cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	DocumentsIngestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docintel",
			Name:      "documents_ingested_total",
			Help:      "Total documents processed at intake",
		},
		[]string{"file_type", "analysis"}, // analysis: "analyzed" / "fallback" / "rejected"
	)
)

var analysisMetricsRegistered bool

// RegisterAnalysisMetrics registers Prometheus analysis metrics. Must be called once from main.
func RegisterAnalysisMetrics() {
	if analysisMetricsRegistered {
		return
	}
	prometheus.MustRegister(AnalysisRequestsTotal)
	prometheus.MustRegister(AnalysisRequestDuration)
	prometheus.MustRegister(AnalysisTokensTotal)
	prometheus.MustRegister(AnalysisErrorsTotal)
	prometheus.MustRegister(AnalysisCacheTotal)
	prometheus.MustRegister(DocumentsIngestedTotal)
	analysisMetricsRegistered = true
}

package metrics

/**
 * metrics.go - prometheus metrics
 */

import (
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/graph"
	"github.com/ifgraph/ifgraph/info"
	"github.com/ifgraph/ifgraph/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "ifgraph"
)

/**
 * Window outcomes
 */
const (
	WindowPresent = "present"
	WindowEmpty   = "empty"
	WindowAbsent  = "absent"
)

var (
	metricsDisabled = true
	log             = logging.For("metrics")

	buildInfo *prometheus.GaugeVec

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	windows          *prometheus.CounterVec
)

func defineMetrics() {

	buildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help: fmt.Sprintf(
			"A metric with a constant '1' value labeled by version, revision, branch, and goversion from which %s was built.",
			namespace,
		),
	}, []string{"version", "revision", "branch", "goversion"})

	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Upstream requests by kind and status code, code 0 is a transport error.",
	}, []string{"kind", "code"})

	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Upstream request duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	windows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "windows_total",
		Help:      "Extracted windows by outcome.",
	}, []string{"window", "result"})
}

/**
 * Start registers metrics and serves them on cfg.Bind
 */
func Start(cfg config.MetricsConfig) {

	if !cfg.Enabled {
		log.Info("Metrics disabled")
		return
	}

	log.Info("Starting up Metrics server ", cfg.Bind)
	defineMetrics()

	registry := prometheus.NewRegistry()
	registry.MustRegister(buildInfo, upstreamRequests, upstreamDuration, windows)
	buildInfo.WithLabelValues(info.Version, info.Revision, info.Branch, runtime.Version()).Set(1)

	metricsDisabled = false

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(cfg.Bind, mux); err != nil {
			log.Error(err)
		}
	}()
}

/**
 * ReportUpstreamRequest records one upstream fetch
 */
func ReportUpstreamRequest(kind string, code int, elapsed time.Duration) {
	if metricsDisabled {
		return
	}

	upstreamRequests.WithLabelValues(kind, strconv.Itoa(code)).Inc()
	upstreamDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

/**
 * ReportResult records outcome of every window of an extraction
 */
func ReportResult(result *graph.Result) {
	if metricsDisabled || result == nil {
		return
	}

	for _, w := range graph.Windows {
		windows.WithLabelValues(w.String(), WindowOutcome(result.Window(w))).Inc()
	}
}

/**
 * WindowOutcome classifies extracted window stats
 */
func WindowOutcome(s *graph.WindowStats) string {
	switch {
	case s == nil:
		return WindowAbsent
	case s.Empty():
		return WindowEmpty
	}
	return WindowPresent
}

package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "clipcatalog"

// File outcome labels.
const (
	ResultSucceeded = "succeeded"
	ResultFailed    = "failed"
	ResultSkipped   = "skipped"
)

// Recorder owns the batch collectors and the registry they live in.
type Recorder struct {
	registry    *prometheus.Registry
	files       *prometheus.CounterVec
	candidates  prometheus.Gauge
	runDuration prometheus.Gauge
	lastSuccess prometheus.Gauge
	requests    *prometheus.CounterVec
}

// New builds a Recorder on a private registry that also carries the Go
// runtime and process collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Video files handled by the populate batch, by result.",
		}, []string{"result"}),
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "candidates",
			Help:      "Video files discovered in the source bucket by the last run.",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last populate run.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_completed_timestamp_seconds",
			Help:      "Unix time the last populate run finished enumeration without a fatal error.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops_http_requests_total",
			Help:      "Requests served by the ops endpoint.",
		}, []string{"method", "path", "status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.files,
		r.candidates,
		r.runDuration,
		r.lastSuccess,
		r.requests,
	)
	for _, res := range []string{ResultSucceeded, ResultFailed, ResultSkipped} {
		r.files.WithLabelValues(res)
	}
	return r
}

// Registry exposes the underlying registry for scraping and pushing.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// FileHandled counts one file outcome.
func (r *Recorder) FileHandled(result string) {
	r.files.WithLabelValues(result).Inc()
}

// CandidatesFound records how many candidates the run will process.
func (r *Recorder) CandidatesFound(n int) {
	r.candidates.Set(float64(n))
}

// RunFinished records the run duration and completion time.
func (r *Recorder) RunFinished(elapsed time.Duration, at time.Time) {
	r.runDuration.Set(elapsed.Seconds())
	r.lastSuccess.Set(float64(at.Unix()))
}

// Middleware counts requests served by the ops router.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		r.requests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string, gatherer prometheus.Gatherer) {
	router.GET(path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// Push sends every metric in gatherer to a Prometheus pushgateway under job.
func Push(ctx context.Context, url, job string, gatherer prometheus.Gatherer) error {
	return push.New(url, job).Gatherer(gatherer).PushContext(ctx)
}

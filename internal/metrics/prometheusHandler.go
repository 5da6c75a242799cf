package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var pipelineFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pipeline_failures_total",
	Help: "Study pipeline failures labelled by failure kind",
}, []string{"kind"})

var documentsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "documents_extracted_total",
	Help: "Documents that went through extraction, labelled by format",
}, []string{"format"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "process_request_duration_seconds",
	Help:    "Total time spent producing an artifact.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"operation"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of extraction libraries and external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"service"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureOperationMetrics(operation string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(operation).Observe(timeElapsed.Seconds())
}

func IncrementPipelineFailure(kind string) {
	pipelineFailures.WithLabelValues(kind).Inc()
}

func IncrementDocumentsExtracted(format string) {
	documentsExtracted.WithLabelValues(format).Inc()
}

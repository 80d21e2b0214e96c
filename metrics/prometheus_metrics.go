package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements Metrics on the Prometheus client. Metrics are
// looked up by name, so each name must be registered before it is recorded.
type PrometheusMetrics struct {
	counters      map[string]prometheus.Counter
	counterVecs   map[string]*prometheus.CounterVec
	gauges        map[string]prometheus.Gauge
	gaugeVecs     map[string]*prometheus.GaugeVec
	histograms    map[string]prometheus.Histogram
	histogramVecs map[string]*prometheus.HistogramVec
	customBuckets map[string][]float64
}

func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		counters:      make(map[string]prometheus.Counter),
		counterVecs:   make(map[string]*prometheus.CounterVec),
		gauges:        make(map[string]prometheus.Gauge),
		gaugeVecs:     make(map[string]*prometheus.GaugeVec),
		histograms:    make(map[string]prometheus.Histogram),
		histogramVecs: make(map[string]*prometheus.HistogramVec),
		customBuckets: make(map[string][]float64),
	}
}

// SetCustomBuckets sets histogram buckets for the named metric. Must be
// called before Register; histograms registered without custom buckets use
// prometheus.DefBuckets.
func (p *PrometheusMetrics) SetCustomBuckets(name string, buckets []float64) {
	p.customBuckets[name] = buckets
}

// Register creates and registers an unlabeled metric. Supported metric types
// are "Counter", "Gauge" and "Histogram".
func (p *PrometheusMetrics) Register(name, metricType, help string) {
	switch metricType {
	case "Counter":
		counter := prometheus.NewCounter(prometheus.CounterOpts{
			Name: name,
			Help: help,
		})
		prometheus.MustRegister(counter)
		p.counters[name] = counter

	case "Gauge":
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		})
		prometheus.MustRegister(gauge)
		p.gauges[name] = gauge

	case "Histogram":
		buckets, ok := p.customBuckets[name]
		if !ok {
			buckets = prometheus.DefBuckets
		}
		histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		})
		prometheus.MustRegister(histogram)
		p.histograms[name] = histogram

	default:
		log.Printf("Error: Attempted to register unknown metric type '%s' with name '%s'", metricType, name)
	}
}

// Record records a value against an unlabeled metric: Add for counters, Set
// for gauges, Observe for histograms. Unknown names are ignored.
func (p *PrometheusMetrics) Record(name string, value float64) {
	if counter, ok := p.counters[name]; ok {
		counter.Add(value)
		return
	}
	if gauge, ok := p.gauges[name]; ok {
		gauge.Set(value)
		return
	}
	if histogram, ok := p.histograms[name]; ok {
		histogram.Observe(value)
		return
	}
}

// RegisterWithLabels is Register for labeled (vector) metrics; labels gives
// the label keys.
func (p *PrometheusMetrics) RegisterWithLabels(name, metricType, help string, labels []string) {
	switch metricType {
	case "Counter":
		counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels)
		prometheus.MustRegister(counterVec)
		p.counterVecs[name] = counterVec

	case "Gauge":
		gaugeVec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}, labels)
		prometheus.MustRegister(gaugeVec)
		p.gaugeVecs[name] = gaugeVec

	case "Histogram":
		buckets, ok := p.customBuckets[name]
		if !ok {
			buckets = prometheus.DefBuckets
		}
		histogramVec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		}, labels)
		prometheus.MustRegister(histogramVec)
		p.histogramVecs[name] = histogramVec
	}
}

// RecordWithLabels records a value against a labeled metric. labelValues must
// match the order and number of label keys given at registration.
func (p *PrometheusMetrics) RecordWithLabels(name string, value float64, labelValues ...string) {
	if counterVec, ok := p.counterVecs[name]; ok {
		counterVec.WithLabelValues(labelValues...).Add(value)
		return
	}
	if gaugeVec, ok := p.gaugeVecs[name]; ok {
		gaugeVec.WithLabelValues(labelValues...).Set(value)
		return
	}
	if histogramVec, ok := p.histogramVecs[name]; ok {
		histogramVec.WithLabelValues(labelValues...).Observe(value)
		return
	}
}

// StartMetricsServer serves /metrics for Prometheus to scrape on the given
// port. It blocks; run it in its own goroutine.
func (p *PrometheusMetrics) StartMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
}

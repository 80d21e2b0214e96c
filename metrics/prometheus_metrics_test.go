package metrics

import (
	"testing"
)

func TestRegisterCounter(t *testing.T) {
	m := NewPrometheusMetrics()

	m.Register("evalcore_test_register_total", "Counter", "registration test counter")

	if _, ok := m.counters["evalcore_test_register_total"]; !ok {
		t.Errorf("counter was not registered")
	}
	m.Record("evalcore_test_register_total", 1)
}

func TestRegisterWithLabels(t *testing.T) {
	m := NewPrometheusMetrics()

	m.RegisterWithLabels("evalcore_test_labeled_total", "Counter", "labeled test counter", []string{"dimension"})

	if _, ok := m.counterVecs["evalcore_test_labeled_total"]; !ok {
		t.Errorf("labeled counter was not registered")
	}
	m.RecordWithLabels("evalcore_test_labeled_total", 1, "accuracy")
}

func TestRecordUnknownNameIsIgnored(t *testing.T) {
	m := NewPrometheusMetrics()

	// Neither call may panic on a name that was never registered.
	m.Record("evalcore_test_never_registered", 1)
	m.RecordWithLabels("evalcore_test_never_registered", 1, "x")
}

func TestHistogramUsesCustomBuckets(t *testing.T) {
	m := NewPrometheusMetrics()

	m.SetCustomBuckets("evalcore_test_duration_seconds", []float64{0.1, 0.5, 1})
	m.Register("evalcore_test_duration_seconds", "Histogram", "duration test histogram")

	if _, ok := m.histograms["evalcore_test_duration_seconds"]; !ok {
		t.Errorf("histogram was not registered")
	}
	m.Record("evalcore_test_duration_seconds", 0.3)
}

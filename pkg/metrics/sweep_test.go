package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gatherFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	t.Fatalf("metric family %s not found", name)
	return nil
}

func TestSweepMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSweepMetrics(reg)

	m.IncSuccess("primary")
	m.IncSuccess("primary")
	m.IncFailure("secondary")
	m.IncCreated("chore")
	m.ObserveDuration("primary", 250*time.Millisecond)

	success := gatherFamily(t, reg, "sweep_success")
	if got := success.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Fatalf("sweep_success = %v, want 2", got)
	}
	if label := success.GetMetric()[0].GetLabel()[0]; label.GetName() != "sweep" || label.GetValue() != "primary" {
		t.Fatalf("unexpected label %s=%s", label.GetName(), label.GetValue())
	}

	failure := gatherFamily(t, reg, "sweep_failure")
	if got := failure.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Fatalf("sweep_failure = %v, want 1", got)
	}

	created := gatherFamily(t, reg, "notifications_created_total")
	if label := created.GetMetric()[0].GetLabel()[0]; label.GetValue() != "chore" {
		t.Fatalf("unexpected category label %s", label.GetValue())
	}

	duration := gatherFamily(t, reg, "sweep_duration_seconds")
	if got := duration.GetMetric()[0].GetHistogram().GetSampleCount(); got != 1 {
		t.Fatalf("sweep_duration_seconds samples = %d, want 1", got)
	}
}

func TestSweepMetricsEmptyLabelNormalized(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSweepMetrics(reg)

	m.IncSuccess("")
	success := gatherFamily(t, reg, "sweep_success")
	if label := success.GetMetric()[0].GetLabel()[0]; label.GetValue() != "unknown" {
		t.Fatalf("empty label should normalize to unknown, got %s", label.GetValue())
	}
}

func TestSweepMetricsNilSafe(t *testing.T) {
	var m *SweepMetrics
	m.IncSuccess("primary")
	m.IncFailure("primary")
	m.IncCreated("chore")
	m.ObserveDuration("primary", time.Second)

	unregistered := NewSweepMetrics(nil)
	unregistered.IncSuccess("primary")
}

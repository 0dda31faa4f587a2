package cli

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/valter-silva-au/raptorflow/internal/observability"
)

type metricsMock struct {
	calcFn func(since time.Time) (*observability.Metrics, error)
}

func (m *metricsMock) Calculate(since time.Time) (*observability.Metrics, error) {
	return m.calcFn(since)
}

func withMetrics(t *testing.T, calc observability.MetricsCalculator, since string, asJSON bool) {
	t.Helper()
	orig, origSince, origJSON := MetricsCalc, metricsSince, metricsJSON
	t.Cleanup(func() { MetricsCalc, metricsSince, metricsJSON = orig, origSince, origJSON })
	MetricsCalc, metricsSince, metricsJSON = calc, since, asJSON
}

func TestMetricsCmd_NilCalculator(t *testing.T) {
	withMetrics(t, nil, "7d", false)
	err := metricsCmd.RunE(metricsCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Fatalf("expected not initialized error, got %v", err)
	}
}

func TestMetricsCmd_InvalidSince(t *testing.T) {
	calc := &metricsMock{calcFn: func(time.Time) (*observability.Metrics, error) {
		return &observability.Metrics{}, nil
	}}
	for _, since := range []string{"abc", "xd", "7w"} {
		t.Run(since, func(t *testing.T) {
			withMetrics(t, calc, since, false)
			err := metricsCmd.RunE(metricsCmd, nil)
			if err == nil || !strings.Contains(err.Error(), "parsing --since") {
				t.Fatalf("expected parse error, got %v", err)
			}
		})
	}
}

func TestMetricsCmd_Table(t *testing.T) {
	var gotSince time.Time
	calc := &metricsMock{calcFn: func(since time.Time) (*observability.Metrics, error) {
		gotSince = since
		return &observability.Metrics{
			MovesLaunched:   3,
			MovesByCategory: map[string]int{"rally": 1, "capture": 2},
			TasksCompleted:  5,
			EventCount:      12,
		}, nil
	}}
	withMetrics(t, calc, "30d", false)
	out := captureOutput(t, metricsCmd)

	if err := metricsCmd.RunE(metricsCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := time.Since(gotSince); d < 29*24*time.Hour || d > 31*24*time.Hour {
		t.Errorf("since should be about 30 days ago, got %v", d)
	}
	text := out.String()
	for _, want := range []string{"Moves launched:", "3", "Tasks completed:", "capture:", "rally:"} {
		if !strings.Contains(text, want) {
			t.Errorf("table output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "capture:") > strings.Index(text, "rally:") {
		t.Error("categories should be sorted")
	}
}

func TestMetricsCmd_JSON(t *testing.T) {
	calc := &metricsMock{calcFn: func(time.Time) (*observability.Metrics, error) {
		return &observability.Metrics{SamplesGenerated: 2, EventCount: 2}, nil
	}}
	withMetrics(t, calc, "7d", true)
	out := captureOutput(t, metricsCmd)

	if err := metricsCmd.RunE(metricsCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `"samples_generated": 2`) {
		t.Errorf("unexpected JSON: %s", out.String())
	}
}

func TestMetricsCmd_CalculateError(t *testing.T) {
	calc := &metricsMock{calcFn: func(time.Time) (*observability.Metrics, error) {
		return nil, fmt.Errorf("event log corrupted")
	}}
	withMetrics(t, calc, "7d", false)
	err := metricsCmd.RunE(metricsCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "calculating metrics") {
		t.Fatalf("expected calculate error, got %v", err)
	}
}

func TestMetricsCmd_AfterLaunch(t *testing.T) {
	withServices(t)
	withMetrics(t, MetricsCalc, "1d", true)

	if err := EventLog.Write(observability.Event{Type: observability.EventMoveLaunched, Data: map[string]any{"category": "ignite", "duration": 7}}); err != nil {
		t.Fatalf("writing event: %v", err)
	}
	out := captureOutput(t, metricsCmd)
	if err := metricsCmd.RunE(metricsCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `"ignite": 1`) || !strings.Contains(out.String(), `"planned_days": 7`) {
		t.Errorf("unexpected JSON: %s", out.String())
	}
}

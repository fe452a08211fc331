// Visit Counter - Dynamic SVG Visit Counter Badges
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/visitcounter

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramSnapshot reads the sample count and sum of one histogram child
func histogramSnapshot(t *testing.T, observer prometheus.Observer) (uint64, float64) {
	t.Helper()
	metric, ok := observer.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a prometheus.Metric", observer)
	}
	var m io_prometheus_client.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/counter/{name}/svg", "200"))

	RecordAPIRequest("GET", "/counter/{name}/svg", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/counter/{name}/svg", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestDurationHistograms(t *testing.T) {
	tests := []struct {
		name     string
		observer func() prometheus.Observer
		record   func(d time.Duration)
	}{
		{
			name:     "api request",
			observer: func() prometheus.Observer { return APIRequestDuration.WithLabelValues("PUT", "/api/counter/{name}") },
			record: func(d time.Duration) {
				RecordAPIRequest("PUT", "/api/counter/{name}", "200", d)
			},
		},
		{
			name:     "persist",
			observer: func() prometheus.Observer { return PersistDuration.WithLabelValues("badger") },
			record: func(d time.Duration) {
				RecordPersist("badger", d, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, sum := histogramSnapshot(t, tt.observer())

			tt.record(250 * time.Millisecond)

			gotCount, gotSum := histogramSnapshot(t, tt.observer())
			if gotCount != count+1 {
				t.Errorf("sample count = %d, want %d", gotCount, count+1)
			}
			if delta := gotSum - sum; delta < 0.249 || delta > 0.251 {
				t.Errorf("sample sum delta = %v, want 0.25", delta)
			}
		})
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordPersist(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantDelta float64
	}{
		{"success", nil, 0},
		{"failure", errors.New("disk full"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(PersistFailures.WithLabelValues("file"))
			RecordPersist("file", time.Millisecond, tt.err)
			after := testutil.ToFloat64(PersistFailures.WithLabelValues("file"))
			if after-before != tt.wantDelta {
				t.Errorf("persist failures delta = %v, want %v", after-before, tt.wantDelta)
			}
		})
	}
}

func TestRecordCounterMutation(t *testing.T) {
	for _, op := range []string{"increment", "set", "create", "delete"} {
		before := testutil.ToFloat64(CounterMutations.WithLabelValues(op))
		RecordCounterMutation(op)
		if got := testutil.ToFloat64(CounterMutations.WithLabelValues(op)); got != before+1 {
			t.Errorf("%s mutations = %v, want %v", op, got, before+1)
		}
	}
}

func TestSetBadgeCount(t *testing.T) {
	SetBadgeCount(7)
	if got := testutil.ToFloat64(CounterBadges); got != 7 {
		t.Errorf("badges gauge = %v, want 7", got)
	}
}

func TestRecordAuthMetrics(t *testing.T) {
	before := testutil.ToFloat64(AuthFailures.WithLabelValues("api_key"))
	beforeThrottled := testutil.ToFloat64(AuthThrottled)

	RecordAuthFailure("api_key")
	RecordAuthThrottled()

	if got := testutil.ToFloat64(AuthFailures.WithLabelValues("api_key")); got != before+1 {
		t.Errorf("auth failures = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(AuthThrottled); got != beforeThrottled+1 {
		t.Errorf("auth throttled = %v, want %v", got, beforeThrottled+1)
	}
}

func TestRenderAndGCMetrics(t *testing.T) {
	before := testutil.ToFloat64(BadgeRenders)
	RecordBadgeRender()
	if got := testutil.ToFloat64(BadgeRenders); got != before+1 {
		t.Errorf("renders = %v, want %v", got, before+1)
	}

	beforeErr := testutil.ToFloat64(BadgeRenderErrors.WithLabelValues("query"))
	RecordBadgeRenderError("query")
	if got := testutil.ToFloat64(BadgeRenderErrors.WithLabelValues("query")); got != beforeErr+1 {
		t.Errorf("render errors = %v, want %v", got, beforeErr+1)
	}

	beforeGC := testutil.ToFloat64(StorageGCRuns.WithLabelValues("noop"))
	RecordStorageGC("noop")
	if got := testutil.ToFloat64(StorageGCRuns.WithLabelValues("noop")); got != beforeGC+1 {
		t.Errorf("gc runs = %v, want %v", got, beforeGC+1)
	}
}

// TestMetricGathering checks the registered metrics pass the Prometheus linter
func TestMetricGathering(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint() error = %v", err)
	}
	for _, p := range problems {
		if p.Metric == "" {
			continue
		}
		t.Logf("lint: %s: %s", p.Metric, p.Text)
	}
}

package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)

	m.SessionStarted(1)
	m.SessionStarted(2)
	m.SessionAbandoned(1)
	m.ActSubmitted()
	m.Denied("list")
	m.StoreError("insert")
	m.SendFailed()

	if got := testutil.ToFloat64(m.SessionsStarted); got != 2 {
		t.Fatalf("sessions started = %v", got)
	}
	if got := testutil.ToFloat64(m.OpenSessions); got != 1 {
		t.Fatalf("open sessions = %v", got)
	}
	if got := testutil.ToFloat64(m.AccessDenied.WithLabelValues("list")); got != 1 {
		t.Fatalf("access denied = %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.SessionStarted(1)
	m.SessionAbandoned(0)
	m.SessionClosed(0)
	m.ActSubmitted()
	m.StoreError("scan")
	m.Denied("weekly")
	m.SendFailed()
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)
	m.ActSubmitted()

	srv := httptest.NewServer(NewRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected healthz: %d %q", resp.StatusCode, body)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), "test_acts_submitted_total 1") {
		t.Fatalf("metric missing from exposition: %s", body)
	}
}

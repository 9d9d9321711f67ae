package httpserver

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus is the body returned by the liveness probe.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthyStatus is the only status the liveness probe reports.
const HealthyStatus = "healthy"

// timestampLayout is ISO-8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// LivenessHandler returns a handler that always answers 200 with
// {"status":"healthy","timestamp":"..."}. It performs no dependency checks,
// so the probe stays green while the mail relay is unreachable.
// A nil clock defaults to time.Now.
func LivenessHandler(clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(HealthStatus{
			Status:    HealthyStatus,
			Timestamp: FormatTimestamp(clock()),
		})
	}
}

// FormatTimestamp renders t in UTC with millisecond precision and a Z suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

package server

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Metrics tracks request statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	ClientErrors     atomic.Int64
	ServerErrors     atomic.Int64
	Conflicts        atomic.Int64
	RequestsInFlight atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// begin marks a request as started
func (m *Metrics) begin() {
	m.RequestsTotal.Add(1)
	m.RequestsInFlight.Add(1)
}

// end marks a request as finished with the given status
func (m *Metrics) end(status int) {
	m.RequestsInFlight.Add(-1)
	switch {
	case status == http.StatusConflict:
		m.Conflicts.Add(1)
		m.ClientErrors.Add(1)
	case status >= 500:
		m.ServerErrors.Add(1)
	case status >= 400:
		m.ClientErrors.Add(1)
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	ClientErrors     int64     `json:"client_errors"`
	ServerErrors     int64     `json:"server_errors"`
	Conflicts        int64     `json:"conflicts"`
	RequestsInFlight int32     `json:"requests_in_flight"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		ClientErrors:     m.ClientErrors.Load(),
		ServerErrors:     m.ServerErrors.Load(),
		Conflicts:        m.Conflicts.Load(),
		RequestsInFlight: m.RequestsInFlight.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).String(),
	}
}

package monitoring

import "time"

// Tool call outcomes used as the status label.
const (
	ToolSuccess = "success"
	ToolFailure = "failure"
	ToolError   = "error"
)

// ToolDone completes a tool call started with StartTool. kind is the
// failure kind and is only counted when status is ToolFailure.
type ToolDone func(status, kind string)

// StartTool begins timing a tool call. It is safe on a nil *Metrics, in
// which case the returned func does nothing.
func (m *Metrics) StartTool(service, tool string) ToolDone {
	if m == nil {
		return func(string, string) {}
	}
	start := time.Now()
	return func(status, kind string) {
		m.ToolCalls.WithLabelValues(service, tool, status).Inc()
		m.ToolDuration.WithLabelValues(service, tool).Observe(time.Since(start).Seconds())
		if status == ToolFailure {
			if kind == "" {
				kind = "unknown"
			}
			m.ToolErrors.WithLabelValues(service, tool, kind).Inc()
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		m.snapshot.TotalToolCalls++
		if status == ToolFailure {
			m.snapshot.FailuresByKind[kind]++
		}
	}
}

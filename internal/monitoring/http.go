package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// Middleware records every request against its route template, so the
// path label stays bounded no matter what clients send.
func Middleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.observeRequest(requestSample{
			method:   c.Request.Method,
			route:    route,
			status:   c.Writer.Status(),
			elapsed:  time.Since(start),
			received: max(c.Request.ContentLength, 0),
			sent:     int64(max(c.Writer.Size(), 0)),
		})
	}
}

type requestSample struct {
	method   string
	route    string
	status   int
	elapsed  time.Duration
	received int64
	sent     int64
}

func (m *Metrics) observeRequest(s requestSample) {
	m.RequestsTotal.WithLabelValues(s.method, s.route, strconv.Itoa(s.status)).Inc()
	m.RequestDuration.WithLabelValues(s.method, s.route).Observe(s.elapsed.Seconds())
	m.RequestSize.WithLabelValues(s.method, s.route).Observe(float64(s.received))
	m.ResponseSize.WithLabelValues(s.method, s.route).Observe(float64(s.sent))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot.TotalRequests++
	m.snapshot.totalDuration += s.elapsed.Seconds()
	if s.status >= 400 {
		m.snapshot.TotalErrors++
	}
}

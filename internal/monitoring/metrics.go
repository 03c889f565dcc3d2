package monitoring

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics collects process-wide request counters, guarded by one mutex.
type Metrics struct {
	mu             sync.RWMutex
	RequestCount   int64            `json:"request_count"`
	ActiveRequests int64            `json:"active_requests"`
	ErrorCount     int64            `json:"error_count"`
	StatusCodes    map[string]int64 `json:"status_codes"`
	Endpoints      map[string]int64 `json:"endpoint_calls"`
	StartTime      time.Time        `json:"start_time"`
	LastRequest    time.Time        `json:"last_request"`
	totalDuration  time.Duration
}

var globalMetrics = &Metrics{
	StatusCodes: make(map[string]int64),
	Endpoints:   make(map[string]int64),
	StartTime:   time.Now(),
}

// MetricsMiddleware counts every request, its route and its status class.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		globalMetrics.mu.Lock()
		globalMetrics.ActiveRequests++
		globalMetrics.mu.Unlock()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		endpoint := c.Request.Method + " " + c.FullPath()

		globalMetrics.mu.Lock()
		globalMetrics.ActiveRequests--
		globalMetrics.RequestCount++
		globalMetrics.LastRequest = time.Now()
		globalMetrics.totalDuration += duration
		globalMetrics.StatusCodes[fmt.Sprintf("%dxx", status/100)]++
		globalMetrics.Endpoints[endpoint]++
		if status >= http.StatusInternalServerError {
			globalMetrics.ErrorCount++
		}
		globalMetrics.mu.Unlock()
	}
}

// MetricsHandler serves a JSON snapshot of the counters.
func MetricsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		globalMetrics.mu.RLock()
		defer globalMetrics.mu.RUnlock()

		var avgDuration float64
		if globalMetrics.RequestCount > 0 {
			avgDuration = float64(globalMetrics.totalDuration.Milliseconds()) / float64(globalMetrics.RequestCount)
		}

		statusCodes := make(map[string]int64, len(globalMetrics.StatusCodes))
		for k, v := range globalMetrics.StatusCodes {
			statusCodes[k] = v
		}
		endpoints := make(map[string]int64, len(globalMetrics.Endpoints))
		for k, v := range globalMetrics.Endpoints {
			endpoints[k] = v
		}

		c.JSON(http.StatusOK, gin.H{
			"request_count":           globalMetrics.RequestCount,
			"active_requests":         globalMetrics.ActiveRequests,
			"error_count":             globalMetrics.ErrorCount,
			"avg_request_duration_ms": avgDuration,
			"status_codes":            statusCodes,
			"endpoint_calls":          endpoints,
			"uptime_seconds":          time.Since(globalMetrics.StartTime).Seconds(),
			"last_request":            globalMetrics.LastRequest,
		})
	}
}

package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const checkTimeout = 5 * time.Second

// Status represents the health status of a service or dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the health check result for a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthStatus represents the overall health status of the service.
type HealthStatus struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// PingFunc reports whether a dependency is reachable.
type PingFunc func(ctx context.Context) error

// Checker performs health checks on service dependencies.
type Checker struct {
	probes  map[string]PingFunc
	version string
}

// NewChecker creates a health checker without dependencies. Add them with Register.
func NewChecker(version string) *Checker {
	return &Checker{
		probes:  make(map[string]PingFunc),
		version: version,
	}
}

// Register adds a named dependency probe. A nil probe is ignored.
func (c *Checker) Register(name string, probe PingFunc) *Checker {
	if probe != nil {
		c.probes[name] = probe
	}
	return c
}

// RedisProbe pings client. It returns nil for a nil client so optional Redis can be
// registered unconditionally.
func RedisProbe(client *redis.Client) PingFunc {
	if client == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// Check runs every probe concurrently and returns the overall status.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult, len(c.probes)),
	}

	var mu sync.Mutex
	var g errgroup.Group
	for name, probe := range c.probes {
		g.Go(func() error {
			start := time.Now()
			err := probe(checkCtx)

			result := CheckResult{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
			if err != nil {
				result = CheckResult{
					Status: StatusUnhealthy,
					Error:  err.Error(),
				}
			}

			mu.Lock()
			defer mu.Unlock()
			status.Checks[name] = result
			if err != nil {
				status.Status = StatusUnhealthy
			}
			return nil
		})
	}
	_ = g.Wait()

	return status
}

// LiveHandler returns a Gin handler for liveness probes.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler returns a Gin handler for readiness probes.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}

package health

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

const pingTimeout = 3 * time.Second

// Check states.
const (
	StateOK       = "ok"
	StateDisabled = "disabled"
	StateError    = "error"
)

// Report is the body of the liveness and readiness endpoints.
type Report struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version,omitempty"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Check is one dependency's answer.
type Check struct {
	State   string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Stats is the body of /health/stats.
type Stats struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	HeapAlloc    uint64 `json:"heap_alloc_bytes"`
	Sys          uint64 `json:"sys_bytes"`
	Uptime       string `json:"uptime"`
	Submissions  *int   `json:"submissions,omitempty"`
}

// Pinger is satisfied by *sqlx.DB; redis goes through PingFunc.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// Counter reports how many submissions are stored.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Handler serves the health endpoints. A nil Pinger is reported as disabled
// and never fails readiness.
type Handler struct {
	version string
	started time.Time
	checks  map[string]Pinger
	counter Counter
}

func NewHandler(version string, checks map[string]Pinger, counter Counter) *Handler {
	return &Handler{version: version, started: time.Now(), checks: checks, counter: counter}
}

// APIHandler answers /api/health for uptime probes that only want a 200.
func APIHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": StateOK})
}

func (h *Handler) report(status string, checks map[string]Check) Report {
	return Report{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Checks:    checks,
	}
}

func (h *Handler) LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.report(StateOK, nil))
}

// ReadinessHandler pings every configured dependency in parallel and answers
// 503 if any of them fails.
func (h *Handler) ReadinessHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]Check, len(h.checks))
	)
	for name, p := range h.checks {
		wg.Add(1)
		go func(name string, p Pinger) {
			defer wg.Done()
			chk := ping(ctx, p)
			mu.Lock()
			checks[name] = chk
			mu.Unlock()
		}(name, p)
	}
	wg.Wait()

	for _, chk := range checks {
		if chk.State == StateError {
			return c.JSON(http.StatusServiceUnavailable, h.report("unhealthy", checks))
		}
	}
	return c.JSON(http.StatusOK, h.report(StateOK, checks))
}

func (h *Handler) StatsHandler(c echo.Context) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	st := Stats{
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		Uptime:       time.Since(h.started).Round(time.Second).String(),
	}
	if h.counter != nil {
		if n, err := h.counter.Count(c.Request().Context()); err == nil {
			st.Submissions = &n
		}
	}
	return c.JSON(http.StatusOK, st)
}

func ping(ctx context.Context, p Pinger) Check {
	if p == nil {
		return Check{State: StateDisabled}
	}
	start := time.Now()
	if err := p.PingContext(ctx); err != nil {
		return Check{State: StateError, Message: err.Error(), Latency: time.Since(start).String()}
	}
	return Check{State: StateOK, Latency: time.Since(start).String()}
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/synchomes/synchomes-api/internal/response"
)

const statusPingTimeout = 2 * time.Second

// SystemHandler serves liveness, runtime status and the unknown-route reply.
type SystemHandler struct {
	pool      *pgxpool.Pool
	rdb       *redis.Client
	startTime time.Time
	routes    []string
	log       zerolog.Logger
}

// NewSystemHandler creates a new SystemHandler. pool and rdb may be nil.
func NewSystemHandler(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		pool:      pool,
		rdb:       rdb,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

// SetRoutes records the public route list echoed by NoRoute.
func (h *SystemHandler) SetRoutes(routes []string) {
	h.routes = routes
}

// Health godoc
// GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}

// NoRoute answers unknown paths with 404 and the list of public routes.
func (h *SystemHandler) NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success":         false,
		"code":            response.ErrRouteNotFound,
		"error":           response.GetMessage(response.ErrRouteNotFound),
		"requestId":       response.RequestID(c),
		"availableRoutes": h.routes,
	})
}

type systemStatus struct {
	Uptime     string `json:"uptime"`
	GoVersion  string `json:"goVersion"`
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	NumGC      uint32 `json:"numGc"`

	Database struct {
		Up            bool  `json:"up"`
		TotalConns    int32 `json:"totalConns"`
		IdleConns     int32 `json:"idleConns"`
		AcquiredConns int32 `json:"acquiredConns"`
	} `json:"database"`

	Cache struct {
		Enabled bool `json:"enabled"`
		Up      bool `json:"up"`
	} `json:"cache"`
}

// Status godoc
// GET /api/admin/system
// Returns a runtime snapshot plus database and cache reachability.
func (h *SystemHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), statusPingTimeout)
	defer cancel()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	s := systemStatus{
		Uptime:     formatDuration(time.Since(h.startTime)),
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		NumGC:      ms.NumGC,
	}

	if h.pool != nil {
		stat := h.pool.Stat()
		s.Database.TotalConns = stat.TotalConns()
		s.Database.IdleConns = stat.IdleConns()
		s.Database.AcquiredConns = stat.AcquiredConns()
		if err := h.pool.Ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("Database ping failed")
		} else {
			s.Database.Up = true
		}
	}

	if h.rdb != nil {
		s.Cache.Enabled = true
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.log.Warn().Err(err).Msg("Redis ping failed")
		} else {
			s.Cache.Up = true
		}
	}

	response.Success(c, http.StatusOK, gin.H{"system": s})
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

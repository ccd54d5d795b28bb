package diagnostics

import (
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VijayShankarM/image-metadata-s3-to-dynamoDB/internal/version"
)

// Stats tracks notification handling totals. The counters are updated by
// the workers and read by the healthcheck endpoint.
type Stats struct {
	processed int64
	failed    int64
}

// IncProcessed counts one successfully handled notification
func (s *Stats) IncProcessed() {
	atomic.AddInt64(&s.processed, 1)
}

// IncFailed counts one failed notification
func (s *Stats) IncFailed() {
	atomic.AddInt64(&s.failed, 1)
}

// Processed returns the number of successfully handled notifications
func (s *Stats) Processed() int64 {
	return atomic.LoadInt64(&s.processed)
}

// Failed returns the number of failed notifications
func (s *Stats) Failed() int64 {
	return atomic.LoadInt64(&s.failed)
}

// Handler serves the service diagnostics endpoints
type Handler struct {
	stats   *Stats
	started time.Time
}

// NewHandler creates a diagnostics handler reporting the supplied stats
func NewHandler(stats *Stats) *Handler {

	return &Handler{stats: stats, started: time.Now()}
}

// RegisterRoutes attaches the diagnostics endpoints to the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {

	router.GET("/version", h.version)
	router.GET("/healthcheck", h.healthcheck)
}

func (h *Handler) version(c *gin.Context) {

	c.JSON(http.StatusOK, gin.H{"build": version.Version()})
}

func (h *Handler) healthcheck(c *gin.Context) {

	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"processed": h.stats.Processed(),
		"failed":    h.stats.Failed(),
		"uptime":    time.Since(h.started).String(),
	})
}

// Start serves the diagnostics endpoints in a background goroutine
func Start(port int, stats *Stats) {

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	NewHandler(stats).RegisterRoutes(router)

	go func() {
		err := router.Run(fmt.Sprintf(":%d", port))
		if err != nil {
			log.Printf("ERROR: diagnostics endpoint (%s)", err.Error())
		}
	}()
}

//
// end of file
//

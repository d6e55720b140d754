// Package metrics provides Prometheus metrics for the content API.
package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "portfolio_content"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Content loader metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Content cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Number of documents held in the content cache",
		},
	)

	LoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "failures_total",
			Help:      "Content documents that could not be loaded, by reason",
		},
		[]string{"reason"},
	)

	// Sync metrics
	SyncDocuments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "documents_total",
			Help:      "Documents processed by sync jobs, by kind and result",
		},
		[]string{"kind", "result"},
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Sync job duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Load failure reasons
const (
	ReasonNotFound  = "not_found"
	ReasonMalformed = "malformed"
	ReasonInvalid   = "invalid_path"
	ReasonRead      = "read_error"
)

// ObserveSync records metrics when a sync job completes
func ObserveSync(durationSeconds float64) {
	SyncDuration.Observe(durationSeconds)
}

// ObserveSyncDocument counts one document handled by a sync job
func ObserveSyncDocument(kind, result string) {
	SyncDocuments.WithLabelValues(kind, result).Inc()
}

// StatsProvider is satisfied by *sql.DB and wrappers embedding it
type StatsProvider interface {
	Stats() sql.DBStats
}

// PoolStatsCollector periodically publishes connection pool stats
type PoolStatsCollector struct {
	provider StatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a collector for the given pool
func NewPoolStatsCollector(provider StatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stats()
	DBConnectionPoolSize.WithLabelValues("open").Set(float64(stats.OpenConnections))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.Idle))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.InUse))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Close closes every pooled connection. Safe to call more than once.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	db.Pool = nil
}

// PoolStats is a point-in-time snapshot of the connection pool.
type PoolStats struct {
	TotalConns           int32         `json:"total_connections"`
	IdleConns            int32         `json:"idle_connections"`
	AcquiredConns        int32         `json:"acquired_connections"`
	MaxConns             int32         `json:"max_connections"`
	AcquireCount         int64         `json:"acquire_count"`
	CanceledAcquireCount int64         `json:"canceled_acquire_count"`
	AcquireDuration      time.Duration `json:"-"`
}

// AvgAcquireDuration is the mean time spent waiting for a connection.
func (s *PoolStats) AvgAcquireDuration() time.Duration {
	if s.AcquireCount == 0 {
		return 0
	}
	return s.AcquireDuration / time.Duration(s.AcquireCount)
}

func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:           raw.TotalConns(),
		IdleConns:            raw.IdleConns(),
		AcquiredConns:        raw.AcquiredConns(),
		MaxConns:             raw.MaxConns(),
		AcquireCount:         raw.AcquireCount(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
	}, nil
}

// MonitorPoolHealth logs pool pressure every interval until ctx is done.
// Run it in its own goroutine.
func (db *PostgresDB) MonitorPoolHealth(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats, err := db.Stats()
			if err != nil {
				log.Warn().Err(err).Msg("pool monitor: failed to read stats")
				continue
			}

			if stats.MaxConns > 0 {
				utilization := float64(stats.AcquiredConns) / float64(stats.MaxConns) * 100
				if utilization > 80 {
					log.Warn().
						Float64("utilization_pct", utilization).
						Int32("acquired", stats.AcquiredConns).
						Int32("max", stats.MaxConns).
						Msg("pool monitor: high pool utilization")
				}
			}

			if avg := stats.AvgAcquireDuration(); avg > 100*time.Millisecond {
				log.Warn().Dur("avg_acquire", avg).Msg("pool monitor: high acquire latency")
			}

		case <-ctx.Done():
			log.Debug().Msg("pool monitor stopped")
			return
		}
	}
}

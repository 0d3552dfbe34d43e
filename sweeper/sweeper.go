// Package sweeper auto-receives shipped orders: once an order has sat in
// SHIPPED past the dwell time it is transitioned to RECEIVED.
package sweeper

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Mercurial-spe/shop/models"
)

const (
	DefaultInterval = 60 * time.Second
	DefaultDwell    = 10 * time.Minute
)

type Sweeper struct {
	db       *gorm.DB
	logger   zerolog.Logger
	interval time.Duration
	dwell    time.Duration

	mu   sync.Mutex // single-flights overlapping passes in-process
	stop chan struct{}
	done chan struct{}
}

func New(db *gorm.DB, logger zerolog.Logger) *Sweeper {
	return &Sweeper{
		db:       db,
		logger:   logger,
		interval: DefaultInterval,
		dwell:    DefaultDwell,
	}
}

// NewWithTimings is for tests and deployments that tune the schedule.
func NewWithTimings(db *gorm.DB, logger zerolog.Logger, interval, dwell time.Duration) *Sweeper {
	s := New(db, logger)
	s.interval = interval
	s.dwell = dwell
	return s
}

// Start launches the periodic sweep. Calling Start twice is a bug.
func (s *Sweeper) Start() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run()
}

// Stop halts the schedule and waits for an in-flight pass to finish.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Sweep(); err != nil {
				// A failed pass is retried on the next tick; atomicity of
				// the transition comes from the single UPDATE, not from
				// error handling here.
				s.logger.Error().Err(err).Msg("order sweep failed")
			}
		case <-s.stop:
			return
		}
	}
}

// Sweep runs one pass: every order still SHIPPED whose shippedAt is older
// than the dwell time becomes RECEIVED. The status predicate makes the pass
// idempotent under overlapping runs across processes; the mutex keeps two
// in-process passes from stacking up.
func (s *Sweeper) Sweep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-s.dwell)

	res := s.db.Model(&models.Order{}).
		Where("status = ? AND shipped_at <= ?", models.OrderStatusShipped, cutoff).
		Updates(map[string]interface{}{
			"status":      models.OrderStatusReceived,
			"received_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		s.logger.Info().Int64("orders", res.RowsAffected).Msg("auto-received shipped orders")
	}
	return nil
}

// Package scheduler runs the periodic year-of-study promotion sweep.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper is the promotion operation the scheduler drives.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Scheduler invokes the sweep once at startup and then on a fixed interval.
// It shares the record store with concurrent request handlers; conflicting
// writes are last-write-wins.
type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	logger   zerolog.Logger
	stop     chan struct{}
	done     chan struct{}
}

// New creates a scheduler. Start must be called to begin sweeping.
func New(sweeper Sweeper, interval time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop in its own goroutine.
func (s *Scheduler) Start() {
	s.logger.Info().Dur("interval", s.interval).Msg("Promotion scheduler started")
	go s.run()
}

func (s *Scheduler) run() {
	defer close(s.done)

	// Run once immediately so promotions missed during downtime catch up.
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	promoted, err := s.sweeper.Sweep(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Promotion sweep failed")
		return
	}

	s.logger.Debug().Int("promoted", promoted).Msg("Promotion sweep finished")
}

// Stop halts the loop and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
	s.logger.Info().Msg("Promotion scheduler stopped")
}

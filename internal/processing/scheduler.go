package processing

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// TickFunc is one execution of a poller's periodic task body
type TickFunc func(ctx context.Context) error

// Scheduler owns the two repeating timers, one per poller. The timers are
// fully independent: a slow or failed status tick never delays a pending ban
// tick and vice versa. Within one poller, ticks run sequentially; a tick that
// outlives its interval delays only its own successor. Tick errors are
// logged and swallowed here; recovery is the next tick.
//
// Start must not be called before the chat service has reported ready.
type Scheduler struct {
	statusInterval time.Duration
	banInterval    time.Duration
	statusTick     TickFunc
	banTick        TickFunc

	stop    chan struct{}
	done    sync.WaitGroup
	started bool
}

func NewScheduler(statusInterval, banInterval time.Duration, statusTick, banTick TickFunc) *Scheduler {
	return &Scheduler{
		statusInterval: statusInterval,
		banInterval:    banInterval,
		statusTick:     statusTick,
		banTick:        banTick,
	}
}

// Start launches both poll loops, each running an immediate first tick
func (s *Scheduler) Start(ctx context.Context) {
	if s.started {
		return
	}
	s.started = true
	s.stop = make(chan struct{})

	log.Info().
		Dur("status_interval", s.statusInterval).
		Dur("ban_interval", s.banInterval).
		Msg("Starting pollers")

	s.done.Add(2)
	go s.runLoop(ctx, "status", s.statusInterval, s.statusTick)
	go s.runLoop(ctx, "bans", s.banInterval, s.banTick)
}

// Stop halts both loops and waits for any in-flight tick to finish
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	close(s.stop)
	s.done.Wait()
	s.started = false

	log.Info().Msg("Stopped pollers")
}

func (s *Scheduler) runLoop(ctx context.Context, name string, interval time.Duration, tick TickFunc) {
	defer s.done.Done()

	s.runTick(ctx, name, tick)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runTick(ctx, name, tick)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context, name string, tick TickFunc) {
	start := time.Now()

	if err := tick(ctx); err != nil {
		log.Error().
			Err(err).
			Str("poller", name).
			Msg("Poll tick failed")
		return
	}

	log.Debug().
		Str("poller", name).
		Dur("elapsed", time.Since(start)).
		Msg("Poll tick completed")
}

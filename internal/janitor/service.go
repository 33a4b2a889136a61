// Package janitor runs the periodic in-memory cleanup: idle draft sessions
// and expired admin sessions.
package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Pruner drops entries older than their TTL and reports how many went.
type Pruner interface {
	PruneExpired(now time.Time) int
}

type Service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

type DefaultService struct {
	interval time.Duration
	pruners  map[string]Pruner
	wg       *sync.WaitGroup
}

func NewDefaultService(interval time.Duration, pruners map[string]Pruner) Service {
	return &DefaultService{
		interval: interval,
		pruners:  pruners,
		wg:       &sync.WaitGroup{},
	}
}

func (d *DefaultService) Start(ctx context.Context) {
	d.startSweepLoop(ctx)
	slog.Info("Started janitor service", "interval", d.interval)
}

func (d *DefaultService) Stop(ctx context.Context) error {
	stop := make(chan struct{})
	go func() {
		d.wg.Wait()
		stop <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-stop:
		return nil
	}
}

func (d *DefaultService) startSweepLoop(ctx context.Context) {
	ticker := time.Tick(d.interval)

	d.wg.Add(1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				d.wg.Done()
				return
			case <-ticker:
				d.sweep()
			}
		}
	}()
}

func (d *DefaultService) sweep() {
	now := time.Now()
	for name, pruner := range d.pruners {
		if pruned := pruner.PruneExpired(now); pruned > 0 {
			slog.Info("Pruned expired entries", "store", name, "count", pruned)
		}
	}
}

package host

import (
	"context"
	"sync"
	"time"
)

// pacer spaces out successive tab opens so the browser is not flooded.
type pacer struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newPacer(interval time.Duration) *pacer {
	if interval <= 0 {
		return &pacer{}
	}
	return &pacer{interval: interval}
}

// wait blocks until the next slot is free or ctx is done.
func (p *pacer) wait(ctx context.Context) error {
	if p == nil || p.interval <= 0 {
		return nil
	}
	p.mu.Lock()
	now := time.Now()
	slot := p.next
	if slot.Before(now) {
		slot = now
	}
	p.next = slot.Add(p.interval)
	p.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

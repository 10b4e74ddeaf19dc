package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/polyglot-popup/internal/logging"
	"github.com/atomicstack/polyglot-popup/internal/logging/events"
)

// JobKind identifies the fire-and-forget request a dispatcher ran.
type JobKind int

const (
	JobSaveSelection JobKind = iota
	JobOpenTab
)

func (k JobKind) String() string {
	switch k {
	case JobSaveSelection:
		return "save-selection"
	case JobOpenTab:
		return "open-tab"
	default:
		return fmt.Sprintf("job(%d)", int(k))
	}
}

// Event reports the completion of one dispatched job.
type Event struct {
	Kind   JobKind
	Target string
	Err    error
}

type job struct {
	kind  JobKind
	url   string
	codes []string
}

const (
	defaultJobTimeout = 30 * time.Second
	queueSize         = 64
)

// Dispatcher runs persistence writes and tab opens on a single worker
// goroutine in submission order. Callers never wait for completion; outcomes
// are published on Events.
type Dispatcher struct {
	caps       Capabilities
	pacer      *pacer
	jobTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	jobs    chan job
	events  chan Event
	wg      sync.WaitGroup
}

// NewDispatcher starts the worker. openInterval is the minimum delay between
// two tab opens.
func NewDispatcher(caps Capabilities, openInterval time.Duration) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		caps:       caps,
		pacer:      newPacer(openInterval),
		jobTimeout: defaultJobTimeout,
		ctx:        ctx,
		cancel:     cancel,
		jobs:       make(chan job, queueSize),
		events:     make(chan Event, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	go func() {
		d.wg.Wait()
		close(d.events)
	}()
	return d
}

// Capabilities returns the wrapped host collaborators.
func (d *Dispatcher) Capabilities() Capabilities {
	return d.caps
}

// Events returns a channel of job outcomes. It is closed once the worker exits.
func (d *Dispatcher) Events() <-chan Event {
	return d.events
}

// SaveSelection queues a persistence write.
func (d *Dispatcher) SaveSelection(codes []string) error {
	if d.caps.Store == nil {
		return ErrUnsupported
	}
	return d.enqueue(job{kind: JobSaveSelection, codes: append([]string(nil), codes...)})
}

// OpenTab queues a tab creation.
func (d *Dispatcher) OpenTab(url string) error {
	if d.caps.Opener == nil {
		return ErrUnsupported
	}
	return d.enqueue(job{kind: JobOpenTab, url: url})
}

func (d *Dispatcher) enqueue(j job) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return ErrDispatcherStopped
	}
	d.jobs <- j
	return nil
}

// Stop closes the queue. Jobs already queued still run; use Wait to block
// until they have.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.stopped = true
	close(d.jobs)
}

// Wait blocks until the worker has drained the queue and exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	defer d.cancel()
	for j := range d.jobs {
		evt := d.execute(j)
		if evt.Err != nil {
			logging.Error(fmt.Errorf("%s %s: %w", evt.Kind, evt.Target, evt.Err))
			events.Host.Error(evt.Kind.String(), evt.Target, evt.Err)
		}
		select {
		case d.events <- evt:
		default:
		}
	}
}

func (d *Dispatcher) execute(j job) Event {
	ctx, cancel := context.WithTimeout(d.ctx, d.jobTimeout)
	defer cancel()
	switch j.kind {
	case JobSaveSelection:
		events.Host.SaveSelection(j.codes)
		err := d.caps.Store.SaveSelection(ctx, j.codes)
		return Event{Kind: j.kind, Target: fmt.Sprintf("%d codes", len(j.codes)), Err: err}
	case JobOpenTab:
		if err := d.pacer.wait(ctx); err != nil {
			return Event{Kind: j.kind, Target: j.url, Err: err}
		}
		events.Host.OpenTab(j.url)
		return Event{Kind: j.kind, Target: j.url, Err: d.caps.Opener.OpenTab(ctx, j.url)}
	default:
		return Event{Kind: j.kind, Err: fmt.Errorf("unknown job kind %d", j.kind)}
	}
}

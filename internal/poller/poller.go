// Package poller keeps the canonical state fresh against the health API.
//
// The poller owns its lifecycle as an explicit Start/Stop handle rather
// than being tied to any view: the dashboard starts it on entry and stops
// it on teardown, and a stopped poller never writes to the store again.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/logger"
	"github.com/rolandbouwer/appdash/internal/remote"
	"github.com/rolandbouwer/appdash/internal/state"
)

// DefaultInterval is the delay between the end of one refresh cycle and the
// start of the next.
const DefaultInterval = 30 * time.Second

// Source is the subset of the remote client a refresh cycle needs.
type Source interface {
	ListApplications(ctx context.Context) ([]remote.Application, error)
	ListTags(ctx context.Context) ([]remote.Tag, error)
}

// Poller drives repeated refresh cycles against a Source into a Store.
type Poller struct {
	source   Source
	store    *state.Store
	log      logger.Logger
	interval time.Duration

	mu      sync.Mutex
	running bool
	gen     int
	stop    chan struct{}
	kick    chan struct{}
}

// New creates a poller. A zero interval uses DefaultInterval; a nil logger
// discards output.
func New(source Source, store *state.Store, interval time.Duration, log logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Poller{
		source:   source,
		store:    store,
		log:      log,
		interval: interval,
	}
}

// Start begins polling: one cycle immediately, then one per interval
// measured from cycle completion. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return
	}
	p.running = true
	p.gen++
	p.stop = make(chan struct{})
	p.kick = make(chan struct{}, 1)

	go p.run(p.gen, p.stop, p.kick)
}

// Stop cancels the pending cycle timer and invalidates any cycle still in
// flight; the in-flight request pair may run to completion, but its result
// is discarded rather than applied. Stopping an idle poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	p.gen++ // in-flight cycles see a stale generation and drop their result
	close(p.stop)
}

// Refresh requests an immediate out-of-band cycle. No-op when the poller is
// stopped or a kick is already pending.
func (p *Poller) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Running reports whether the poller is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// run is the poll loop: cycle, then wait interval (from completion), a kick,
// or stop. One cycle in flight at a time by construction.
func (p *Poller) run(gen int, stop, kick <-chan struct{}) {
	for {
		p.cycle(gen)

		select {
		case <-stop:
			return
		case <-kick:
		case <-time.After(p.interval):
		}
	}
}

// cycle runs one refresh: both list calls concurrently, state touched only
// once both have settled, and only if the poller generation still matches.
func (p *Poller) cycle(gen int) {
	if !p.current(gen) {
		return
	}
	p.store.BeginRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	type appsResult struct {
		apps []remote.Application
		err  error
	}
	type tagsResult struct {
		tags []remote.Tag
		err  error
	}

	appsCh := make(chan appsResult, 1)
	tagsCh := make(chan tagsResult, 1)

	go func() {
		apps, err := p.source.ListApplications(ctx)
		appsCh <- appsResult{apps, err}
	}()
	go func() {
		tags, err := p.source.ListTags(ctx)
		tagsCh <- tagsResult{tags, err}
	}()

	apps := <-appsCh
	tags := <-tagsCh

	if !p.current(gen) {
		p.log.Debug("discarding refresh cycle resolved after stop")
		return
	}

	if apps.err != nil {
		p.log.Warn("refresh failed: %s", errors.Summary(apps.err))
		p.store.FailRefresh(errors.Summary(apps.err))
		return
	}
	if tags.err != nil {
		p.log.Warn("refresh failed: %s", errors.Summary(tags.err))
		p.store.FailRefresh(errors.Summary(tags.err))
		return
	}

	p.store.ApplySnapshot(apps.apps, tags.tags, time.Now())
	p.log.Debug("refresh cycle complete: %d applications, %d tags", len(apps.apps), len(tags.tags))
}

// current reports whether gen is still the live generation.
func (p *Poller) current(gen int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running && p.gen == gen
}

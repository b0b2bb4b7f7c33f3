package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/spotlight"
)

// State is the phase of the network search state machine.
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateSearching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateSearching:
		return "searching"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome is how the most recent network search ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCompleted:
		return "completed"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Status is a point-in-time view of the orchestrator.
type Status struct {
	State   State
	Query   string
	Outcome Outcome
	Results []spotlight.Result

	// Searches counts network searches that actually started.
	Searches int

	// Version increases with every state change. Change callbacks may
	// arrive out of order; a payload with a lower Version than one
	// already seen is stale.
	Version uint64
}

// Orchestrator debounces query changes into network searches. Every query
// change starts a new generation; only a search whose generation is still
// current when it finishes may commit results.
type Orchestrator struct {
	searcher spotlight.Searcher
	debounce time.Duration
	logger   *slog.Logger
	onChange func(Status)

	mu         sync.Mutex
	generation uint64
	state      State
	query      string
	outcome    Outcome
	results    []spotlight.Result
	searches   int
	version    uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	changed    chan struct{}
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for search failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithOnChange registers a callback invoked after every state change.
// The callback runs outside the orchestrator lock, so concurrent changes
// may deliver their payloads out of order. Use Status.Version to discard
// stale ones.
func WithOnChange(fn func(Status)) Option {
	return func(o *Orchestrator) {
		o.onChange = fn
	}
}

// NewOrchestrator returns an idle orchestrator.
func NewOrchestrator(searcher spotlight.Searcher, debounce time.Duration, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		searcher: searcher,
		debounce: debounce,
		logger:   slog.New(slog.DiscardHandler),
		changed:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Update sets the current query. Any pending timer is stopped and any
// in-flight search is canceled. A blank query returns to idle and clears
// network results; otherwise a new debounce timer is armed. ctx is the
// parent of the search started when the timer fires.
func (o *Orchestrator) Update(ctx context.Context, query string) {
	o.mu.Lock()
	o.generation++
	o.query = query
	o.stopLocked()

	if strings.TrimSpace(query) == "" {
		o.results = nil
		o.state = StateIdle
		status := o.changedLocked()
		o.mu.Unlock()
		o.notify(status)
		return
	}

	gen := o.generation
	o.state = StateDebouncing
	o.timer = time.AfterFunc(o.debounce, func() {
		o.fire(ctx, gen, query)
	})
	status := o.changedLocked()
	o.mu.Unlock()
	o.notify(status)
}

// Close cancels outstanding work and resets to idle with an empty query.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	o.generation++
	o.stopLocked()
	o.query = ""
	o.results = nil
	o.state = StateIdle
	status := o.changedLocked()
	o.mu.Unlock()
	o.notify(status)
}

// Status returns a snapshot of the orchestrator.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.statusLocked()
}

// Results returns the committed network results.
func (o *Orchestrator) Results() []spotlight.Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]spotlight.Result(nil), o.results...)
}

// Wait blocks until the orchestrator is idle or ctx is done.
func (o *Orchestrator) Wait(ctx context.Context) error {
	for {
		o.mu.Lock()
		if o.state == StateIdle {
			o.mu.Unlock()
			return nil
		}
		ch := o.changed
		o.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// fire runs when the debounce timer of generation gen elapses.
func (o *Orchestrator) fire(parent context.Context, gen uint64, query string) {
	o.mu.Lock()
	if gen != o.generation {
		o.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(parent)
	o.cancel = cancel
	o.timer = nil
	o.state = StateSearching
	o.results = nil
	o.searches++
	status := o.changedLocked()
	o.mu.Unlock()
	o.notify(status)

	results, err := o.run(ctx, query)

	o.mu.Lock()
	if gen != o.generation {
		// Superseded: the newer generation already canceled ctx.
		o.mu.Unlock()
		cancel()
		return
	}
	o.cancel = nil
	o.state = StateIdle
	switch {
	case err != nil && ctx.Err() != nil:
		o.outcome = OutcomeCancelled
		o.results = nil
	case err != nil:
		o.outcome = OutcomeFailed
		o.results = nil
		o.logger.Error("network search failed", "query", query, "err", err)
	default:
		o.outcome = OutcomeCompleted
		o.results = results
	}
	status = o.changedLocked()
	o.mu.Unlock()
	cancel()
	o.notify(status)
}

// run calls the searcher, converting a panic into an error.
func (o *Orchestrator) run(ctx context.Context, query string) (results []spotlight.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("search panic: %v", r)
		}
	}()
	results, err = o.searcher.Search(ctx, query)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return results, err
}

// stopLocked stops the debounce timer and cancels the in-flight search.
func (o *Orchestrator) stopLocked() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
		o.outcome = OutcomeCancelled
	}
}

// changedLocked records a state change and returns the new snapshot.
func (o *Orchestrator) changedLocked() Status {
	o.version++
	return o.statusLocked()
}

func (o *Orchestrator) statusLocked() Status {
	return Status{
		State:    o.state,
		Query:    o.query,
		Outcome:  o.outcome,
		Results:  append([]spotlight.Result(nil), o.results...),
		Searches: o.searches,
		Version:  o.version,
	}
}

// notify wakes waiters and runs the change callback.
func (o *Orchestrator) notify(status Status) {
	o.mu.Lock()
	close(o.changed)
	o.changed = make(chan struct{})
	o.mu.Unlock()

	if o.onChange != nil {
		o.onChange(status)
	}
}


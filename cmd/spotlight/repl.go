package main

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/search"
)

const replHelp = `Type a query to search. Commands:
  :enter       activate the first result
  :select N    activate result N
  :close       clear the query
  :reload      reload players, instances and history
  :quit        exit`

// replWaitTimeout bounds how long a query waits for network results.
const replWaitTimeout = 15 * time.Second

// Run executes the repl command.
func (c *ReplCmd) Run(deps *Dependencies) error {
	s, err := newSpotlight(deps, c.Offline, deps.Config.Search.Debounce)
	if err != nil {
		return printError(deps, err)
	}
	defer s.Close()

	var mu sync.Mutex // serializes output between the prompt loop and the watcher
	out := &replSession{deps: deps, spotlight: s, render: newRenderer(deps.Color), mu: &mu}

	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()
	if c.Watch && deps.DB != nil && deps.DB.Path() != ":memory:" {
		if err := out.watch(ctx, deps.DB.Path()); err != nil {
			deps.Logger.Warn("database watch disabled", "err", err)
		}
	}

	fmt.Fprintln(deps.Stdout, replHelp)
	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == ":quit" || line == ":q" {
			return nil
		}
		if err := out.handle(ctx, line); err != nil {
			mu.Lock()
			fmt.Fprintf(deps.Stderr, "error: %s\n", spotlight.ErrorMessage(err))
			mu.Unlock()
		}
	}
	return scanner.Err()
}

type replSession struct {
	deps      *Dependencies
	spotlight *search.Spotlight
	render    *renderer
	mu        *sync.Mutex
}

func (r *replSession) handle(ctx context.Context, line string) error {
	host := &printHost{w: r.deps.Stdout, history: r.deps.History}

	switch {
	case line == "":
		return nil
	case line == ":enter":
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.spotlight.SelectFirst(ctx, host)
	case strings.HasPrefix(line, ":select"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, ":select")))
		if err != nil || n < 1 {
			return spotlight.Errorf(spotlight.EINVALID, "usage: :select N")
		}
		ordered := spotlight.FlattenGroups(r.spotlight.Groups())
		if n > len(ordered) {
			return spotlight.Errorf(spotlight.EINVALID, "no result at position %d", n)
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.spotlight.Select(ctx, host, ordered[n-1])
	case line == ":close":
		r.spotlight.Close()
		return nil
	case line == ":reload":
		return r.reload(ctx)
	case strings.HasPrefix(line, ":"):
		return spotlight.Errorf(spotlight.EINVALID, "unknown command %q", line)
	}

	r.spotlight.SetQuery(ctx, line)
	r.print()

	waitCtx, cancel := context.WithTimeout(ctx, replWaitTimeout)
	defer cancel()
	if err := r.spotlight.Wait(waitCtx); err != nil {
		return nil
	}
	if r.spotlight.Query() == line && hasNetworkResults(r.spotlight.Results()) {
		r.print()
	}
	return nil
}

func (r *replSession) print() {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := r.spotlight.Results()
	if len(results) == 0 {
		fmt.Fprintln(r.deps.Stdout, "No results.")
		return
	}
	r.render.Render(r.deps.Stdout, spotlight.GroupResults(results), r.deps.Config.ShowTranslation())
	fmt.Fprintln(r.deps.Stdout)
}

func (r *replSession) reload(ctx context.Context) error {
	local, err := search.LoadSnapshot(ctx, r.deps.Players, r.deps.Instances, r.deps.History)
	if err != nil {
		return err
	}
	r.spotlight.SetLocalState(local)
	r.deps.Logger.Debug("local state reloaded")
	return nil
}

// watch reloads local state whenever the database or its WAL changes.
// Bursts of events within reloadDelay trigger a single reload.
func (r *replSession) watch(ctx context.Context, dbPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(dbPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(dbPath), err)
	}

	base := filepath.Base(dbPath)
	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.HasPrefix(filepath.Base(event.Name), base) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDelay, func() {
					if err := r.reload(ctx); err != nil && ctx.Err() == nil {
						r.deps.Logger.Warn("reload local state", "err", err)
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.deps.Logger.Warn("database watch", "err", err)
			}
		}
	}()
	return nil
}

const reloadDelay = 200 * time.Millisecond

func hasNetworkResults(results []spotlight.Result) bool {
	for _, r := range results {
		if _, ok := r.(spotlight.ResourceResult); ok {
			return true
		}
	}
	return false
}

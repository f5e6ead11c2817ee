package internal

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/petermattis/goid"
)

// frame is one entry on a goroutine's tracking stack: the Computed currently
// evaluating, and the dependencies it has accrued so far during this
// evaluation.
type frame struct {
	node *Computed
	deps []depEdge
}

// depEdge records an observable a Computed read during its last successful
// evaluation, along with the observable's version as of that read — the
// last_seen_dep_version of §4.4, used by the stale-read fast path.
type depEdge struct {
	obs             Observable
	lastSeenVersion uint64
}

type goroutineTracker struct {
	stack    []*frame
	lastUsed int64 // unix nanoseconds, updated on every currentTracker() call
}

var trackers sync.Map // goroutine id (int64) -> *goroutineTracker

// trackerIdleTimeout is how long a goroutine's tracking entry survives
// without being touched before the janitor reclaims it.
const trackerIdleTimeout = 5 * time.Minute

var startJanitor = sync.OnceFunc(func() {
	go func() {
		ticker := time.NewTicker(trackerIdleTimeout)
		defer ticker.Stop()
		for range ticker.C {
			sweepIdleTrackers()
		}
	}()
})

// sweepIdleTrackers evicts entries for goroutines that have gone quiet for
// trackerIdleTimeout and are not mid-evaluation. There is no hook into
// goroutine exit in Go, so without this a long-lived worker pool that
// dispatches many short-lived goroutines against the graph would otherwise
// accumulate one goroutineTracker per goroutine id for the life of the
// process.
func sweepIdleTrackers() {
	cutoff := time.Now().Add(-trackerIdleTimeout).UnixNano()
	trackers.Range(func(key, value any) bool {
		t := value.(*goroutineTracker)
		if len(t.stack) == 0 && atomic.LoadInt64(&t.lastUsed) < cutoff {
			trackers.Delete(key)
		}
		return true
	})
}

// currentTracker returns the tracking stack for the calling goroutine,
// creating it on first use. Keying the stack by goroutine id (rather than a
// single package-level stack) is what lets independent goroutines each
// drive their own Computed evaluations without corrupting one another's
// tracking state; it does not make a single node safe for concurrent
// mutation from two goroutines at once (§5).
func currentTracker() *goroutineTracker {
	startJanitor()

	gid := goid.Get()
	t, ok := trackers.Load(gid)
	if !ok {
		t, _ = trackers.LoadOrStore(gid, &goroutineTracker{})
	}
	tracker := t.(*goroutineTracker)
	atomic.StoreInt64(&tracker.lastUsed, time.Now().UnixNano())
	return tracker
}

// top returns the Computed currently evaluating on this goroutine, or nil if
// none is.
func top() *Computed {
	t := currentTracker()
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1].node
}

// push starts tracking a new evaluation frame for c.
func push(c *Computed) {
	t := currentTracker()
	t.stack = append(t.stack, &frame{node: c})
}

// pop ends the innermost evaluation frame and returns the dependencies it
// accrued.
func pop() []depEdge {
	t := currentTracker()
	n := len(t.stack)
	f := t.stack[n-1]
	t.stack[n-1] = nil // the backing array must not keep f.node reachable
	t.stack = t.stack[:n-1]
	return f.deps
}

// trackRead records that the currently-evaluating Computed (if any) read
// obs, so obs becomes one of its dependencies once evaluation completes.
func trackRead(obs Observable) {
	t := currentTracker()
	if len(t.stack) == 0 {
		return
	}
	f := t.stack[len(t.stack)-1]
	for _, e := range f.deps {
		if e.obs == obs {
			return
		}
	}
	f.deps = append(f.deps, depEdge{obs: obs})
}

package internal

import "fmt"

// State is where a Computed sits in the Stale/Fresh/Evaluating state
// machine of §4.4.
type State int

const (
	Stale State = iota
	Evaluating
	Fresh
)

func (s State) String() string {
	switch s {
	case Stale:
		return "stale"
	case Evaluating:
		return "evaluating"
	case Fresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// Computed is the any-typed core of a lazy, auto-tracking derived value.
type Computed struct {
	baseNode

	thunk func() (any, error)

	state  State
	cached any
	hasCached bool

	// invalidated is set by Invalidate and makes the next evaluation run the
	// thunk even when every dependency's version still matches.
	invalidated bool

	// deps is the ordered set of observables read during the last
	// successful evaluation, each paired with the version it had as of
	// that read (the fast-path check in Read).
	deps []depEdge
}

// NewComputed constructs a lazy Computed: no thunk call, no dependencies,
// state Stale (§4.4).
func NewComputed(thunk func() (any, error)) *Computed {
	c := &Computed{
		baseNode: baseNode{kind: "computed"},
		thunk:    thunk,
		state:    Stale,
	}
	fireOnCreated(c)
	return c
}

// Read returns the current value, recomputing first iff state is Stale. If
// a Computed is currently evaluating on this goroutine, this Computed is
// registered as one of its dependencies.
func (c *Computed) Read() (any, error) {
	if c.state == Evaluating {
		return nil, &CyclicEvaluationError{Node: c.name}
	}

	if c.state == Stale {
		if err := c.evaluate(); err != nil {
			return nil, err
		}
	}

	trackRead(c)
	fireOnRead(c)
	return c.cached, nil
}

// Invalidate forces state to Stale without bumping version or notifying —
// propagation waits for the next read (§4.4, §9 open-question decision).
// That read skips the version fast path and always runs the thunk.
func (c *Computed) Invalidate() {
	if c.state == Evaluating {
		return
	}
	c.state = Stale
	c.invalidated = true
}

// evaluate runs the evaluation procedure of §4.4: fast-path check, tracked
// thunk execution, dependency diffing, change-detection, and (on change)
// notification.
func (c *Computed) evaluate() error {
	if c.hasCached && !c.invalidated && c.fastPathFresh() {
		c.state = Fresh
		return nil
	}

	c.state = Evaluating
	push(c)

	result, thunkErr := c.callThunk()

	newDeps := pop()

	if thunkErr != nil {
		c.state = Stale
		return &ThunkError{Node: c.name, Err: thunkErr}
	}
	c.invalidated = false

	c.relink(newDeps)

	changed := true
	if c.hasCached {
		var detErr error
		changed, detErr = Changed(c.cached, result)
		if detErr != nil {
			logChangeDetectorFailure(c.name, detErr)
		}
	}

	c.state = Fresh

	if !changed {
		return nil
	}

	c.cached = result
	c.hasCached = true
	c.version++
	fireOnUpdated(c)
	return notify(c)
}

// callThunk runs the thunk with panic recovery, turning a panic into the
// same error-return shape as an explicit thunk failure (§7, case 2).
func (c *Computed) callThunk() (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverAsError(r)
		}
	}()
	return c.thunk()
}

// fastPathFresh reports whether every recorded dependency's version still
// matches what was seen at the last successful evaluation — if so, nothing
// observable has actually changed and the thunk can be skipped entirely
// (§4.4 "Dependency version tracking / fast path").
//
// A Computed dependency that is Stale has not necessarily bumped its
// version yet — onDependencyChanged only flips Fresh to Stale and forwards
// the stale wave, it never recomputes — so its Version() can still read the
// value from before whatever upstream write staled it. Trusting that stale
// version would report "fresh" forever once a chain of Computeds goes
// stale without being read. Any non-Fresh Computed dependency is therefore
// an automatic miss; only Signals and already-Fresh Computeds are safe to
// check by version alone.
func (c *Computed) fastPathFresh() bool {
	if len(c.deps) == 0 {
		return false
	}
	for _, e := range c.deps {
		if dep, ok := e.obs.(*Computed); ok && dep.state != Fresh {
			return false
		}
		if e.obs.Version() != e.lastSeenVersion {
			return false
		}
	}
	return true
}

// relink diffs the previous dependency set against newDeps, subscribing to
// anything new and unsubscribing from anything no longer read, then records
// each surviving/newly-added dependency's current version (§4.4, step 5).
func (c *Computed) relink(newDeps []depEdge) {
	newSet := make(map[Observable]bool, len(newDeps))
	for _, e := range newDeps {
		newSet[e.obs] = true
	}

	oldSet := make(map[Observable]bool, len(c.deps))
	for _, e := range c.deps {
		oldSet[e.obs] = true
	}

	for _, e := range c.deps {
		if !newSet[e.obs] {
			e.obs.removeSubscriber(c)
		}
	}
	for _, e := range newDeps {
		if !oldSet[e.obs] {
			e.obs.addSubscriber(c)
		}
	}

	for i := range newDeps {
		newDeps[i].lastSeenVersion = newDeps[i].obs.Version()
	}
	c.deps = newDeps
}

// onDependencyChanged is the Observer half of Computed: a Fresh node
// transitions to Stale (no recomputation) and propagates the stale wave to
// its own subscribers; a node that is already Stale or Evaluating has
// nothing further to do (§4.4 "Staleness propagation").
func (c *Computed) onDependencyChanged(_ Observable) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverAsError(r)
		}
	}()

	if c.state != Fresh {
		return nil
	}
	c.state = Stale
	return notify(c)
}

func (c *Computed) addDependency(obs Observable) {
	for _, e := range c.deps {
		if e.obs == obs {
			return
		}
	}
	c.deps = append(c.deps, depEdge{obs: obs, lastSeenVersion: obs.Version()})
}

func (c *Computed) removeDependency(obs Observable) {
	for i, e := range c.deps {
		if e.obs == obs {
			c.deps = append(c.deps[:i], c.deps[i+1:]...)
			return
		}
	}
}

// Dependencies returns the observables this Computed is currently
// subscribed to, in insertion order.
func (c *Computed) Dependencies() []Observable {
	out := make([]Observable, len(c.deps))
	for i, e := range c.deps {
		out[i] = e.obs
	}
	return out
}

// State reports the Computed's current position in the state machine.
func (c *Computed) State() State { return c.state }

func (c *Computed) SetName(name string) { c.setName(name) }

var _ fmt.Stringer = Stale

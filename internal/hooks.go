package internal

import "sync"

// HookFunc is the shape of every lifecycle callback in the plugin-hook
// subsystem (§6). It receives the node the lifecycle event concerns.
type HookFunc func(Node)

// hookRegistry is a plain callback-slice registry, the Go-idiomatic
// replacement for the distilled spec's pluggy-style hookspec/plugin-manager:
// there are exactly four hook points, so a manager abstraction would be
// ceremony without payoff. Concrete consumers (sighooks, sigprom) register
// against this registry; the engine itself never depends on them.
type hookRegistry struct {
	mu      sync.Mutex
	created []HookFunc
	named   []HookFunc
	read    []HookFunc
	updated []HookFunc
}

var hooks = &hookRegistry{}

// OnCreated registers fn to run whenever a new Signal or Computed is
// constructed. It returns an unregister function.
func OnCreated(fn HookFunc) func() { return register(&hooks.created, fn) }

// OnNamed registers fn to run whenever a node is given a display name
// (SetName).
func OnNamed(fn HookFunc) func() { return register(&hooks.named, fn) }

// OnRead registers fn to run whenever a node's value is read.
func OnRead(fn HookFunc) func() { return register(&hooks.read, fn) }

// OnUpdated registers fn to run whenever a node's cached value actually
// changes.
func OnUpdated(fn HookFunc) func() { return register(&hooks.updated, fn) }

func register(slot *[]HookFunc, fn HookFunc) func() {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	*slot = append(*slot, fn)
	idx := len(*slot) - 1
	return func() {
		hooks.mu.Lock()
		defer hooks.mu.Unlock()
		if idx < len(*slot) {
			(*slot)[idx] = nil
		}
	}
}

func fire(slot []HookFunc, n Node) {
	for _, fn := range slot {
		if fn != nil {
			fn(n)
		}
	}
}

func fireOnCreated(n Node) {
	hooks.mu.Lock()
	fns := append([]HookFunc(nil), hooks.created...)
	hooks.mu.Unlock()
	fire(fns, n)
}

func fireOnNamed(n Node) {
	hooks.mu.Lock()
	fns := append([]HookFunc(nil), hooks.named...)
	hooks.mu.Unlock()
	fire(fns, n)
}

func fireOnRead(n Node) {
	hooks.mu.Lock()
	fns := append([]HookFunc(nil), hooks.read...)
	hooks.mu.Unlock()
	fire(fns, n)
}

func fireOnUpdated(n Node) {
	hooks.mu.Lock()
	fns := append([]HookFunc(nil), hooks.updated...)
	hooks.mu.Unlock()
	fire(fns, n)
}

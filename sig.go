// Package sig provides a reactive graph of mutable signals and lazily
// recomputed derived expressions. A Signal is a mutable cell; a Computed is
// a pure function of other reactive nodes, evaluated on demand and cached
// until one of its dependencies actually changes.
package sig

import "github.com/signified-go/signified/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Reactive is the capability every node in the graph — Signal or Computed —
// satisfies: it exposes its current value through Unref and can be
// subscribed to or named. Sugar layers built on top of the core (sigops,
// sighooks, sigprom) depend only on this interface and the package-level
// functions below, never on the internal engine directly.
type Reactive interface {
	Name() string
	node() internal.Observable
}

// Signal is a mutable reactive cell.
type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{signal: internal.NewSignal(initial)}
}

// Read returns the signal's current value, tracking the dependency if a
// Computed is evaluating on this goroutine.
func (s *Signal[T]) Read() T { return as[T](s.signal.Read()) }

// Write sets a new value. If the change-detector considers the new value
// equal to the current one, this is a complete no-op; otherwise the
// signal's version advances and subscribers are notified synchronously
// before Write returns.
func (s *Signal[T]) Write(v T) error { return s.signal.Write(v) }

// At immediately writes tmp, returning a function that restores the value
// observed at the moment At was called. Call the returned function via
// defer to get scoped-override semantics; both the enter and the exit are
// ordinary writes, so dependents observe two notifications.
func (s *Signal[T]) At(tmp T) (restore func() error) { return s.signal.At(tmp) }

// Attr reads field name of the wrapped struct value via reflection,
// tracking the signal itself (not the field) as the dependency.
func (s *Signal[T]) Attr(name string) (any, error) { return s.signal.Attr(name) }

// AttrSet writes field name of the wrapped struct value, then
// unconditionally notifies subscribers.
func (s *Signal[T]) AttrSet(name string, v any) error { return s.signal.AttrSet(name, v) }

// Item reads a map/slice element of the wrapped value, tracking the signal
// itself as the dependency.
func (s *Signal[T]) Item(key any) (any, error) { return s.signal.Item(key) }

// ItemSet writes a map/slice element of the wrapped value, then
// unconditionally notifies subscribers.
func (s *Signal[T]) ItemSet(key, v any) error { return s.signal.ItemSet(key, v) }

// Version returns the signal's monotonic version counter.
func (s *Signal[T]) Version() uint64 { return s.signal.Version() }

// Name returns the signal's display name, or "" if unset.
func (s *Signal[T]) Name() string { return s.signal.Name() }

// SetName attaches a display name; it has no effect on propagation.
func (s *Signal[T]) SetName(name string) { s.signal.SetName(name) }

func (s *Signal[T]) node() internal.Observable { return s.signal }
func (s *Signal[T]) readAny() any              { return s.signal.Read() }

// Computed is a lazily-evaluated derived reactive expression.
type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed builds a Computed from thunk. Construction is lazy: thunk is
// not called until the first Read.
func NewComputed[T any](thunk func() T) *Computed[T] {
	c := &Computed[T]{}
	c.computed = internal.NewComputed(func() (any, error) {
		return thunk(), nil
	})
	return c
}

// NewComputedErr is like NewComputed, but for a thunk that can itself fail;
// a returned error is surfaced to the reader as a *ThunkError (§7, case 2),
// the same as a panicking thunk.
func NewComputedErr[T any](thunk func() (T, error)) *Computed[T] {
	c := &Computed[T]{}
	c.computed = internal.NewComputed(func() (any, error) {
		return thunk()
	})
	return c
}

// Read returns the current value, recomputing first if the Computed is
// stale. It panics with the underlying error (CyclicEvaluationError or
// ThunkError) if evaluation fails; use TryRead to handle the error instead.
func (c *Computed[T]) Read() T {
	v, err := c.computed.Read()
	if err != nil {
		panic(err)
	}
	return as[T](v)
}

// TryRead is Read without the panic: it surfaces evaluation failures
// directly.
func (c *Computed[T]) TryRead() (T, error) {
	v, err := c.computed.Read()
	if err != nil {
		var zero T
		return zero, err
	}
	return as[T](v), nil
}

// Invalidate forces the Computed to Stale. Use this when a dependency was
// rewired through a channel the engine cannot observe — e.g. a plain struct
// field was reseated to point at a different Signal.
func (c *Computed[T]) Invalidate() { c.computed.Invalidate() }

// State reports the Computed's position in the Stale/Evaluating/Fresh state
// machine.
func (c *Computed[T]) State() internal.State { return c.computed.State() }

// Version returns the Computed's monotonic version counter.
func (c *Computed[T]) Version() uint64 { return c.computed.Version() }

// Name returns the Computed's display name, or "" if unset.
func (c *Computed[T]) Name() string { return c.computed.Name() }

// SetName attaches a display name; it has no effect on propagation.
func (c *Computed[T]) SetName(name string) { c.computed.SetName(name) }

func (c *Computed[T]) node() internal.Observable { return c.computed }

func (c *Computed[T]) readAny() any {
	v, err := c.computed.Read()
	if err != nil {
		panic(err)
	}
	return v
}

// AsSignal returns x if it is already a *Signal[T]. A *Computed[T] is read
// once and its current value becomes the initial value of a new Signal; that
// Signal does not follow later changes of the Computed. Any non-reactive x
// is wrapped in a fresh Signal.
func AsSignal[T any](x any) *Signal[T] {
	switch v := x.(type) {
	case *Signal[T]:
		return v
	case *Computed[T]:
		return NewSignal(v.Read())
	default:
		return NewSignal(x.(T))
	}
}

// Subscribe links observer to observable directly, bypassing automatic
// dependency tracking. Idempotent.
func Subscribe[T any](observable Reactive, observer *Computed[T]) {
	internal.Subscribe(observable.node(), observer.computed)
}

// Unsubscribe is the symmetric removal. Tolerant of already-removed pairs.
func Unsubscribe[T any](observable Reactive, observer *Computed[T]) {
	internal.Unsubscribe(observable.node(), observer.computed)
}

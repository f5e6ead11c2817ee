package internal

import "weak"

// Node is the capability every reactive graph node exposes regardless of
// whether it is a source (Signal) or derived (Computed) node.
type Node interface {
	Name() string
	Kind() string
}

// Observable is a node others can subscribe to. Both Signal and Computed
// implement it, since every Computed is simultaneously observable and
// observer.
type Observable interface {
	Node
	Version() uint64
	addSubscriber(c *Computed)
	removeSubscriber(c *Computed)
	subscribers() []*Computed
}

// baseNode carries the fields common to every node: a display name, the
// monotonic version counter, and the weakly-held subscriber set. It is
// embedded by value in both Signal and Computed so their methods are
// promoted and each type automatically satisfies Observable.
type baseNode struct {
	kind    string
	name    string
	version uint64
	subs    subscriberSet
}

func (b *baseNode) Name() string { return b.name }
func (b *baseNode) Kind() string { return b.kind }

func (b *baseNode) setName(name string) {
	b.name = name
	fireOnNamed(b)
}

func (b *baseNode) Version() uint64 { return b.version }

func (b *baseNode) addSubscriber(c *Computed)    { b.subs.add(c) }
func (b *baseNode) removeSubscriber(c *Computed) { b.subs.remove(c) }
func (b *baseNode) subscribers() []*Computed     { return b.subs.snapshot() }

// subscriberSet is an insertion-ordered, weakly-held set of *Computed. Dead
// entries (their Computed has been garbage collected) are pruned when the set
// is snapshotted (as notify does), never by a background sweep.
type subscriberSet struct {
	entries []weak.Pointer[Computed]
}

func (s *subscriberSet) add(c *Computed) {
	for _, e := range s.entries {
		if v := e.Value(); v == c {
			return
		}
	}
	s.entries = append(s.entries, weak.Make(c))
}

func (s *subscriberSet) remove(c *Computed) {
	for i, e := range s.entries {
		if v := e.Value(); v == c {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *subscriberSet) contains(c *Computed) bool {
	for _, e := range s.entries {
		if v := e.Value(); v == c {
			return true
		}
	}
	return false
}

// snapshot resolves every live entry, in insertion order, and prunes any
// entry whose Computed has already been collected. The returned slice is a
// copy, safe to iterate even if an observer mutates the set mid-notification
// (e.g. by unsubscribing itself).
func (s *subscriberSet) snapshot() []*Computed {
	live := make([]*Computed, 0, len(s.entries))
	pruned := s.entries[:0]
	for _, e := range s.entries {
		if v := e.Value(); v != nil {
			live = append(live, v)
			pruned = append(pruned, e)
		}
	}
	s.entries = pruned
	return live
}

func (s *subscriberSet) len() int {
	n := 0
	for _, e := range s.entries {
		if e.Value() != nil {
			n++
		}
	}
	return n
}

// notify delivers a change notification to every live subscriber of obs, in
// insertion order, collecting any per-subscriber failure into a composite
// ObserverError rather than aborting the delivery early.
func notify(obs Observable) error {
	subs := obs.subscribers()
	var errs []error
	for _, sub := range subs {
		if err := sub.onDependencyChanged(obs); err != nil {
			errs = append(errs, err)
		}
	}
	return joinObserverErrors(errs)
}

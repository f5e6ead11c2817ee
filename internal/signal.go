package internal

import (
	"fmt"
	"reflect"
)

// Signal is the any-typed core of a mutable reactive cell. The generic
// Signal[T] in the root package is a thin wrapper around this type, the same
// split the teacher repository uses between its internal engine and its
// generic façade.
type Signal struct {
	baseNode
	value any
}

// NewSignal constructs a Signal holding initial, with version 0 and no
// subscribers.
func NewSignal(initial any) *Signal {
	s := &Signal{baseNode: baseNode{kind: "signal"}, value: initial}
	fireOnCreated(s)
	return s
}

// Read returns the stored value, registering this signal as a dependency of
// whatever Computed is currently evaluating on this goroutine, if any.
func (s *Signal) Read() any {
	trackRead(s)
	fireOnRead(s)
	return s.value
}

// Write runs the change-detector against the current value; a verdict of
// "unchanged" is a complete no-op. A verdict of "changed" replaces the
// value, bumps version, and notifies subscribers (§4.3).
func (s *Signal) Write(v any) error {
	changed, detErr := Changed(s.value, v)
	if detErr != nil {
		logChangeDetectorFailure(s.name, detErr)
	}
	if !changed {
		return nil
	}

	s.value = v
	s.version++
	fireOnUpdated(s)
	return notify(s)
}

// Attr reads a field of the wrapped value by name via reflection, also
// registering the signal itself (not the field) as the tracked dependency —
// the wrapper has no cheap way to know which field changed, so any write
// through AttrSet invalidates every reader of any field (§4.3).
func (s *Signal) Attr(name string) (any, error) {
	trackRead(s)
	fireOnRead(s)
	v := reflect.ValueOf(s.value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("sig: Attr(%q): value is not a struct", name)
	}
	f := v.FieldByName(name)
	if !f.IsValid() {
		return nil, fmt.Errorf("sig: Attr(%q): no such field", name)
	}
	return f.Interface(), nil
}

// AttrSet delegates to the wrapped value's field, then unconditionally bumps
// version and notifies — the mutation is assumed to have changed something,
// since the wrapper cannot inspect the old field value cheaply (§4.3).
func (s *Signal) AttrSet(name string, v any) error {
	rv := reflect.ValueOf(s.value)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("sig: AttrSet(%q): value must be a non-nil pointer to struct", name)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("sig: AttrSet(%q): value is not a struct", name)
	}
	f := elem.FieldByName(name)
	if !f.IsValid() || !f.CanSet() {
		return fmt.Errorf("sig: AttrSet(%q): no such settable field", name)
	}
	f.Set(reflect.ValueOf(v))

	s.version++
	fireOnUpdated(s)
	return notify(s)
}

// Item reads a map/slice element, tracking the signal itself as the
// dependency (same rationale as Attr).
func (s *Signal) Item(key any) (any, error) {
	trackRead(s)
	fireOnRead(s)
	v := reflect.ValueOf(s.value)
	switch v.Kind() {
	case reflect.Map:
		item := v.MapIndex(reflect.ValueOf(key))
		if !item.IsValid() {
			return nil, fmt.Errorf("sig: Item: no such key %v", key)
		}
		return item.Interface(), nil
	case reflect.Slice, reflect.Array:
		idx, ok := key.(int)
		if !ok || idx < 0 || idx >= v.Len() {
			return nil, fmt.Errorf("sig: Item: index %v out of range", key)
		}
		return v.Index(idx).Interface(), nil
	default:
		return nil, fmt.Errorf("sig: Item: value is not indexable")
	}
}

// ItemSet delegates to the wrapped map/slice element, then unconditionally
// bumps version and notifies (§4.3).
func (s *Signal) ItemSet(key, v any) error {
	rv := reflect.ValueOf(s.value)
	switch rv.Kind() {
	case reflect.Map:
		rv.SetMapIndex(reflect.ValueOf(key), reflect.ValueOf(v))
	case reflect.Slice, reflect.Array:
		idx, ok := key.(int)
		if !ok || idx < 0 || idx >= rv.Len() {
			return fmt.Errorf("sig: ItemSet: index %v out of range", key)
		}
		if !rv.Index(idx).CanSet() {
			return fmt.Errorf("sig: ItemSet: element not settable")
		}
		rv.Index(idx).Set(reflect.ValueOf(v))
	default:
		return fmt.Errorf("sig: ItemSet: value is not indexable")
	}

	s.version++
	fireOnUpdated(s)
	return notify(s)
}

// At returns a restore function: it writes tmp immediately and, when
// called, writes back the value captured at entry — regardless of any
// writes that happened in between (§4.3, §9 open-question decision). Both
// the enter and the exit go through Write, so dependents observe two
// writes.
func (s *Signal) At(tmp any) (restore func() error) {
	before := s.value
	_ = s.Write(tmp)
	return func() error {
		return s.Write(before)
	}
}

func (s *Signal) SetName(name string) { s.setName(name) }

package internal

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Changed implements the change-detector policy: given the previous and next
// value of an observable, decide whether the difference is worth
// propagating. The bool is the changed/unchanged verdict; the error, when
// non-nil, reports that the equality check itself panicked (a
// ChangeDetectorFailure) — callers treat that case as "changed" regardless
// and are free to log the failure.
func Changed(old, new any) (bool, error) {
	// 1. Identity shortcut.
	if old == nil && new == nil {
		return false, nil
	}
	if sameIdentity(old, new) {
		return false, nil
	}

	// 2. Function values are not comparable in Go, so the shortcut above never
	// matches them: a function value on either side always counts as
	// "changed", even when the same function is written again.
	if isFunc(old) || isFunc(new) {
		return true, nil
	}

	// 3. NaN floating point: both-NaN is a no-op write.
	if bothNaN(old, new) {
		return false, nil
	}

	// 4. Array-like values: element-wise comparison, shape mismatch counts
	// as changed.
	if isArrayLike(old) || isArrayLike(new) {
		return arrayLikeChanged(old, new)
	}

	// 5. Structural equality (Go's ==) for everything else, recovering from
	// the panic == raises on uncomparable values (e.g. a struct holding a
	// slice) by reporting the conservative "changed" verdict.
	return structuralChanged(old, new)
}

func sameIdentity(old, new any) (same bool) {
	ov := reflect.ValueOf(old)
	nv := reflect.ValueOf(new)
	if ov.Kind() != nv.Kind() {
		return false
	}
	switch ov.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan:
		if !ov.IsNil() && !nv.IsNil() && ov.Pointer() == nv.Pointer() &&
			(ov.Kind() != reflect.Slice || ov.Len() == nv.Len()) {
			return true
		}
	}
	// == panics on uncomparable dynamic types (slices, maps, funcs, structs
	// holding them); such values are not identical here and fall through to
	// the later policies.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return old == new
}

func isFunc(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}

func bothNaN(old, new any) bool {
	of, ok1 := asFloat(old)
	nf, ok2 := asFloat(new)
	return ok1 && ok2 && math.IsNaN(of) && math.IsNaN(nf)
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

func isArrayLike(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

func arrayLikeChanged(old, new any) (bool, error) {
	var changed bool
	var failed bool
	func() {
		defer func() {
			if recover() != nil {
				failed = true
			}
		}()
		if !sameShape(old, new) {
			changed = true
			return
		}
		changed = !cmp.Equal(old, new, cmp.Exporter(func(reflect.Type) bool { return true }))
	}()

	if failed {
		return true, errChangeDetectorFailure
	}
	return changed, nil
}

func sameShape(old, new any) bool {
	ov := reflect.ValueOf(old)
	nv := reflect.ValueOf(new)
	if !ov.IsValid() || !nv.IsValid() {
		return ov.IsValid() == nv.IsValid()
	}
	if ov.Kind() != nv.Kind() || ov.Type() != nv.Type() {
		return false
	}
	switch ov.Kind() {
	case reflect.Slice, reflect.Array:
		return ov.Len() == nv.Len()
	case reflect.Map:
		return ov.Len() == nv.Len()
	default:
		return true
	}
}

func structuralChanged(old, new any) (bool, error) {
	var changed bool
	var failed bool
	func() {
		defer func() {
			if recover() != nil {
				failed = true
			}
		}()
		changed = old != new
	}()

	if failed {
		return true, errChangeDetectorFailure
	}
	return changed, nil
}

// Package sigops is the polymorphic arithmetic/comparison/selector sugar
// layer mentioned as an external collaborator in §1 and §9 of the core
// specification. It sits entirely on top of the public contract exposed by
// package sig (Read, Unref, NewComputed) — it never reaches into the
// engine's internals.
//
// Go has no operator overloading, so where the distilled spec's source
// language turns `a + b` into a derived reactive value via `__add__`, this
// package turns it into an explicit function call: sigops.Add(a, b).
package sigops

import "github.com/signified-go/signified"

// Numeric is the set of types the arithmetic helpers below accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// operand is anything sig.Unref knows how to resolve: a *sig.Signal[T], a
// *sig.Computed[T], or a plain value of type T.
type operand = any

func unrefAs[T any](x operand) T {
	v := sig.Unref(x)
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Add returns a Computed that re-evaluates a + b whenever either operand
// changes.
func Add[T Numeric](a, b operand) *sig.Computed[T] {
	return sig.NewComputed(func() T { return unrefAs[T](a) + unrefAs[T](b) })
}

// Sub returns a Computed for a - b.
func Sub[T Numeric](a, b operand) *sig.Computed[T] {
	return sig.NewComputed(func() T { return unrefAs[T](a) - unrefAs[T](b) })
}

// Mul returns a Computed for a * b.
func Mul[T Numeric](a, b operand) *sig.Computed[T] {
	return sig.NewComputed(func() T { return unrefAs[T](a) * unrefAs[T](b) })
}

// Div returns a Computed for a / b.
func Div[T Numeric](a, b operand) *sig.Computed[T] {
	return sig.NewComputed(func() T { return unrefAs[T](a) / unrefAs[T](b) })
}

// Neg returns a Computed for -a.
func Neg[T Numeric](a operand) *sig.Computed[T] {
	return sig.NewComputed(func() T { return -unrefAs[T](a) })
}

// Eq returns a Computed for a == b, for any comparable T.
func Eq[T comparable](a, b operand) *sig.Computed[bool] {
	return sig.NewComputed(func() bool { return unrefAs[T](a) == unrefAs[T](b) })
}

// Lt returns a Computed for a < b.
func Lt[T Numeric](a, b operand) *sig.Computed[bool] {
	return sig.NewComputed(func() bool { return unrefAs[T](a) < unrefAs[T](b) })
}

// Gt returns a Computed for a > b.
func Gt[T Numeric](a, b operand) *sig.Computed[bool] {
	return sig.NewComputed(func() bool { return unrefAs[T](a) > unrefAs[T](b) })
}

// And returns a Computed for a && b, short-circuiting exactly like a plain
// boolean expression would (b is not even unref'd when a is false).
func And(a, b operand) *sig.Computed[bool] {
	return sig.NewComputed(func() bool {
		if !unrefAs[bool](a) {
			return false
		}
		return unrefAs[bool](b)
	})
}

// Or returns a Computed for a || b, short-circuiting like And.
func Or(a, b operand) *sig.Computed[bool] {
	return sig.NewComputed(func() bool {
		if unrefAs[bool](a) {
			return true
		}
		return unrefAs[bool](b)
	})
}

// Not returns a Computed for !a.
func Not(a operand) *sig.Computed[bool] {
	return sig.NewComputed(func() bool { return !unrefAs[bool](a) })
}

// If is the conditional selector: a Computed that tracks cond and exactly
// one of then/els, evaluating to Unref(then) when cond is true and
// Unref(els) otherwise. Because the selection happens inside the thunk,
// only the branch actually taken becomes a tracked dependency on each
// evaluation — matching the core's "dependencies are recomputed from
// scratch each evaluation" rule (§4.4).
func If[T any](cond operand, then, els operand) *sig.Computed[T] {
	return sig.NewComputed(func() T {
		if unrefAs[bool](cond) {
			return unrefAs[T](then)
		}
		return unrefAs[T](els)
	})
}

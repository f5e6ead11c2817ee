package internal

import (
	"errors"
	"fmt"
)

// ErrCyclicEvaluation is the sentinel a caller can match with errors.Is when
// a thunk tries to read a Computed that is already Evaluating (§7, case 1).
var ErrCyclicEvaluation = errors.New("sig: cyclic evaluation")

// errChangeDetectorFailure never leaves the internal package: it is the
// signal that an equality check panicked (§7, case 4). Callers of Changed
// treat it as "changed" and may log it; it is never surfaced to a reader or
// writer.
var errChangeDetectorFailure = errors.New("sig: change detector panicked")

// CyclicEvaluationError names the Computed whose re-entrant read was
// refused.
type CyclicEvaluationError struct {
	Node string
}

func (e *CyclicEvaluationError) Error() string {
	if e.Node == "" {
		return "sig: cyclic evaluation detected"
	}
	return fmt.Sprintf("sig: cyclic evaluation detected on %q", e.Node)
}

func (e *CyclicEvaluationError) Unwrap() error { return ErrCyclicEvaluation }

// ThunkError wraps a panic or error raised by a Computed's thunk (§7, case
// 2). The offending Computed reverts to Stale with its previous cached
// value intact.
type ThunkError struct {
	Node string
	Err  error
}

func (e *ThunkError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("sig: thunk failed: %v", e.Err)
	}
	return fmt.Sprintf("sig: thunk for %q failed: %v", e.Node, e.Err)
}

func (e *ThunkError) Unwrap() error { return e.Err }

// ObserverError is the composite surfaced to a writer when one or more
// subscribers panicked while handling a change notification (§7, case 3).
// The write itself still took effect.
type ObserverError struct {
	Errs []error
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("sig: %d observer(s) failed: %v", len(e.Errs), errors.Join(e.Errs...))
}

func (e *ObserverError) Unwrap() []error { return e.Errs }

func joinObserverErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ObserverError{Errs: errs}
}

// recoverAsError turns a recovered panic value into an error, preserving an
// existing error value as-is (so `panic(err)` round-trips cleanly).
func recoverAsError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

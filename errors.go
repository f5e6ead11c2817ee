package sig

import "github.com/signified-go/signified/internal"

// ErrCyclicEvaluation is the sentinel matched by errors.Is when a thunk
// tries to read a Computed that is already evaluating (§7, case 1).
var ErrCyclicEvaluation = internal.ErrCyclicEvaluation

// CyclicEvaluationError, ThunkError, and ObserverError are the concrete
// error types a reader or writer can receive; see §7.
type (
	CyclicEvaluationError = internal.CyclicEvaluationError
	ThunkError            = internal.ThunkError
	ObserverError         = internal.ObserverError
)

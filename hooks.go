package sig

import (
	"github.com/signified-go/signified/internal"
	"github.com/sirupsen/logrus"
)

// Node is the minimal capability a lifecycle hook receives: the Name and
// Kind of the node that triggered the event. OnCreated, OnRead and OnUpdated
// pass the engine's own Signal or Computed; OnNamed passes the base record
// embedded in it, which reports the same Name and Kind but is not itself a
// Signal or Computed.
type Node = internal.Node

// State is a Computed's position in the Stale/Evaluating/Fresh state
// machine (§4.4).
type State = internal.State

const (
	Stale      = internal.Stale
	Evaluating = internal.Evaluating
	Fresh      = internal.Fresh
)

// OnCreated registers fn to run whenever a Signal or Computed is
// constructed. It returns an unregister function.
func OnCreated(fn func(Node)) func() { return internal.OnCreated(fn) }

// OnNamed registers fn to run whenever a node is given a display name.
func OnNamed(fn func(Node)) func() { return internal.OnNamed(fn) }

// OnRead registers fn to run whenever a node's value is read.
func OnRead(fn func(Node)) func() { return internal.OnRead(fn) }

// OnUpdated registers fn to run whenever a node's cached value actually
// changes.
func OnUpdated(fn func(Node)) func() { return internal.OnUpdated(fn) }

// SetDebugLogLevel controls the engine's own internal diagnostic logger
// (used only to report swallowed ChangeDetectorFailures, §7 case 4). It is
// silent by default; the CLI enables it with --debug.
func SetDebugLogLevel(debug bool) {
	if debug {
		internal.Log.SetLevel(logrus.DebugLevel)
		return
	}
	internal.Log.SetLevel(logrus.PanicLevel)
}

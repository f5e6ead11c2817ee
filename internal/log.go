package internal

import "github.com/sirupsen/logrus"

// Log is the engine's own diagnostic logger. It is used for one thing only:
// reporting a swallowed ChangeDetectorFailure (§7, case 4) from Signal.Write
// or a Computed evaluation. It defaults to a level that prints
// nothing, so the core stays silent unless a caller opts in (the CLI does,
// via --debug; see cmd/signified).
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.PanicLevel)
}

func logChangeDetectorFailure(node string, err error) {
	Log.WithFields(logrus.Fields{
		"node":  node,
		"error": err,
	}).Debug("change detector panicked, treating as changed")
}

// Package sighooks is a concrete consumer of the plugin-hook subsystem
// exposed by package sig (§6): it logs graph lifecycle events through
// logrus, the structured-logging library the grovetools-core repository in
// this corpus standardizes on.
//
// The core engine itself never imports this package or logrus on its hot
// path — a caller opts in explicitly by calling Register.
package sighooks

import (
	"github.com/sirupsen/logrus"

	sig "github.com/signified-go/signified"
)

// Bundle is a registered set of logging hooks. Call Close to unregister
// all of them.
type Bundle struct {
	unregister []func()
}

// Register installs a logrus-backed hook bundle against log. Reads are
// logged at Trace level, since reads are the hot path; creation, naming,
// and updates are logged at Debug level.
func Register(log *logrus.Logger) *Bundle {
	b := &Bundle{}
	b.unregister = []func(){
		sig.OnCreated(func(n sig.Node) {
			log.WithFields(logrus.Fields{"kind": n.Kind(), "name": n.Name()}).Debug("node created")
		}),
		sig.OnNamed(func(n sig.Node) {
			log.WithFields(logrus.Fields{"kind": n.Kind(), "name": n.Name()}).Debug("node named")
		}),
		sig.OnRead(func(n sig.Node) {
			log.WithFields(logrus.Fields{"kind": n.Kind(), "name": n.Name()}).Trace("node read")
		}),
		sig.OnUpdated(func(n sig.Node) {
			log.WithFields(logrus.Fields{"kind": n.Kind(), "name": n.Name()}).Debug("node updated")
		}),
	}
	return b
}

// Close unregisters every hook in the bundle.
func (b *Bundle) Close() {
	for _, fn := range b.unregister {
		fn()
	}
	b.unregister = nil
}

/*
Package scene defines the contract between traversal helpers and a host
application's scene graph.

Overview

Digital-content-creation (DCC) applications expose their scene through a
scripting API: nodes arranged in a parent/child hierarchy, and typed
attribute endpoints ("plugs") wired together by directed connections.
This package does not implement such a graph. It only names the handful
of query primitives a host adapter has to provide, so that the walkers
in package walk can operate on any host.

Nodes and plugs are opaque handles, assigned and owned by the host. The
library is generic over the handle types and never creates, copies or
destroys them; it compares them with Go equality, which therefore has to
coincide with the host's notion of handle identity.

An adapter for an in-memory scene, suitable for tests and for the
command line tool, lives in package memscene.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'scenewalk.scene'.
func tracer() tracing.Trace {
	return tracing.Select("scenewalk.scene")
}

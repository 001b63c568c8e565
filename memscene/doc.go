/*
Package memscene provides an in-memory scene graph implementing the
scene.Graph contract.

Overview

memscene is not a DCC application. It exists so that the traversal
helpers in package walk have a host to run against: unit tests build
small scenes programmatically, and the command line tool loads scenes
from YAML descriptions (see Load).

The implementation favors predictability over performance: children,
plugs and connections keep their insertion order, so traversal results
are stable across runs. Handles are dense integer ids; removing a node
invalidates the handles of its whole subtree, which makes the package
convenient for testing invalid-handle propagation as well.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package memscene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'scenewalk.memscene'.
func tracer() tracing.Trace {
	return tracing.Select("scenewalk.memscene")
}

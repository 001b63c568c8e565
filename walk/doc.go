/*
Package walk implements traversal helpers for DCC scene graphs.

Overview

The package offers three families of helpers, all operating on a host
graph through the scene.Graph interface:

Walkers produce lazy sequences of nodes. They are pull-based cursors,
configured up front through a small chaining DSL and then drained with
Next/Node:

   w := walk.Hierarchy(g, root).DepthFirst().StopAt(group)
   for w.Next() {
       n := w.Node()
       ...
   }
   if err := w.Err(); err != nil { ... }

Hierarchy follows parent/child edges, Connections follows attribute
connections projected onto their owning nodes, and TopNodes reduces a
collection of nodes to its topmost members.

Adjacency accessors (Parent, Children, Siblings, Connected, Plugs) are
single-hop projections of one host query, optionally filtered.

Plug introspection helpers (Status, PlugParent, PlugChildren,
PlugHasSource, PlugHasDestinations, PlugHasConnections) inspect the
structure and connection state of individual plugs.

Nothing in this package owns state beyond the lifetime of one cursor:
every helper is a pure function of the host graph's snapshot at call
time. Mutating the graph while a walker is being drained yields
undefined results.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package walk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'scenewalk.walk'.
func tracer() tracing.Trace {
	return tracing.Select("scenewalk.walk")
}

package scene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// PlugOrder selects the ordering of array-plug elements.
//
// Hosts may store the elements of sparse array plugs in an order different
// from the order of their logical indexes. Logical requests elements sorted
// by logical index, Physical requests them in the host's storage order.
// For compound plugs both orders are identical.
type PlugOrder int8

const (
	// Logical orders array elements by their logical index.
	Logical PlugOrder = iota
	// Physical orders array elements by their storage position.
	Physical
)

// Graph is the query surface a host adapter provides to the traversal
// helpers. All methods are read-only snapshots of the host's scene at call
// time; the library never mutates the graph.
//
// N is the host's node handle type, P its plug handle type. Both have to be
// comparable, with Go equality matching host handle identity.
//
// Every method may fail with the host's native invalid-handle error if the
// referenced node or plug no longer exists. Such errors are propagated to
// callers unchanged. Empty adjacency is not an error: methods return empty
// slices, or ok=false for optional single results.
type Graph[N, P comparable] interface {
	// NodeName returns the host's display name for a node.
	NodeName(n N) (string, error)

	// PlugName returns the host's display name for a plug, usually in
	// 'node.attribute' notation.
	PlugName(p P) (string, error)

	// HasKind checks a node for a capability tag. Capability semantics are
	// host-defined and may be transitive, e.g. a joint will usually also
	// report the transform capability.
	HasKind(n N, k Kind) (bool, error)

	// Parent returns the parent of n, or ok=false if n is a root node.
	Parent(n N) (N, bool, error)

	// Children returns the children of n in declaration order. The order is
	// stable as long as the graph is not mutated.
	Children(n N) ([]N, error)

	// Plugs returns the top-level plugs of n in declaration order.
	Plugs(n N) ([]P, error)

	// PlugOwner returns the node a plug belongs to.
	PlugOwner(p P) (N, error)

	// PlugSource returns the single incoming connection of p, or ok=false
	// if p is not a connection destination.
	PlugSource(p P) (P, bool, error)

	// PlugDestinations returns the outgoing connections of p in a stable
	// order.
	PlugDestinations(p P) ([]P, error)

	// PlugParent returns the structural parent of p: the compound plug it
	// is a child of, or the array plug it is an element of. ok=false for
	// top-level plugs.
	PlugParent(p P) (P, bool, error)

	// PlugChildren returns the structural children of p: the children of a
	// compound plug, or the elements of an array plug in the requested
	// order. Simple plugs have no children.
	PlugChildren(p P, order PlugOrder) ([]P, error)
}

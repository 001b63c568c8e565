package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/scenewalk/scene"
)

// ErrWalkStarted is reported if a client tries to re-configure a walker
// after iteration has started. Configuration is frozen by the first call to
// Next; create a new walker instead.
var ErrWalkStarted = errors.New("walker already started; configuration is frozen")

type walkMode int8

const (
	modeHierarchy walkMode = iota
	modeConnections
)

// Walker is a lazy cursor over nodes of a host graph. Clients obtain one
// from Hierarchy or Connections, optionally chain configuration calls, and
// then pull nodes:
//
//    w := walk.Connections(g, root).Upstream()
//    for w.Next() {
//        visit(w.Node())
//    }
//    err := w.Err()
//
// A Walker suspends between calls to Next: adjacency of a node is only
// queried once the client pulls past it, so abandoning a walker early is
// free. Walkers are not safe for concurrent use and assume the host graph
// does not mutate during the walk.
type Walker[N, P comparable] struct {
	g    scene.Graph[N, P]
	root N
	mode walkMode

	depthFirst bool
	upstream   bool
	stoppers   map[N]struct{}
	kind       scene.Kind // KindInvalid = no filtering

	started  bool
	done     bool
	rootSeen bool
	err      error
	current  N

	frontier      []N
	pending       N // dequeued node whose expansion is still outstanding
	expandPending bool

	visited map[N]struct{} // connection walks only
}

// Hierarchy creates a walker over the parent/child hierarchy of root.
// The walk is breadth-first and follows children unless configured
// otherwise. root itself is the first node yielded, unconditionally.
//
// Nodes reachable through more than one parent path (DAG instancing) are
// yielded once per path; hierarchy walks keep no visited set.
func Hierarchy[N, P comparable](g scene.Graph[N, P], root N) *Walker[N, P] {
	tracer().Debugf("new hierarchy walker, root = %v", root)
	return &Walker[N, P]{g: g, root: root, mode: modeHierarchy}
}

// Connections creates a walker over the dependency graph of root: edges
// are attribute connections, projected onto the nodes owning the connected
// plugs. The walk is breadth-first and follows destinations unless
// configured otherwise. root itself is the first node yielded,
// unconditionally.
//
// Connection walks keep a visited set, so each node is yielded at most
// once and connection cycles terminate.
func Connections[N, P comparable](g scene.Graph[N, P], root N) *Walker[N, P] {
	tracer().Debugf("new connection walker, root = %v", root)
	return &Walker[N, P]{
		g:       g,
		root:    root,
		mode:    modeConnections,
		visited: make(map[N]struct{}),
	}
}

// DepthFirst switches the walker to depth-first order: each child is fully
// expanded before its next sibling. Children are visited in declaration
// order, identical to a breadth-first walk. Going upstream, the order flag
// has no effect.
func (w *Walker[N, P]) DepthFirst() *Walker[N, P] {
	if w.freeze() {
		return w
	}
	w.depthFirst = true
	return w
}

// Upstream reverses the walk direction: parents instead of children for
// hierarchy walks, connection sources instead of destinations for
// connection walks.
func (w *Walker[N, P]) Upstream() *Walker[N, P] {
	if w.freeze() {
		return w
	}
	w.upstream = true
	return w
}

// StopAt registers stopper nodes: a stopper is still yielded, but the walk
// does not expand past it.
func (w *Walker[N, P]) StopAt(nodes ...N) *Walker[N, P] {
	if w.freeze() {
		return w
	}
	if w.stoppers == nil {
		w.stoppers = make(map[N]struct{}, len(nodes))
	}
	for _, n := range nodes {
		w.stoppers[n] = struct{}{}
	}
	return w
}

// OnlyKind restricts the yielded nodes to those reporting the capability
// tag k. The filter decides yielding only; non-matching nodes are still
// expanded. The root node bypasses the filter.
func (w *Walker[N, P]) OnlyKind(k scene.Kind) *Walker[N, P] {
	if w.freeze() {
		return w
	}
	w.kind = k
	return w
}

// freeze reports (and records) a configuration attempt on a started walker.
func (w *Walker[N, P]) freeze() bool {
	if !w.started {
		return false
	}
	if w.err == nil {
		w.err = ErrWalkStarted
	}
	return true
}

// Next advances the cursor to the next node of the walk. It returns false
// when the sequence is exhausted or an error occurred; check Err afterwards.
func (w *Walker[N, P]) Next() bool {
	if w == nil || w.done || w.err != nil {
		return false
	}
	if !w.started {
		w.started = true
		w.frontier = append(w.frontier, w.root)
	}
	for {
		if w.expandPending {
			w.expandPending = false
			if err := w.expand(w.pending); err != nil {
				return w.fail(err)
			}
		}
		if len(w.frontier) == 0 {
			w.done = true
			return false
		}
		cur := w.dequeue()
		isRoot := !w.rootSeen
		w.rootSeen = true

		if w.mode == modeConnections {
			if _, seen := w.visited[cur]; seen { // cycle
				continue
			}
			// A breadth-first frontier can reach a node before all of its
			// opposite-direction neighbors were visited. Skip it here; the
			// remaining neighbor will push it again.
			if !w.depthFirst && cur != w.root {
				early, err := w.hasUnvisitedOpposite(cur)
				if err != nil {
					return w.fail(err)
				}
				if early {
					continue
				}
			}
			w.visited[cur] = struct{}{}
		}

		yield := true
		if !isRoot && w.kind != scene.KindInvalid {
			ok, err := w.g.HasKind(cur, w.kind)
			if err != nil {
				return w.fail(err)
			}
			yield = ok
		}

		if _, stop := w.stoppers[cur]; !stop {
			w.pending = cur
			w.expandPending = true
		}

		if yield {
			w.current = cur
			return true
		}
	}
}

// Node returns the node the cursor currently points at. Only valid after a
// call to Next returning true.
func (w *Walker[N, P]) Node() N {
	return w.current
}

// Err returns the first error encountered by the walker, or nil. Host
// errors (e.g. invalid handles) are passed through unchanged.
func (w *Walker[N, P]) Err() error {
	if w == nil {
		return nil
	}
	return w.err
}

func (w *Walker[N, P]) fail(err error) bool {
	w.err = err
	w.done = true
	return false
}

func (w *Walker[N, P]) dequeue() N {
	var cur N
	if w.depthFirst {
		cur = w.frontier[len(w.frontier)-1]
		w.frontier = w.frontier[:len(w.frontier)-1]
	} else {
		cur = w.frontier[0]
		w.frontier = w.frontier[1:]
	}
	return cur
}

// expand queues the neighbors of n in walk direction.
func (w *Walker[N, P]) expand(n N) error {
	var next []N
	var err error
	switch {
	case w.mode == modeHierarchy && w.upstream:
		p, ok, perr := w.g.Parent(n)
		if perr != nil {
			return perr
		}
		if ok {
			next = []N{p}
		}
	case w.mode == modeHierarchy:
		next, err = w.g.Children(n)
		if err != nil {
			return err
		}
	default: // connections
		next, err = Connected(w.g, n, w.upstream, !w.upstream)
		if err != nil {
			return err
		}
	}
	if w.depthFirst {
		// Reversed, so that popping from the back keeps declaration order.
		for i := len(next) - 1; i >= 0; i-- {
			w.frontier = append(w.frontier, next[i])
		}
	} else {
		w.frontier = append(w.frontier, next...)
	}
	return nil
}

// hasUnvisitedOpposite checks whether n still has unvisited neighbors in
// the direction opposite to the walk.
func (w *Walker[N, P]) hasUnvisitedOpposite(n N) (bool, error) {
	opposite, err := Connected(w.g, n, !w.upstream, w.upstream)
	if err != nil {
		return false, err
	}
	for _, m := range opposite {
		if m == n {
			continue
		}
		if _, seen := w.visited[m]; !seen {
			return true, nil
		}
	}
	return false, nil
}

package walk

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/scenewalk/scene"
)

// TopWalker is a lazy cursor over the topmost members of a node
// collection, created by TopNodes. It shares the Next/Node/Err contract of
// Walker.
type TopWalker[N, P comparable] struct {
	g       scene.Graph[N, P]
	input   []N
	set     map[N]struct{}
	sparse  bool
	started bool
	done    bool
	err     error
	index   int
	current N
}

// TopNodes creates a cursor yielding the members of nodes that have no
// ancestor in the collection. By default only the direct parent of each
// node is checked; see Sparse for the exhaustive mode.
//
// Duplicates in nodes are dropped, first occurrence wins; apart from that
// the input order is preserved.
func TopNodes[N, P comparable](g scene.Graph[N, P], nodes []N) *TopWalker[N, P] {
	tracer().Debugf("new top-nodes cursor over %d nodes", len(nodes))
	input := make([]N, 0, len(nodes))
	set := make(map[N]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := set[n]; dup {
			continue
		}
		set[n] = struct{}{}
		input = append(input, n)
	}
	return &TopWalker[N, P]{g: g, input: input, set: set}
}

// Sparse switches the cursor to sparse-hierarchy mode: a node is excluded
// as soon as ANY of its ancestors in the full scene hierarchy is a member
// of the input collection, even if intermediate ancestors are not. The
// default mode checks the direct parent only.
func (w *TopWalker[N, P]) Sparse() *TopWalker[N, P] {
	if w.started {
		if w.err == nil {
			w.err = ErrWalkStarted
		}
		return w
	}
	w.sparse = true
	return w
}

// Next advances the cursor to the next top node. It returns false when the
// input is exhausted or an error occurred; check Err afterwards.
func (w *TopWalker[N, P]) Next() bool {
	if w == nil || w.done || w.err != nil {
		return false
	}
	w.started = true
	for w.index < len(w.input) {
		n := w.input[w.index]
		w.index++
		excluded, err := w.hasAncestorInSet(n)
		if err != nil {
			w.err = err
			w.done = true
			return false
		}
		if !excluded {
			w.current = n
			return true
		}
	}
	w.done = true
	return false
}

// Node returns the node the cursor currently points at. Only valid after a
// call to Next returning true.
func (w *TopWalker[N, P]) Node() N {
	return w.current
}

// Err returns the first error encountered, or nil.
func (w *TopWalker[N, P]) Err() error {
	if w == nil {
		return nil
	}
	return w.err
}

func (w *TopWalker[N, P]) hasAncestorInSet(n N) (bool, error) {
	cur := n
	for {
		parent, ok, err := w.g.Parent(cur)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if _, in := w.set[parent]; in {
			return true, nil
		}
		if !w.sparse { // direct parent only
			return false, nil
		}
		cur = parent
	}
}

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

// Parent returns the parent of n, or ok=false if n is a root node.
func Parent[N, P comparable](g scene.Graph[N, P], n N) (N, bool, error) {
	return g.Parent(n)
}

// Children returns the children of n in declaration order. Nodes without
// children yield an empty slice, never an error.
func Children[N, P comparable](g scene.Graph[N, P], n N) ([]N, error) {
	return g.Children(n)
}

// ChildrenOfKind returns the children of n reporting the capability tag k.
func ChildrenOfKind[N, P comparable](g scene.Graph[N, P], n N, k scene.Kind) ([]N, error) {
	children, err := g.Children(n)
	if err != nil {
		return nil, err
	}
	return filterKind(g, children, k)
}

// Siblings returns the nodes sharing a parent with n, excluding n itself.
// A root node has no siblings.
func Siblings[N, P comparable](g scene.Graph[N, P], n N) ([]N, error) {
	parent, ok, err := g.Parent(n)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	children, err := g.Children(parent)
	if err != nil {
		return nil, err
	}
	siblings := make([]N, 0, len(children))
	for _, ch := range children {
		if ch == n {
			continue
		}
		siblings = append(siblings, ch)
	}
	return siblings, nil
}

// SiblingsOfKind returns the siblings of n reporting the capability tag k.
func SiblingsOfKind[N, P comparable](g scene.Graph[N, P], n N, k scene.Kind) ([]N, error) {
	siblings, err := Siblings(g, n)
	if err != nil {
		return nil, err
	}
	return filterKind(g, siblings, k)
}

func filterKind[N, P comparable](g scene.Graph[N, P], nodes []N, k scene.Kind) ([]N, error) {
	matching := nodes[:0:0]
	for _, n := range nodes {
		ok, err := g.HasKind(n, k)
		if err != nil {
			return nil, err
		}
		if ok {
			matching = append(matching, n)
		}
	}
	return matching, nil
}

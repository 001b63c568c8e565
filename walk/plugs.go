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

// Status determines the connection state of a plug.
func Status[N, P comparable](g scene.Graph[N, P], p P) (scene.ConnectionStatus, error) {
	_, hasSource, err := g.PlugSource(p)
	if err != nil {
		return scene.StatusDisconnected, err
	}
	destinations, err := g.PlugDestinations(p)
	if err != nil {
		return scene.StatusDisconnected, err
	}
	switch {
	case hasSource && len(destinations) > 0:
		return scene.StatusBoth, nil
	case hasSource:
		return scene.StatusSource, nil
	case len(destinations) > 0:
		return scene.StatusDestinations, nil
	}
	return scene.StatusDisconnected, nil
}

// Plugs returns all plugs of a node: top-level plugs together with their
// structural descendents (compound children and array elements), in
// pre-order and declaration order.
func Plugs[N, P comparable](g scene.Graph[N, P], n N) ([]P, error) {
	return PlugsWhere[N, P](g, n, nil)
}

// PlugsWhere returns the plugs of n whose connection status satisfies the
// predicate. A nil predicate matches every plug. Predicates are typically
// method expressions on scene.ConnectionStatus:
//
//    walk.PlugsWhere(g, n, scene.ConnectionStatus.HasSource)
//
func PlugsWhere[N, P comparable](g scene.Graph[N, P], n N, pred func(scene.ConnectionStatus) bool) ([]P, error) {
	tops, err := g.Plugs(n)
	if err != nil {
		return nil, err
	}
	var result []P
	stack := make([]P, 0, len(tops))
	for i := len(tops) - 1; i >= 0; i-- {
		stack = append(stack, tops[i])
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if pred == nil {
			result = append(result, p)
		} else {
			status, err := Status(g, p)
			if err != nil {
				return nil, err
			}
			if pred(status) {
				result = append(result, p)
			}
		}
		children, err := g.PlugChildren(p, scene.Logical)
		if err != nil {
			return nil, err
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return result, nil
}

// PlugParent returns the structural parent of p (compound parent or owning
// array plug), or ok=false for a top-level plug.
func PlugParent[N, P comparable](g scene.Graph[N, P], p P) (P, bool, error) {
	return g.PlugParent(p)
}

// PlugChildren returns the structural children of p: the children of a
// compound plug, or the elements of an array plug in the requested order.
// With reverse set the result order is inverted. Simple plugs yield an
// empty slice.
func PlugChildren[N, P comparable](g scene.Graph[N, P], p P, order scene.PlugOrder, reverse bool) ([]P, error) {
	children, err := g.PlugChildren(p, order)
	if err != nil {
		return nil, err
	}
	if !reverse {
		return children, nil
	}
	reversed := make([]P, len(children))
	for i, ch := range children {
		reversed[len(children)-1-i] = ch
	}
	return reversed, nil
}

// PlugHasSource reports whether p is the destination of a connection. With
// nested set, the check extends over p's whole structural sub-hierarchy.
func PlugHasSource[N, P comparable](g scene.Graph[N, P], p P, nested bool) (bool, error) {
	return plugHasAny(g, p, nested, func(q P) (bool, error) {
		_, ok, err := g.PlugSource(q)
		return ok, err
	})
}

// PlugHasDestinations reports whether p is the source of any connection.
// With nested set, the check extends over p's whole structural
// sub-hierarchy.
func PlugHasDestinations[N, P comparable](g scene.Graph[N, P], p P, nested bool) (bool, error) {
	return plugHasAny(g, p, nested, func(q P) (bool, error) {
		dsts, err := g.PlugDestinations(q)
		return len(dsts) > 0, err
	})
}

// PlugHasConnections reports whether p has any connection at all, running
// both PlugHasSource and PlugHasDestinations.
func PlugHasConnections[N, P comparable](g scene.Graph[N, P], p P, nested bool) (bool, error) {
	has, err := PlugHasSource(g, p, nested)
	if err != nil || has {
		return has, err
	}
	return PlugHasDestinations(g, p, nested)
}

func plugHasAny[N, P comparable](g scene.Graph[N, P], p P, nested bool,
	check func(P) (bool, error)) (bool, error) {
	//
	stack := []P{p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ok, err := check(q)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if nested {
			children, err := g.PlugChildren(q, scene.Logical)
			if err != nil {
				return false, err
			}
			stack = append(stack, children...)
		}
	}
	return false, nil
}

package scene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Kind is a capability tag for scene nodes. Traversal helpers use kinds to
// restrict results to nodes matching a requested capability.
//
// The set of kinds is closed. Hosts decide which kinds a given node
// reports; capability checks may be transitive (a joint is a transform, a
// mesh is a shape).
type Kind uint8

const (
	KindInvalid   Kind = iota // zero value, matches nothing
	KindDag                   // any node participating in the hierarchy
	KindTransform             // node carrying a transformation
	KindShape                 // geometry container, leaf of the hierarchy
	KindJoint                 // skeleton transform
	KindMesh                  // polygonal shape
	KindCurve                 // curve shape
	KindCamera                // camera shape
	KindLight                 // light shape
)

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindDag:       "dag",
	KindTransform: "transform",
	KindShape:     "shape",
	KindJoint:     "joint",
	KindMesh:      "mesh",
	KindCurve:     "curve",
	KindCamera:    "camera",
	KindLight:     "light",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// KindFromString maps a kind name to its Kind tag. Matching is
// case-insensitive. Unknown names map to KindInvalid.
func KindFromString(name string) Kind {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k
		}
	}
	tracer().Debugf("unknown node kind %q", name)
	return KindInvalid
}

package memscene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/scenewalk/scene"
)

// ErrUnknownNode is reported for node handles that do not (or no longer)
// refer to a node of the scene.
var ErrUnknownNode = errors.New("unknown node handle")

// ErrUnknownPlug is reported for plug handles that do not (or no longer)
// refer to a plug of the scene.
var ErrUnknownPlug = errors.New("unknown plug handle")

// ErrAlreadyConnected is reported by Connect if the destination plug
// already has a source. A plug accepts at most one incoming connection.
var ErrAlreadyConnected = errors.New("plug already has a source connection")

// ErrDuplicateName is reported if a node name is already in use. Node
// names are unique per scene.
var ErrDuplicateName = errors.New("node name already in use")

// NodeID is a handle for a node of a Scene. The zero value is invalid.
type NodeID uint32

// PlugID is a handle for a plug of a Scene. The zero value is invalid.
type PlugID uint32

// Scene is a mutable in-memory scene graph. It implements
// scene.Graph[NodeID, PlugID].
//
// A Scene is not safe for concurrent use; like the scripting runtime of a
// DCC host it assumes a single caller.
type Scene struct {
	nodes    map[NodeID]*nodeRec
	plugs    map[PlugID]*plugRec
	byName   map[string]NodeID
	roots    []NodeID
	lastNode NodeID
	lastPlug PlugID
}

type nodeRec struct {
	name     string
	kinds    []scene.Kind
	parent   NodeID // 0 for roots
	children []NodeID
	plugs    []PlugID // top-level plugs
}

type plugRec struct {
	owner    NodeID
	name     string
	parent   PlugID // structural parent, 0 for top-level plugs
	children []PlugID
	elements []element // array elements in insertion (physical) order
	array    bool
	compound bool
	source   PlugID // 0 = no incoming connection
	dests    []PlugID
}

type element struct {
	logical uint32
	id      PlugID
}

var _ scene.Graph[NodeID, PlugID] = (*Scene)(nil)

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		nodes:  make(map[NodeID]*nodeRec),
		plugs:  make(map[PlugID]*plugRec),
		byName: make(map[string]NodeID),
	}
}

// capability expansion: declaring a kind implies the more general ones.
var implies = map[scene.Kind][]scene.Kind{
	scene.KindJoint:     {scene.KindTransform},
	scene.KindMesh:      {scene.KindShape},
	scene.KindCurve:     {scene.KindShape},
	scene.KindCamera:    {scene.KindShape},
	scene.KindLight:     {scene.KindShape},
	scene.KindTransform: {scene.KindDag},
	scene.KindShape:     {scene.KindDag},
}

// --- Mutators --------------------------------------------------------------

// AddRoot creates a node without a parent. Every node implicitly has the
// dag capability; further kinds expand transitively (a joint is also a
// transform).
func (s *Scene) AddRoot(name string, kinds ...scene.Kind) (NodeID, error) {
	return s.addNode(0, name, kinds)
}

// AddChild creates a node below parent.
func (s *Scene) AddChild(parent NodeID, name string, kinds ...scene.Kind) (NodeID, error) {
	if _, ok := s.nodes[parent]; !ok {
		return 0, fmt.Errorf("%w (node %d)", ErrUnknownNode, parent)
	}
	return s.addNode(parent, name, kinds)
}

func (s *Scene) addNode(parent NodeID, name string, kinds []scene.Kind) (NodeID, error) {
	if _, taken := s.byName[name]; taken {
		return 0, fmt.Errorf("%w (%q)", ErrDuplicateName, name)
	}
	s.lastNode++
	id := s.lastNode
	s.nodes[id] = &nodeRec{name: name, kinds: expandKinds(kinds), parent: parent}
	s.byName[name] = id
	if parent == 0 {
		s.roots = append(s.roots, id)
	} else {
		p := s.nodes[parent]
		p.children = append(p.children, id)
	}
	tracer().Debugf("created node %q = #%d", name, id)
	return id, nil
}

func expandKinds(kinds []scene.Kind) []scene.Kind {
	all := []scene.Kind{scene.KindDag}
	var add func(k scene.Kind)
	add = func(k scene.Kind) {
		if k == scene.KindInvalid {
			return
		}
		for _, have := range all {
			if have == k {
				return
			}
		}
		all = append(all, k)
		for _, implied := range implies[k] {
			add(implied)
		}
	}
	for _, k := range kinds {
		add(k)
	}
	return all
}

// AddPlug creates a top-level plug on a node.
func (s *Scene) AddPlug(n NodeID, name string) (PlugID, error) {
	node, ok := s.nodes[n]
	if !ok {
		return 0, fmt.Errorf("%w (node %d)", ErrUnknownNode, n)
	}
	id := s.newPlug(n, name, 0)
	node.plugs = append(node.plugs, id)
	return id, nil
}

// AddChildPlug creates a child plug below parent, turning parent into a
// compound plug. Array plugs cannot receive compound children.
func (s *Scene) AddChildPlug(parent PlugID, name string) (PlugID, error) {
	pp, ok := s.plugs[parent]
	if !ok {
		return 0, fmt.Errorf("%w (plug %d)", ErrUnknownPlug, parent)
	}
	if pp.array {
		return 0, fmt.Errorf("plug %d is an array, cannot add compound child", parent)
	}
	id := s.newPlug(pp.owner, name, parent)
	pp.compound = true
	pp.children = append(pp.children, id)
	return id, nil
}

// AddElement creates an array element with a logical index below plug arr,
// turning arr into an array plug. Elements keep insertion order as their
// physical order; logical indexes may be sparse but must be unique.
func (s *Scene) AddElement(arr PlugID, logical uint32) (PlugID, error) {
	ap, ok := s.plugs[arr]
	if !ok {
		return 0, fmt.Errorf("%w (plug %d)", ErrUnknownPlug, arr)
	}
	if ap.compound {
		return 0, fmt.Errorf("plug %d is a compound, cannot add array element", arr)
	}
	for _, el := range ap.elements {
		if el.logical == logical {
			return 0, fmt.Errorf("plug %d already has element [%d]", arr, logical)
		}
	}
	id := s.newPlug(ap.owner, fmt.Sprintf("%s[%d]", ap.name, logical), arr)
	ap.array = true
	ap.elements = append(ap.elements, element{logical: logical, id: id})
	return id, nil
}

func (s *Scene) newPlug(owner NodeID, name string, parent PlugID) PlugID {
	s.lastPlug++
	id := s.lastPlug
	s.plugs[id] = &plugRec{owner: owner, name: name, parent: parent}
	return id
}

// Connect wires src to dst. The destination must not already have a
// source; self-connections are rejected.
func (s *Scene) Connect(src, dst PlugID) error {
	sp, ok := s.plugs[src]
	if !ok {
		return fmt.Errorf("%w (plug %d)", ErrUnknownPlug, src)
	}
	dp, ok := s.plugs[dst]
	if !ok {
		return fmt.Errorf("%w (plug %d)", ErrUnknownPlug, dst)
	}
	if src == dst {
		return fmt.Errorf("cannot connect plug %d to itself", src)
	}
	if dp.source != 0 {
		return fmt.Errorf("%w (plug %d)", ErrAlreadyConnected, dst)
	}
	dp.source = src
	sp.dests = append(sp.dests, dst)
	tracer().Debugf("connected plug #%d -> #%d", src, dst)
	return nil
}

// Disconnect removes the incoming connection of dst, if any.
func (s *Scene) Disconnect(dst PlugID) error {
	dp, ok := s.plugs[dst]
	if !ok {
		return fmt.Errorf("%w (plug %d)", ErrUnknownPlug, dst)
	}
	if dp.source == 0 {
		return nil
	}
	sp := s.plugs[dp.source]
	for i, d := range sp.dests {
		if d == dst {
			sp.dests = append(sp.dests[:i], sp.dests[i+1:]...)
			break
		}
	}
	dp.source = 0
	return nil
}

// RemoveNode deletes a node, its subtree and all plugs involved. Existing
// handles into the removed subtree become invalid; connections from the
// outside into the subtree are broken.
func (s *Scene) RemoveNode(n NodeID) error {
	node, ok := s.nodes[n]
	if !ok {
		return fmt.Errorf("%w (node %d)", ErrUnknownNode, n)
	}
	for _, ch := range append([]NodeID{}, node.children...) {
		if err := s.RemoveNode(ch); err != nil {
			return err
		}
	}
	for id, p := range s.plugs {
		if p.owner != n {
			continue
		}
		s.Disconnect(id)
		for _, d := range append([]PlugID{}, p.dests...) {
			s.Disconnect(d)
		}
		delete(s.plugs, id)
	}
	if node.parent != 0 {
		parent := s.nodes[node.parent]
		for i, ch := range parent.children {
			if ch == n {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
	} else {
		for i, r := range s.roots {
			if r == n {
				s.roots = append(s.roots[:i], s.roots[i+1:]...)
				break
			}
		}
	}
	delete(s.byName, node.name)
	delete(s.nodes, n)
	return nil
}

// --- Lookup ----------------------------------------------------------------

// Roots returns the parentless nodes of the scene in creation order.
func (s *Scene) Roots() []NodeID {
	return append([]NodeID{}, s.roots...)
}

// Lookup finds a node by name.
func (s *Scene) Lookup(name string) (NodeID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// FindPlug finds a plug of node n by its dotted path relative to the node,
// e.g. "translate.tx" for a compound child or "weights[2]" for an array
// element.
func (s *Scene) FindPlug(n NodeID, path string) (PlugID, bool) {
	node, ok := s.nodes[n]
	if !ok {
		return 0, false
	}
	segments := strings.Split(path, ".")
	candidates := node.plugs
	var found PlugID
	for _, seg := range segments {
		base, logical, isElement := parseSegment(seg)
		found = 0
		for _, id := range candidates {
			if s.plugs[id].name == base {
				found = id
				break
			}
		}
		if found == 0 {
			return 0, false
		}
		if isElement {
			p := s.plugs[found]
			found = 0
			for _, el := range p.elements {
				if el.logical == logical {
					found = el.id
					break
				}
			}
			if found == 0 {
				return 0, false
			}
		}
		candidates = s.plugs[found].children
	}
	return found, found != 0
}

// parseSegment splits "weights[2]" into ("weights", 2, true).
func parseSegment(seg string) (string, uint32, bool) {
	open := strings.IndexByte(seg, '[')
	if open < 0 || !strings.HasSuffix(seg, "]") {
		return seg, 0, false
	}
	var logical uint32
	if _, err := fmt.Sscanf(seg[open:], "[%d]", &logical); err != nil {
		return seg, 0, false
	}
	return seg[:open], logical, true
}

// --- scene.Graph -----------------------------------------------------------

// NodeName implements scene.Graph.
func (s *Scene) NodeName(n NodeID) (string, error) {
	node, ok := s.nodes[n]
	if !ok {
		return "", fmt.Errorf("%w (node %d)", ErrUnknownNode, n)
	}
	return node.name, nil
}

// PlugName implements scene.Graph. Names use 'node.attribute' notation,
// with nested plugs dotted and array elements bracketed.
func (s *Scene) PlugName(p PlugID) (string, error) {
	plug, ok := s.plugs[p]
	if !ok {
		return "", fmt.Errorf("%w (plug %d)", ErrUnknownPlug, p)
	}
	path := plug.name
	for plug.parent != 0 {
		parent := s.plugs[plug.parent]
		if !parent.array { // element names already embed the parent name
			path = parent.name + "." + path
		}
		plug = parent
	}
	owner := s.nodes[plug.owner]
	return owner.name + "." + path, nil
}

// HasKind implements scene.Graph.
func (s *Scene) HasKind(n NodeID, k scene.Kind) (bool, error) {
	node, ok := s.nodes[n]
	if !ok {
		return false, fmt.Errorf("%w (node %d)", ErrUnknownNode, n)
	}
	for _, have := range node.kinds {
		if have == k {
			return true, nil
		}
	}
	return false, nil
}

// Parent implements scene.Graph.
func (s *Scene) Parent(n NodeID) (NodeID, bool, error) {
	node, ok := s.nodes[n]
	if !ok {
		return 0, false, fmt.Errorf("%w (node %d)", ErrUnknownNode, n)
	}
	return node.parent, node.parent != 0, nil
}

// Children implements scene.Graph.
func (s *Scene) Children(n NodeID) ([]NodeID, error) {
	node, ok := s.nodes[n]
	if !ok {
		return nil, fmt.Errorf("%w (node %d)", ErrUnknownNode, n)
	}
	return append([]NodeID{}, node.children...), nil
}

// Plugs implements scene.Graph.
func (s *Scene) Plugs(n NodeID) ([]PlugID, error) {
	node, ok := s.nodes[n]
	if !ok {
		return nil, fmt.Errorf("%w (node %d)", ErrUnknownNode, n)
	}
	return append([]PlugID{}, node.plugs...), nil
}

// PlugOwner implements scene.Graph.
func (s *Scene) PlugOwner(p PlugID) (NodeID, error) {
	plug, ok := s.plugs[p]
	if !ok {
		return 0, fmt.Errorf("%w (plug %d)", ErrUnknownPlug, p)
	}
	return plug.owner, nil
}

// PlugSource implements scene.Graph.
func (s *Scene) PlugSource(p PlugID) (PlugID, bool, error) {
	plug, ok := s.plugs[p]
	if !ok {
		return 0, false, fmt.Errorf("%w (plug %d)", ErrUnknownPlug, p)
	}
	return plug.source, plug.source != 0, nil
}

// PlugDestinations implements scene.Graph.
func (s *Scene) PlugDestinations(p PlugID) ([]PlugID, error) {
	plug, ok := s.plugs[p]
	if !ok {
		return nil, fmt.Errorf("%w (plug %d)", ErrUnknownPlug, p)
	}
	return append([]PlugID{}, plug.dests...), nil
}

// PlugParent implements scene.Graph.
func (s *Scene) PlugParent(p PlugID) (PlugID, bool, error) {
	plug, ok := s.plugs[p]
	if !ok {
		return 0, false, fmt.Errorf("%w (plug %d)", ErrUnknownPlug, p)
	}
	return plug.parent, plug.parent != 0, nil
}

// PlugChildren implements scene.Graph.
func (s *Scene) PlugChildren(p PlugID, order scene.PlugOrder) ([]PlugID, error) {
	plug, ok := s.plugs[p]
	if !ok {
		return nil, fmt.Errorf("%w (plug %d)", ErrUnknownPlug, p)
	}
	if plug.compound {
		return append([]PlugID{}, plug.children...), nil
	}
	if !plug.array {
		return nil, nil
	}
	elements := append([]element{}, plug.elements...)
	if order == scene.Logical {
		sort.Slice(elements, func(i, j int) bool {
			return elements[i].logical < elements[j].logical
		})
	}
	children := make([]PlugID, len(elements))
	for i, el := range elements {
		children[i] = el.id
	}
	return children, nil
}

package walk

import (
	"errors"
	"testing"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scene"
)

func TestParent(t *testing.T) {
	fx, n := hierarchyFixture(t)
	root, a := n[0], n[1]
	parent, ok, err := Parent(fx.g, a)
	if err != nil {
		t.Fatalf("parent query failed: %v", err)
	}
	if !ok || parent != root {
		t.Errorf("expected parent of a to be root, is %v", parent)
	}
	if _, ok, _ = Parent(fx.g, root); ok {
		t.Error("expected root to have no parent")
	}
}

func TestChildren(t *testing.T) {
	fx, n := hierarchyFixture(t)
	root, a, b := n[0], n[1], n[2]
	children, err := Children(fx.g, root)
	if err != nil {
		t.Fatalf("children query failed: %v", err)
	}
	if !sameNodes(children, []memscene.NodeID{a, b}) {
		t.Errorf("expected children of root to be [a b], is %v", children)
	}
	leaves, err := Children(fx.g, b)
	if err != nil {
		t.Fatalf("children query failed: %v", err)
	}
	if len(leaves) != 0 {
		t.Errorf("expected b to have no children, is %v", leaves)
	}
}

func TestChildrenOfKind(t *testing.T) {
	fx, n := hierarchyFixture(t)
	root, b := n[0], n[2]
	joints, err := ChildrenOfKind(fx.g, root, scene.KindJoint)
	if err != nil {
		t.Fatalf("children query failed: %v", err)
	}
	if !sameNodes(joints, []memscene.NodeID{b}) {
		t.Errorf("expected joint children of root to be [b], is %v", joints)
	}
}

func TestSiblings(t *testing.T) {
	fx, n := hierarchyFixture(t)
	root, a, b := n[0], n[1], n[2]
	siblings, err := Siblings(fx.g, a)
	if err != nil {
		t.Fatalf("siblings query failed: %v", err)
	}
	if !sameNodes(siblings, []memscene.NodeID{b}) {
		t.Errorf("expected siblings of a to be [b], is %v", siblings)
	}
	none, err := Siblings(fx.g, root)
	if err != nil {
		t.Fatalf("siblings query failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected root to have no siblings, is %v", none)
	}
}

func TestSiblingsOfKind(t *testing.T) {
	fx := newFixture()
	root := fx.node(t, 0, "root", scene.KindTransform)
	node := fx.node(t, root, "node", scene.KindTransform)
	fx.node(t, root, "group", scene.KindTransform)
	joint := fx.node(t, root, "joint", scene.KindJoint)
	siblings, err := SiblingsOfKind(fx.g, node, scene.KindJoint)
	if err != nil {
		t.Fatalf("siblings query failed: %v", err)
	}
	if !sameNodes(siblings, []memscene.NodeID{joint}) {
		t.Errorf("expected joint siblings of node to be [joint], is %v", siblings)
	}
}

func TestAccessorsPropagateHostErrors(t *testing.T) {
	fx, n := hierarchyFixture(t)
	c := n[3]
	if err := fx.s.RemoveNode(c); err != nil {
		t.Fatalf("cannot remove fixture node: %v", err)
	}
	if _, _, err := Parent(fx.g, c); !errors.Is(err, memscene.ErrUnknownNode) {
		t.Errorf("expected unknown-node error from Parent, is %v", err)
	}
	if _, err := Children(fx.g, c); !errors.Is(err, memscene.ErrUnknownNode) {
		t.Errorf("expected unknown-node error from Children, is %v", err)
	}
	if _, err := Siblings(fx.g, c); !errors.Is(err, memscene.ErrUnknownNode) {
		t.Errorf("expected unknown-node error from Siblings, is %v", err)
	}
}

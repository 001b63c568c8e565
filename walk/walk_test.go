package walk

import (
	"testing"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scene"
)

// Shared fixture helpers for the tests in this package. All fixtures are
// built on the in-memory reference host.

type fixture struct {
	s *memscene.Scene
	g scene.Graph[memscene.NodeID, memscene.PlugID]
}

func newFixture() *fixture {
	s := memscene.New()
	return &fixture{s: s, g: s}
}

// node creates a node, failing the test on error. parent=0 creates a root.
func (fx *fixture) node(t *testing.T, parent memscene.NodeID, name string,
	kinds ...scene.Kind) memscene.NodeID {
	//
	t.Helper()
	var id memscene.NodeID
	var err error
	if parent == 0 {
		id, err = fx.s.AddRoot(name, kinds...)
	} else {
		id, err = fx.s.AddChild(parent, name, kinds...)
	}
	if err != nil {
		t.Fatalf("cannot create fixture node %q: %v", name, err)
	}
	return id
}

// plug creates a top-level plug, failing the test on error.
func (fx *fixture) plug(t *testing.T, n memscene.NodeID, name string) memscene.PlugID {
	t.Helper()
	p, err := fx.s.AddPlug(n, name)
	if err != nil {
		t.Fatalf("cannot create fixture plug %q: %v", name, err)
	}
	return p
}

// connect wires two plugs, failing the test on error.
func (fx *fixture) connect(t *testing.T, src, dst memscene.PlugID) {
	t.Helper()
	if err := fx.s.Connect(src, dst); err != nil {
		t.Fatalf("cannot connect fixture plugs: %v", err)
	}
}

// chain connects node a to node b through plugs named out/in.
func (fx *fixture) wire(t *testing.T, a, b memscene.NodeID) {
	t.Helper()
	out := fx.plug(t, a, "out"+nameSuffix(fx, t, b))
	in := fx.plug(t, b, "in"+nameSuffix(fx, t, a))
	fx.connect(t, out, in)
}

func nameSuffix(fx *fixture, t *testing.T, n memscene.NodeID) string {
	t.Helper()
	name, err := fx.s.NodeName(n)
	if err != nil {
		t.Fatalf("cannot resolve fixture node name: %v", err)
	}
	return "_" + name
}

// drain pulls a walker dry and returns the visited nodes.
func drain(t *testing.T, w *Walker[memscene.NodeID, memscene.PlugID]) []memscene.NodeID {
	t.Helper()
	var nodes []memscene.NodeID
	for w.Next() {
		nodes = append(nodes, w.Node())
	}
	if err := w.Err(); err != nil {
		t.Fatalf("walker failed: %v", err)
	}
	return nodes
}

// drainTop pulls a top-nodes cursor dry.
func drainTop(t *testing.T, w *TopWalker[memscene.NodeID, memscene.PlugID]) []memscene.NodeID {
	t.Helper()
	var nodes []memscene.NodeID
	for w.Next() {
		nodes = append(nodes, w.Node())
	}
	if err := w.Err(); err != nil {
		t.Fatalf("top-nodes cursor failed: %v", err)
	}
	return nodes
}

func sameNodes(a, b []memscene.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package scenedbg

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scene"
)

func debugFixture(t *testing.T) (*memscene.Scene, memscene.NodeID) {
	t.Helper()
	s := memscene.New()
	root, err := s.AddRoot("root", scene.KindTransform)
	if err != nil {
		t.Fatalf("cannot create fixture: %v", err)
	}
	body, err := s.AddChild(root, "body", scene.KindMesh)
	if err != nil {
		t.Fatalf("cannot create fixture: %v", err)
	}
	rig, err := s.AddChild(root, "rig", scene.KindJoint)
	if err != nil {
		t.Fatalf("cannot create fixture: %v", err)
	}
	out, err := s.AddPlug(rig, "out")
	if err != nil {
		t.Fatalf("cannot create fixture: %v", err)
	}
	in, err := s.AddPlug(body, "deform")
	if err != nil {
		t.Fatalf("cannot create fixture: %v", err)
	}
	if err := s.Connect(out, in); err != nil {
		t.Fatalf("cannot create fixture: %v", err)
	}
	return s, root
}

func TestHierarchyString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scenewalk.walk")
	defer teardown()
	//
	s, root := debugFixture(t)
	out, err := HierarchyString[memscene.NodeID, memscene.PlugID](s, root)
	if err != nil {
		t.Fatalf("cannot render hierarchy: %v", err)
	}
	t.Logf("hierarchy =\n%s", out)
	for _, name := range []string{"root", "body", "rig"} {
		if !strings.Contains(out, name) {
			t.Errorf("expected rendering to contain node %q", name)
		}
	}
	if !strings.Contains(out, "joint") {
		t.Error("expected rendering to annotate the joint kind")
	}
}

var errKindQuery = errors.New("kind query failed")

// failingKinds wraps a scene and fails every capability check.
type failingKinds struct {
	*memscene.Scene
}

func (f failingKinds) HasKind(n memscene.NodeID, k scene.Kind) (bool, error) {
	return false, errKindQuery
}

func TestHierarchyStringPropagatesKindErrors(t *testing.T) {
	s, root := debugFixture(t)
	_, err := HierarchyString[memscene.NodeID, memscene.PlugID](failingKinds{s}, root)
	if !errors.Is(err, errKindQuery) {
		t.Errorf("expected the host's kind-query error, is %v", err)
	}
}

func TestConnectionsString(t *testing.T) {
	s, _ := debugFixture(t)
	rig, _ := s.Lookup("rig")
	out, err := ConnectionsString[memscene.NodeID, memscene.PlugID](s, rig, false)
	if err != nil {
		t.Fatalf("cannot render connections: %v", err)
	}
	t.Logf("connections =\n%s", out)
	if !strings.Contains(out, "rig") || !strings.Contains(out, "body") {
		t.Errorf("expected rendering to contain rig and body, is\n%s", out)
	}
}

func TestToGraphViz(t *testing.T) {
	s, root := debugFixture(t)
	var sb strings.Builder
	if err := ToGraphViz[memscene.NodeID, memscene.PlugID](s, []memscene.NodeID{root}, &sb); err != nil {
		t.Fatalf("cannot render DOT diagram: %v", err)
	}
	dot := sb.String()
	t.Logf("dot =\n%s", dot)
	if !strings.HasPrefix(dot, "digraph scene {") {
		t.Error("expected DOT output to open a digraph")
	}
	if !strings.Contains(dot, `"root" -> "body"`) {
		t.Error("expected DOT output to contain the hierarchy edge root -> body")
	}
	if !strings.Contains(dot, `"rig" -> "body"`) {
		t.Error("expected DOT output to contain the connection edge rig -> body")
	}
	if !strings.Contains(dot, "rig.out") {
		t.Error("expected DOT output to label the plug connection")
	}
}

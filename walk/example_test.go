package walk_test

import (
	"fmt"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scene"
	"github.com/npillmayer/scenewalk/walk"
)

func ExampleHierarchy() {
	s := memscene.New()
	root, _ := s.AddRoot("root", scene.KindTransform)
	arm, _ := s.AddChild(root, "arm", scene.KindTransform)
	s.AddChild(root, "leg", scene.KindTransform)
	s.AddChild(arm, "hand", scene.KindMesh)

	var g scene.Graph[memscene.NodeID, memscene.PlugID] = s
	w := walk.Hierarchy(g, root).DepthFirst()
	for w.Next() {
		name, _ := s.NodeName(w.Node())
		fmt.Println(name)
	}
	// Output:
	// root
	// arm
	// hand
	// leg
}

func ExampleConnections() {
	s := memscene.New()
	driver, _ := s.AddRoot("driver")
	driven, _ := s.AddRoot("driven")
	out, _ := s.AddPlug(driver, "out")
	in, _ := s.AddPlug(driven, "in")
	s.Connect(out, in)

	var g scene.Graph[memscene.NodeID, memscene.PlugID] = s
	w := walk.Connections(g, driver)
	for w.Next() {
		name, _ := s.NodeName(w.Node())
		fmt.Println(name)
	}
	// Output:
	// driver
	// driven
}

func ExampleTopNodes() {
	s := memscene.New()
	a, _ := s.AddRoot("a")
	b, _ := s.AddChild(a, "b")
	c, _ := s.AddChild(b, "c")

	var g scene.Graph[memscene.NodeID, memscene.PlugID] = s
	w := walk.TopNodes(g, []memscene.NodeID{b, c})
	for w.Next() {
		name, _ := s.NodeName(w.Node())
		fmt.Println(name)
	}
	// Output:
	// b
}

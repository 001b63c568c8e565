/*
Package scenedbg implements helpers to debug scene graphs.

The helpers render the hierarchy and the dependency graph of a scene in
human-readable form: as text trees for terminal output and test logs,
and as GraphViz (DOT) diagrams.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scenedbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/scenewalk/scene"
	"github.com/npillmayer/scenewalk/walk"
	tp "github.com/xlab/treeprint"
)

// HierarchyString renders the downstream hierarchy of root as a text tree.
// Nodes are labeled with their host names, annotated with their capability
// tags.
func HierarchyString[N, P comparable](g scene.Graph[N, P], root N) (string, error) {
	tree := tp.New()
	if err := addHierarchy(g, root, tree); err != nil {
		return "", err
	}
	return tree.String(), nil
}

func addHierarchy[N, P comparable](g scene.Graph[N, P], n N, branch tp.Tree) error {
	name, err := g.NodeName(n)
	if err != nil {
		return err
	}
	children, err := g.Children(n)
	if err != nil {
		return err
	}
	meta, err := kindLabel(g, n)
	if err != nil {
		return err
	}
	var sub tp.Tree
	if meta != "" {
		sub = branch.AddMetaBranch(meta, name)
	} else {
		sub = branch.AddBranch(name)
	}
	for _, ch := range children {
		if err := addHierarchy(g, ch, sub); err != nil {
			return err
		}
	}
	return nil
}

// ConnectionsString renders the dependency fan-out of root as a text tree:
// destinations when walking downstream, sources when walking upstream.
// Nodes reached a second time are marked and not expanded again.
func ConnectionsString[N, P comparable](g scene.Graph[N, P], root N, upstream bool) (string, error) {
	tree := tp.New()
	visited := make(map[N]struct{})
	if err := addConnections(g, root, upstream, tree, visited); err != nil {
		return "", err
	}
	return tree.String(), nil
}

func addConnections[N, P comparable](g scene.Graph[N, P], n N, upstream bool,
	branch tp.Tree, visited map[N]struct{}) error {
	//
	name, err := g.NodeName(n)
	if err != nil {
		return err
	}
	if _, seen := visited[n]; seen {
		branch.AddNode(name + " …")
		return nil
	}
	visited[n] = struct{}{}
	sub := branch.AddBranch(name)
	neighbors, err := walk.Connected(g, n, upstream, !upstream)
	if err != nil {
		return err
	}
	for _, m := range neighbors {
		if err := addConnections(g, m, upstream, sub, visited); err != nil {
			return err
		}
	}
	return nil
}

// kindLabel probes the closed kind enumeration and joins the matching tags,
// leaving out the unspecific dag tag.
func kindLabel[N, P comparable](g scene.Graph[N, P], n N) (string, error) {
	probes := []scene.Kind{
		scene.KindTransform, scene.KindShape, scene.KindJoint,
		scene.KindMesh, scene.KindCurve, scene.KindCamera, scene.KindLight,
	}
	var tags []string
	for _, k := range probes {
		ok, err := g.HasKind(n, k)
		if err != nil {
			return "", err
		}
		if ok {
			tags = append(tags, k.String())
		}
	}
	return strings.Join(tags, ","), nil
}

// --- GraphViz output -------------------------------------------------------

const dotTemplate = `digraph scene {
  graph [rankdir=LR];
  node [shape=box, fontname="Helvetica"];
{{ range .Nodes }}  "{{ . }}";
{{ end }}{{ range .TreeEdges }}  "{{ .From }}" -> "{{ .To }}" [weight=2];
{{ end }}{{ range .PlugEdges }}  "{{ .From }}" -> "{{ .To }}" [style=dashed, color=gray40, fontsize=9, label="{{ .Label }}"];
{{ end }}}
`

type dotEdge struct {
	From, To, Label string
}

type dotScene struct {
	Nodes     []string
	TreeEdges []dotEdge
	PlugEdges []dotEdge
}

// ToGraphViz writes a DOT diagram of the scene below the given roots:
// hierarchy edges solid, plug-level connections dashed and labeled with
// the participating plug names.
func ToGraphViz[N, P comparable](g scene.Graph[N, P], roots []N, w io.Writer) error {
	var d dotScene
	for _, root := range roots {
		h := walk.Hierarchy(g, root)
		for h.Next() {
			n := h.Node()
			name, err := g.NodeName(n)
			if err != nil {
				return err
			}
			d.Nodes = append(d.Nodes, name)
			if err := collectEdges(g, n, name, &d); err != nil {
				return err
			}
		}
		if err := h.Err(); err != nil {
			return err
		}
	}
	tmpl, err := template.New("scene").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("cannot parse DOT template: %w", err)
	}
	return tmpl.Execute(w, d)
}

func collectEdges[N, P comparable](g scene.Graph[N, P], n N, name string, d *dotScene) error {
	children, err := g.Children(n)
	if err != nil {
		return err
	}
	for _, ch := range children {
		chname, err := g.NodeName(ch)
		if err != nil {
			return err
		}
		d.TreeEdges = append(d.TreeEdges, dotEdge{From: name, To: chname})
	}
	plugs, err := walk.PlugsWhere(g, n, scene.ConnectionStatus.HasDestinations)
	if err != nil {
		return err
	}
	for _, p := range plugs {
		pname, err := g.PlugName(p)
		if err != nil {
			return err
		}
		dsts, err := g.PlugDestinations(p)
		if err != nil {
			return err
		}
		for _, dst := range dsts {
			owner, err := g.PlugOwner(dst)
			if err != nil {
				return err
			}
			oname, err := g.NodeName(owner)
			if err != nil {
				return err
			}
			dname, err := g.PlugName(dst)
			if err != nil {
				return err
			}
			d.PlugEdges = append(d.PlugEdges, dotEdge{
				From:  name,
				To:    oname,
				Label: pname + " → " + dname,
			})
		}
	}
	return nil
}

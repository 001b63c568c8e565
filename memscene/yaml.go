package memscene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/scenewalk/scene"
	"gopkg.in/yaml.v3"
)

// A scene description is a YAML document of the following shape:
//
//    nodes:
//      - name: root
//        kinds: [transform]
//        plugs:
//          - visibility
//          - name: translate
//            children: [tx, ty, tz]
//          - name: weights
//            elements: [0, 3, 1]
//        children:
//          - name: shape
//            kinds: [mesh]
//    connections:
//      - source: root.translate.tx
//        destination: shape.offset
//
// Plugs may be given as a plain name (simple plug) or as a mapping with
// either compound children or array element indexes.

type sceneDoc struct {
	Nodes       []nodeDoc `yaml:"nodes"`
	Connections []connDoc `yaml:"connections"`
}

type nodeDoc struct {
	Name     string    `yaml:"name"`
	Kinds    []string  `yaml:"kinds"`
	Plugs    []plugDoc `yaml:"plugs"`
	Children []nodeDoc `yaml:"children"`
}

type plugDoc struct {
	Name     string
	Children []plugDoc
	Elements []uint32
}

type connDoc struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// UnmarshalYAML accepts the string shorthand for simple plugs.
func (d *plugDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&d.Name)
	}
	var full struct {
		Name     string    `yaml:"name"`
		Children []plugDoc `yaml:"children"`
		Elements []uint32  `yaml:"elements"`
	}
	if err := value.Decode(&full); err != nil {
		return err
	}
	d.Name = full.Name
	d.Children = full.Children
	d.Elements = full.Elements
	return nil
}

// Load reads a YAML scene description and builds a Scene from it.
func Load(r io.Reader) (*Scene, error) {
	var doc sceneDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode scene description: %w", err)
	}
	s := New()
	for _, nd := range doc.Nodes {
		if err := s.buildNode(0, nd); err != nil {
			return nil, err
		}
	}
	for _, cd := range doc.Connections {
		src, err := s.resolvePlugPath(cd.Source)
		if err != nil {
			return nil, err
		}
		dst, err := s.resolvePlugPath(cd.Destination)
		if err != nil {
			return nil, err
		}
		if err := s.Connect(src, dst); err != nil {
			return nil, fmt.Errorf("connection %s -> %s: %w", cd.Source, cd.Destination, err)
		}
	}
	return s, nil
}

// LoadFile reads a YAML scene description from a file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (s *Scene) buildNode(parent NodeID, doc nodeDoc) error {
	if doc.Name == "" {
		return fmt.Errorf("scene description contains a node without name")
	}
	kinds := make([]scene.Kind, 0, len(doc.Kinds))
	for _, name := range doc.Kinds {
		k := scene.KindFromString(name)
		if k == scene.KindInvalid {
			return fmt.Errorf("node %q: unknown kind %q", doc.Name, name)
		}
		kinds = append(kinds, k)
	}
	var id NodeID
	var err error
	if parent == 0 {
		id, err = s.AddRoot(doc.Name, kinds...)
	} else {
		id, err = s.AddChild(parent, doc.Name, kinds...)
	}
	if err != nil {
		return err
	}
	for _, pd := range doc.Plugs {
		plug, err := s.AddPlug(id, pd.Name)
		if err != nil {
			return err
		}
		if err := s.buildPlug(plug, pd); err != nil {
			return err
		}
	}
	for _, ch := range doc.Children {
		if err := s.buildNode(id, ch); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) buildPlug(plug PlugID, doc plugDoc) error {
	if len(doc.Children) > 0 && len(doc.Elements) > 0 {
		return fmt.Errorf("plug %q: cannot be both compound and array", doc.Name)
	}
	for _, chd := range doc.Children {
		child, err := s.AddChildPlug(plug, chd.Name)
		if err != nil {
			return err
		}
		if err := s.buildPlug(child, chd); err != nil {
			return err
		}
	}
	for _, logical := range doc.Elements {
		if _, err := s.AddElement(plug, logical); err != nil {
			return err
		}
	}
	return nil
}

// resolvePlugPath resolves 'node.plug.path' notation to a plug handle.
func (s *Scene) resolvePlugPath(path string) (PlugID, error) {
	dot := strings.IndexByte(path, '.')
	if dot <= 0 || dot == len(path)-1 {
		return 0, fmt.Errorf("malformed plug path %q, want 'node.plug'", path)
	}
	node, ok := s.Lookup(path[:dot])
	if !ok {
		return 0, fmt.Errorf("plug path %q: no node named %q", path, path[:dot])
	}
	plug, ok := s.FindPlug(node, path[dot+1:])
	if !ok {
		return 0, fmt.Errorf("plug path %q: no such plug on node %q", path, path[:dot])
	}
	return plug, nil
}

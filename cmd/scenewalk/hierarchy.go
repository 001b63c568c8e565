package main

import (
	"fmt"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scene"
	"github.com/npillmayer/scenewalk/scenedbg"
	"github.com/npillmayer/scenewalk/walk"
	"github.com/spf13/cobra"
)

var hierarchyCmd = &cobra.Command{
	Use:   "hierarchy <node>",
	Short: "Walk the parent/child hierarchy of a node",
	Args:  cobra.ExactArgs(1),
	RunE:  runHierarchy,
}

func init() {
	hierarchyCmd.Flags().Bool("depth-first", false, "depth-first instead of breadth-first order")
	hierarchyCmd.Flags().Bool("upstream", false, "walk towards parents instead of children")
	hierarchyCmd.Flags().StringSlice("stop", nil, "stopper nodes: included, but not expanded")
	hierarchyCmd.Flags().String("kind", "", "only list nodes of this kind")
	hierarchyCmd.Flags().Bool("tree", false, "render as a tree instead of a flat list")
	rootCmd.AddCommand(hierarchyCmd)
}

func runHierarchy(cmd *cobra.Command, args []string) error {
	s, err := loadScene(cmd)
	if err != nil {
		return err
	}
	root, err := nodeByName(s, args[0])
	if err != nil {
		return err
	}
	if tree, _ := cmd.Flags().GetBool("tree"); tree {
		if err := rejectWithTree(cmd, "depth-first", "upstream", "stop", "kind"); err != nil {
			return err
		}
		out, err := scenedbg.HierarchyString[memscene.NodeID, memscene.PlugID](s, root)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	w := walk.Hierarchy[memscene.NodeID, memscene.PlugID](s, root)
	if err := configureWalker(cmd, s, w); err != nil {
		return err
	}
	return drain(cmd, s, w)
}

// rejectWithTree refuses walker flags that the tree renderers ignore.
func rejectWithTree(cmd *cobra.Command, flags ...string) error {
	for _, name := range flags {
		if cmd.Flags().Changed(name) {
			return fmt.Errorf("--tree cannot be combined with --%s", name)
		}
	}
	return nil
}

// configureWalker applies the shared walker flags.
func configureWalker(cmd *cobra.Command, s *memscene.Scene,
	w *walk.Walker[memscene.NodeID, memscene.PlugID]) error {
	//
	if df, _ := cmd.Flags().GetBool("depth-first"); df {
		w.DepthFirst()
	}
	if up, _ := cmd.Flags().GetBool("upstream"); up {
		w.Upstream()
	}
	stops, _ := cmd.Flags().GetStringSlice("stop")
	for _, name := range stops {
		n, err := nodeByName(s, name)
		if err != nil {
			return err
		}
		w.StopAt(n)
	}
	if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
		k := scene.KindFromString(kind)
		if k == scene.KindInvalid {
			return fmt.Errorf("unknown kind %q", kind)
		}
		w.OnlyKind(k)
	}
	return nil
}

// drain pulls the walker dry, printing one node name per line.
func drain(cmd *cobra.Command, s *memscene.Scene,
	w *walk.Walker[memscene.NodeID, memscene.PlugID]) error {
	//
	for w.Next() {
		name, err := s.NodeName(w.Node())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return w.Err()
}

package main

import (
	"fmt"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scenedbg"
	"github.com/npillmayer/scenewalk/walk"
	"github.com/spf13/cobra"
)

var connectionsCmd = &cobra.Command{
	Use:   "connections <node>",
	Short: "Walk the attribute dependency graph of a node",
	Args:  cobra.ExactArgs(1),
	RunE:  runConnections,
}

func init() {
	connectionsCmd.Flags().Bool("depth-first", false, "depth-first instead of breadth-first order")
	connectionsCmd.Flags().Bool("upstream", false, "walk towards sources instead of destinations")
	connectionsCmd.Flags().StringSlice("stop", nil, "stopper nodes: included, but not expanded")
	connectionsCmd.Flags().String("kind", "", "only list nodes of this kind")
	connectionsCmd.Flags().Bool("tree", false, "render the fan-out as a tree")
	rootCmd.AddCommand(connectionsCmd)
}

func runConnections(cmd *cobra.Command, args []string) error {
	s, err := loadScene(cmd)
	if err != nil {
		return err
	}
	root, err := nodeByName(s, args[0])
	if err != nil {
		return err
	}
	upstream, _ := cmd.Flags().GetBool("upstream")
	if tree, _ := cmd.Flags().GetBool("tree"); tree {
		if err := rejectWithTree(cmd, "depth-first", "stop", "kind"); err != nil {
			return err
		}
		out, err := scenedbg.ConnectionsString[memscene.NodeID, memscene.PlugID](s, root, upstream)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	w := walk.Connections[memscene.NodeID, memscene.PlugID](s, root)
	if err := configureWalker(cmd, s, w); err != nil {
		return err
	}
	return drain(cmd, s, w)
}

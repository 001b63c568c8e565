package main

import (
	"fmt"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/walk"
	"github.com/spf13/cobra"
)

var topnodesCmd = &cobra.Command{
	Use:   "topnodes <node>...",
	Short: "Reduce a collection of nodes to its topmost members",
	Long: `topnodes prints the members of the given node collection that have no
ancestor in the collection. By default only direct parents are checked;
with --sparse a node is dropped as soon as any ancestor anywhere in the
hierarchy is part of the collection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTopNodes,
}

func init() {
	topnodesCmd.Flags().Bool("sparse", false, "check the full upstream hierarchy")
	rootCmd.AddCommand(topnodesCmd)
}

func runTopNodes(cmd *cobra.Command, args []string) error {
	s, err := loadScene(cmd)
	if err != nil {
		return err
	}
	nodes := make([]memscene.NodeID, 0, len(args))
	for _, name := range args {
		n, err := nodeByName(s, name)
		if err != nil {
			return err
		}
		nodes = append(nodes, n)
	}
	w := walk.TopNodes[memscene.NodeID, memscene.PlugID](s, nodes)
	if sparse, _ := cmd.Flags().GetBool("sparse"); sparse {
		w.Sparse()
	}
	for w.Next() {
		name, err := s.NodeName(w.Node())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return w.Err()
}

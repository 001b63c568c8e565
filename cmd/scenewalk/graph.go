package main

import (
	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scenedbg"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Emit the whole scene as a GraphViz (DOT) diagram",
	Args:  cobra.NoArgs,
	RunE:  runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, _ []string) error {
	s, err := loadScene(cmd)
	if err != nil {
		return err
	}
	return scenedbg.ToGraphViz[memscene.NodeID, memscene.PlugID](s, s.Roots(), cmd.OutOrStdout())
}

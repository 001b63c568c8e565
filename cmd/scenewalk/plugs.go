package main

import (
	"fmt"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/npillmayer/scenewalk/scene"
	"github.com/npillmayer/scenewalk/walk"
	"github.com/spf13/cobra"
)

var plugsCmd = &cobra.Command{
	Use:   "plugs <node>",
	Short: "List the plugs of a node and their connection state",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlugs,
}

func init() {
	plugsCmd.Flags().Bool("connected", false, "only list plugs with at least one connection")
	rootCmd.AddCommand(plugsCmd)
}

func runPlugs(cmd *cobra.Command, args []string) error {
	s, err := loadScene(cmd)
	if err != nil {
		return err
	}
	node, err := nodeByName(s, args[0])
	if err != nil {
		return err
	}
	var pred func(scene.ConnectionStatus) bool
	if connected, _ := cmd.Flags().GetBool("connected"); connected {
		pred = scene.ConnectionStatus.Connected
	}
	plugs, err := walk.PlugsWhere[memscene.NodeID, memscene.PlugID](s, node, pred)
	if err != nil {
		return err
	}
	for _, p := range plugs {
		name, err := s.PlugName(p)
		if err != nil {
			return err
		}
		status, err := walk.Status[memscene.NodeID, memscene.PlugID](s, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", name, status)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/scenewalk/memscene"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scenewalk",
	Short: "scenewalk inspects scene description files",
	Long: `scenewalk loads a YAML scene description and prints traversals of it:
the node hierarchy, the attribute dependency graph, top-node reductions
and plug connection states.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("scene", "", "YAML scene description file")
	rootCmd.MarkPersistentFlagRequired("scene")
}

// loadScene reads the scene given by the --scene flag.
func loadScene(cmd *cobra.Command) (*memscene.Scene, error) {
	path, err := cmd.Flags().GetString("scene")
	if err != nil {
		return nil, err
	}
	return memscene.LoadFile(path)
}

// nodeByName resolves a node argument to its handle.
func nodeByName(s *memscene.Scene, name string) (memscene.NodeID, error) {
	id, ok := s.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("no node named %q in scene", name)
	}
	return id, nil
}

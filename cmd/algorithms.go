package cmd

import (
	"fmt"

	"github.com/jparise/fsfind/internal/registry"
	"github.com/spf13/cobra"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available search algorithms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engines, err := discoverEngines()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range registry.Names(engines) {
			marker := " "
			if name == algorithm {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
		return nil
	},
}

package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Emit a DOT rendering of the build graph",
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.Graph(c.opts, os.Stdout)
		},
	}
}

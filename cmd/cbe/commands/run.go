package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build every stale step in the manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := c.opts
			opts.DryRun = dryRun
			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print planned actions without invoking any tool")
	return cmd
}

package commands

import (
	"os"

	"github.com/spf13/cobra"
)

func (c *CLI) newCompDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compdb",
		Short: "Emit a JSON compilation database for the manifest's compile steps",
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.CompDB(c.opts, os.Stdout)
		},
	}
}

// Package commands implements the CLI commands for the cbe build tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/foundryhq/cbe/internal/app"
)

// CLI represents the command line interface for cbe.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	opts    app.Options
}

// New creates a new CLI instance bound to a.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "cbe",
		Short:         "A parallel incremental build engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&c.opts.Dir, "dir", "d", "", "change to this directory before doing anything else")
	rootCmd.PersistentFlags().StringVarP(&c.opts.ManifestFile, "file", "f", "", "path to the build manifest (default \"build.cbe\")")
	rootCmd.PersistentFlags().StringVarP(&c.opts.EstimatesFile, "estimates", "e", "", "path to the work-estimates file")
	rootCmd.PersistentFlags().IntVarP(&c.opts.Jobs, "jobs", "j", 0, "number of parallel workers (default: number of CPUs)")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newCompDBCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with ctx.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

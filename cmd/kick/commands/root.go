// Package commands implements the CLI commands for the kick bootstrap.
package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/kick/internal/adapters/config"
	"go.trai.ch/kick/internal/app"
	"go.trai.ch/kick/internal/build"
)

// CLI represents the command line interface for kick.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	// args are the raw arguments, handed unchanged to a rebuilt binary.
	args []string
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "kick",
		Short: "Rebuild this bootstrap if its source changed, then build the project",
		Long: `kick checks whether its own binary is older than its source file.
If it is, kick recompiles itself, runs the new binary and exits.
Otherwise it runs the project build command.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		args:    os.Args[1:],
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonLogs, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		c.app.SetJSONLogs(jsonLogs)
		return nil
	}
	rootCmd.RunE = c.runBuild

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.args = args
	c.rootCmd.SetArgs(args)
}

func (c *CLI) runOptions(cmd *cobra.Command) (app.RunOptions, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return app.RunOptions{}, err
	}
	return app.RunOptions{ConfigPath: configPath, Args: c.args}, nil
}

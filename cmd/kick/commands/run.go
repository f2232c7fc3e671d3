package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	opts, err := c.runOptions(cmd)
	if err != nil {
		return err
	}
	return c.app.Run(cmd.Context(), opts)
}

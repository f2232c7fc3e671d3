package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether the binary is older than its source, without rebuilding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.runOptions(cmd)
			if err != nil {
				return err
			}
			staleness, err := c.app.Check(cmd.Context(), opts)
			if err != nil {
				return err
			}

			verdict := "fresh"
			if staleness.Stale() {
				verdict = "stale"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (binary %d, source %d)\n",
				verdict, staleness.BinaryModTime, staleness.SourceModTime)
			return err
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "ciusage <directory>",
		Short: "Summarize license usage across collectinfo bundles",
		Long: "ciusage runs `asadm -e summary` against every collectinfo bundle in a directory, " +
			"scrapes the cluster name and latest license usage, and writes them to a spreadsheet.\n\n" +
			"Subcommand names win over directory names: to summarize a directory called\n" +
			"history, init, mcp or version, pass it as a path such as ./history.",
		Args:          exactlyOneDirectory,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, args[0], opts)
		},
	}

	opts.bind(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

func exactlyOneDirectory(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <directory>", cmd.Root().Name())
	}
	return nil
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

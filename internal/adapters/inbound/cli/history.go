package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openkraft/ciusage/internal/adapters/outbound/history"
	"github.com/openkraft/ciusage/internal/adapters/outbound/tui"
	"github.com/openkraft/ciusage/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history <directory>",
		Short: "Show recorded runs for a bundle directory",
		Long:  "Show the runs recorded with --record, oldest first, with the change in total license usage.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", domain.ErrPathNotFound, dir)
			}

			entries, err := history.New().Load(dir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.RunEntry{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}

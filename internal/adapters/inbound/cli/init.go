package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/ciusage/internal/adapters/outbound/config"
	"github.com/openkraft/ciusage/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		tool  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Generate a .ciusage.yaml configuration file",
		Long:  "Create a .ciusage.yaml with the default settings in a bundle directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			if tool != "" {
				cfg.Tool = tool
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Administration tool to record in the config")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .ciusage.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) string {
	return fmt.Sprintf(`# ciusage configuration

tool: %s
output_file: %s
sheet_name: %s

# archives: only .tgz, .tar.gz, .tar, .gz and .zip files
# all: every regular file in the directory
classify_policy: %s

# timeout: 10m
# cache: true
# record_history: true
`, cfg.Tool, cfg.OutputFile, quoteYAML(cfg.SheetName), cfg.ClassifyPolicy)
}

func quoteYAML(s string) string {
	return fmt.Sprintf("%q", s)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dxlabs/dxindex/internal/store"
)

// NewStatsCommand creates the stats command: print the persisted global
// rolling totals.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the global aggregate totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			st, err := store.Open(cfg.StorePath)
			if err != nil {
				return err
			}
			defer st.Close()

			g, err := st.GetGlobalStats(cmd.Context())
			if err != nil {
				return err
			}
			if g == nil {
				return fmt.Errorf("no events processed yet: store %s has no stats row", cfg.StorePath)
			}

			return writeStats(cmd.OutOrStdout(), opts.Format, g)
		},
	}

	return cmd
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dxlabs/dxindex/internal/engine"
	"github.com/dxlabs/dxindex/internal/feed"
	"github.com/dxlabs/dxindex/internal/store"
)

// RunResult summarizes one feed run for output.
type RunResult struct {
	Run          string `json:"run"`
	Processed    int64  `json:"processed"`
	Rejected     int    `json:"rejected"`
	Failed       uint64 `json:"failed"`
	MintsSkipped uint64 `json:"mints_skipped"`
	BurnsSkipped uint64 `json:"burns_skipped"`
}

// NewRunCommand creates the run command: drive a JSONL event feed through
// the engine into the entity store.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	var feedPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process an event feed into the entity store",
		Long: "Reads a JSON Lines event feed in order and applies every event to the " +
			"entity store, one at a time. Use \"-\" to read the feed from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			in := os.Stdin
			if feedPath != "-" {
				f, err := os.Open(feedPath)
				if err != nil {
					return fmt.Errorf("open feed: %w", err)
				}
				defer f.Close()
				in = f
			}

			st, err := store.Open(cfg.StorePath)
			if err != nil {
				return err
			}
			defer st.Close()

			runToken := uuid.Must(uuid.NewV7()).String()
			eng := engine.New(st,
				engine.WithFeePercent(cfg.FeePercent),
				engine.WithRunToken(runToken),
			)

			done := make(chan error, 1)
			go func() {
				done <- eng.Run(cmd.Context())
			}()

			rejected := 0
			reader := feed.NewReader(in)
			for {
				ev, err := reader.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					// A malformed line rejects that event only; the feed
					// stays ordered for everything behind it.
					rejected++
					slog.Error("event rejected", "run", runToken, "error", err)
					continue
				}
				if !eng.Enqueue(ev) {
					break
				}
			}

			eng.Stop()
			if err := <-done; err != nil && !errors.Is(err, cmd.Context().Err()) {
				return err
			}

			m := eng.Metrics()
			result := RunResult{
				Run:          runToken,
				Processed:    m.Processed,
				Rejected:     rejected,
				Failed:       m.Failed,
				MintsSkipped: m.MintsSkipped,
				BurnsSkipped: m.BurnsSkipped,
			}
			return writeRunResult(cmd.OutOrStdout(), opts.Format, result)
		},
	}

	cmd.Flags().StringVar(&feedPath, "feed", "-", "path to JSONL event feed (\"-\" for stdin)")

	return cmd
}

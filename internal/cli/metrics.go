package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/raptorflow/internal/observability"
)

var (
	metricsJSON  bool
	metricsSince string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display planning metrics",
	Long: `Display metrics derived from the event log: Moves launched per category,
planned days, task completions and reopenings, and samples generated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MetricsCalc == nil {
			return fmt.Errorf("metrics calculator not initialized")
		}

		since, err := observability.ParseSince(metricsSince, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("parsing --since: %w", err)
		}
		metrics, err := MetricsCalc.Calculate(since)
		if err != nil {
			return fmt.Errorf("calculating metrics: %w", err)
		}

		out := cmd.OutOrStdout()
		if metricsJSON {
			data, err := json.MarshalIndent(metrics, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting metrics as JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Metrics (since %s)\n\n", since.Format(time.DateOnly))
		fmt.Fprintf(out, "  %-22s %d\n", "Events recorded:", metrics.EventCount)
		fmt.Fprintf(out, "  %-22s %d\n", "Moves launched:", metrics.MovesLaunched)
		fmt.Fprintf(out, "  %-22s %d\n", "Days planned:", metrics.PlannedDays)
		fmt.Fprintf(out, "  %-22s %d\n", "Tasks completed:", metrics.TasksCompleted)
		fmt.Fprintf(out, "  %-22s %d\n", "Tasks reopened:", metrics.TasksReopened)
		fmt.Fprintf(out, "  %-22s %d\n", "Samples generated:", metrics.SamplesGenerated)

		if len(metrics.MovesByCategory) > 0 {
			fmt.Fprintln(out, "\n  Moves by category:")
			categories := make([]string, 0, len(metrics.MovesByCategory))
			for c := range metrics.MovesByCategory {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			for _, c := range categories {
				fmt.Fprintf(out, "    %-18s %d\n", c+":", metrics.MovesByCategory[c])
			}
		}

		if metrics.OldestEvent != nil {
			fmt.Fprintf(out, "\n  %-22s %s\n", "Oldest event:", metrics.OldestEvent.Format(time.RFC3339))
		}
		if metrics.NewestEvent != nil {
			fmt.Fprintf(out, "  %-22s %s\n", "Newest event:", metrics.NewestEvent.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "Output metrics as JSON")
	metricsCmd.Flags().StringVar(&metricsSince, "since", observability.DefaultWindow, "Time window for metrics (e.g. 7d, 30d, 24h)")
	rootCmd.AddCommand(metricsCmd)
}

package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/internal/observability"
	"go.uber.org/zap"
)

// defaultSampleContext is used when --context is not given.
const defaultSampleContext = "Fill the pipeline with demo bookings before quarter end"

var (
	sampleSeed     int64
	sampleContext  string
	sampleAudience string
	sampleJSON     bool
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate an illustrative sample Move",
	Long: `Generate a randomized sample Move for demos. The category is guessed from
keywords in the context. The same seed always yields the same sample; the
default seed comes from sample.seed in .rfconfig.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := workspaceConfig().SampleSeed
		if cmd.Flags().Changed("seed") {
			seed = sampleSeed
		}

		gen := core.NewSampleGenerator(seed)
		brief := gen.SampleBrief(sampleContext, sampleAudience)
		days := gen.SampleExecution(brief)
		Logger.Debug("generated sample", zap.Int64("seed", seed), zap.String("category", string(brief.Category)))

		if EventLog != nil {
			err := EventLog.Write(observability.Event{
				Time:    time.Now().UTC(),
				Level:   observability.LevelInfo,
				Type:    observability.EventSampleGenerated,
				Message: "sample move generated",
				Data: map[string]any{
					"seed":     seed,
					"category": string(brief.Category),
					"days":     len(days),
				},
			})
			if err != nil {
				Logger.Warn("recording sample event", zap.Error(err))
			}
		}

		out := cmd.OutOrStdout()
		if sampleJSON {
			data, err := json.MarshalIndent(planJSON{Brief: brief, Execution: days}, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting sample as JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprint(out, renderBrief(brief))
		fmt.Fprint(out, renderExecution(days, false))
		return nil
	},
}

func init() {
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 1, "Random seed (default from .rfconfig)")
	sampleCmd.Flags().StringVar(&sampleContext, "context", defaultSampleContext, "Context the sample is built from")
	sampleCmd.Flags().StringVar(&sampleAudience, "audience", "", "Audience name")
	sampleCmd.Flags().BoolVar(&sampleJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(sampleCmd)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/raptorflow/internal/core"
	"github.com/valter-silva-au/raptorflow/pkg/models"
	"go.uber.org/zap"
)

var (
	moveCategory   string
	moveContext    string
	moveAudience   string
	moveTime       string
	moveOutcome    string
	moveOffer      string
	moveResistance string
	moveDuration   int
	moveDryRun     bool
	moveJSON       bool

	moveListCategory string
)

type planJSON struct {
	MoveID    string                `json:"move_id,omitempty"`
	Brief     models.Brief          `json:"brief"`
	Execution []models.ExecutionDay `json:"execution"`
}

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Plan, launch and track Moves",
}

var moveNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Synthesize a Move from flags and launch it",
	Long: `Synthesize a Move brief and execution plan from the given category,
context and clarification answers, print the preview, and launch it.

Use --dry-run to print the preview without saving.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := planInputFromFlags(cmd.Context())
		if err != nil {
			return err
		}
		brief, err := core.SynthesizeBrief(in)
		if err != nil {
			return err
		}
		days, err := core.SynthesizeExecutionPlan(brief, in)
		if err != nil {
			return err
		}
		Logger.Debug("synthesized move",
			zap.String("category", string(in.Category)),
			zap.String("audience", in.Audience()),
			zap.Int("days", len(days)))

		out := cmd.OutOrStdout()
		plan := planJSON{Brief: brief, Execution: days}
		if !moveJSON {
			fmt.Fprint(out, renderBrief(brief))
			fmt.Fprint(out, renderExecution(days, false))
		}

		if !moveDryRun {
			if MoveMgr == nil {
				return fmt.Errorf("move manager not initialized")
			}
			move, err := MoveMgr.Launch(models.SourceCLI, in.Category, in.Context, brief, days)
			if err != nil {
				return err
			}
			Logger.Info("move launched", zap.String("move_id", move.ID))
			plan.MoveID = move.ID
			if !moveJSON {
				fmt.Fprintf(out, "\nLaunched move %s\n", move.ID)
			}
		}

		if moveJSON {
			data, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting move as JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
		}
		return nil
	},
}

var moveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List launched Moves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MoveMgr == nil {
			return fmt.Errorf("move manager not initialized")
		}
		filter := core.MoveFilter{WorkspaceID: workspaceID()}
		if moveListCategory != "" {
			c, err := models.ParseCategory(moveListCategory)
			if err != nil {
				return err
			}
			filter.Category = c
		}

		moves, err := MoveMgr.ListMoves(filter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(moves) == 0 {
			fmt.Fprintln(out, "No moves launched yet. Try: rf move wizard")
			return nil
		}
		fmt.Fprintf(out, "%-10s %-10s %-9s %-11s %s\n", "ID", "CATEGORY", "PROGRESS", "CREATED", "NAME")
		for i := range moves {
			m := &moves[i]
			done, total := m.Progress()
			fmt.Fprintf(out, "%-10s %-10s %-9s %-11s %s\n",
				shortID(m.ID), m.Category, fmt.Sprintf("%d/%d", done, total),
				m.Created.Format(time.DateOnly), m.Brief.Name)
		}
		return nil
	},
}

var moveShowCmd = &cobra.Command{
	Use:   "show <move-id>",
	Short: "Show a Move's brief and tasks",
	Long:  "Show a launched Move. The id may be abbreviated to any unique prefix.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if MoveMgr == nil {
			return fmt.Errorf("move manager not initialized")
		}
		id, err := resolveMoveID(args[0])
		if err != nil {
			return err
		}
		move, err := MoveMgr.GetMove(id)
		if err != nil {
			return err
		}

		if moveJSON {
			data, err := json.MarshalIndent(move, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting move as JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), renderMove(move))
		return nil
	},
}

var moveToggleCmd = &cobra.Command{
	Use:   "toggle <move-id> <task-id>",
	Short: "Flip a task between pending and done",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if MoveMgr == nil {
			return fmt.Errorf("move manager not initialized")
		}
		id, err := resolveMoveID(args[0])
		if err != nil {
			return err
		}
		move, err := MoveMgr.ToggleTask(id, args[1])
		if err != nil {
			return err
		}

		status := models.TaskPending
		for i := range move.Execution {
			for _, t := range move.Execution[i].Tasks() {
				if t.ID == args[1] {
					status = t.Status
				}
			}
		}
		done, total := move.Progress()
		fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s (%d/%d done)\n", args[1], status, done, total)
		return nil
	},
}

func planInputFromFlags(ctx context.Context) (core.PlanInput, error) {
	if moveCategory == "" {
		return core.PlanInput{}, fmt.Errorf("--category is required (one of: ignite, capture, authority, repair, rally)")
	}
	category, err := models.ParseCategory(strings.ToLower(strings.TrimSpace(moveCategory)))
	if err != nil {
		return core.PlanInput{}, err
	}
	if strings.TrimSpace(moveContext) == "" {
		return core.PlanInput{}, fmt.Errorf("--context is required")
	}

	cfg := workspaceConfig()
	tc := cfg.DefaultTimeCommitment
	if moveTime != "" {
		if tc, err = models.ParseTimeCommitment(moveTime); err != nil {
			return core.PlanInput{}, err
		}
	}

	duration := cfg.DefaultDuration
	if moveDuration != 0 {
		duration = moveDuration
	}
	if duration < 1 || duration > core.MaxDuration {
		return core.PlanInput{}, fmt.Errorf("--duration must be between 1 and %d, got %d", core.MaxDuration, duration)
	}

	audience := moveAudience
	if audience == "" {
		audience = cfg.DefaultAudience
	}
	return core.PlanInput{
		Category:     category,
		Context:      moveContext,
		AudienceName: resolveAudienceName(ctx, audience),
		Answers: models.Answers{
			Outcome:    moveOutcome,
			Offer:      moveOffer,
			Resistance: moveResistance,
		},
		TimeCommitment: tc,
		Duration:       duration,
	}, nil
}

// resolveAudienceName maps a stored audience id to its name. Anything else
// is used verbatim as the audience name.
func resolveAudienceName(ctx context.Context, value string) string {
	if value == "" || Audiences == nil {
		return value
	}
	if ctx == nil {
		ctx = context.Background()
	}
	list, err := Audiences.ListAudiences(ctx, workspaceID())
	if err != nil {
		Logger.Warn("listing audiences", zap.Error(err))
		return value
	}
	for _, a := range list {
		if a.ID == value {
			return a.Name
		}
	}
	return value
}

// resolveMoveID expands a unique id prefix to the full Move id.
func resolveMoveID(prefix string) (string, error) {
	moves, err := MoveMgr.ListMoves(core.MoveFilter{})
	if err != nil {
		return "", err
	}
	var matches []string
	for i := range moves {
		if moves[i].ID == prefix {
			return prefix, nil
		}
		if strings.HasPrefix(moves[i].ID, prefix) {
			matches = append(matches, moves[i].ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", core.ErrMoveNotFound, prefix)
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("move id %q is ambiguous (%d matches)", prefix, len(matches))
}

func init() {
	f := moveNewCmd.Flags()
	f.StringVarP(&moveCategory, "category", "c", "", "Move category: ignite, capture, authority, repair, rally")
	f.StringVar(&moveContext, "context", "", "Free-text description of the situation")
	f.StringVarP(&moveAudience, "audience", "a", "", "Audience name or stored audience id")
	f.StringVarP(&moveTime, "time", "t", "", "Daily time commitment: 15m, 30m, 1h+")
	f.StringVar(&moveOutcome, "outcome", "", "Measurable result the Move should produce")
	f.StringVar(&moveOffer, "offer", "", "What is being offered")
	f.StringVar(&moveResistance, "resistance", "", "Expected objection to address")
	f.IntVarP(&moveDuration, "duration", "d", 0, "Plan length in days (default from .rfconfig)")
	f.BoolVar(&moveDryRun, "dry-run", false, "Print the preview without launching")
	f.BoolVar(&moveJSON, "json", false, "Output as JSON")

	moveListCmd.Flags().StringVarP(&moveListCategory, "category", "c", "", "Only list Moves of this category")
	moveShowCmd.Flags().BoolVar(&moveJSON, "json", false, "Output as JSON")

	moveCmd.AddCommand(moveNewCmd, moveListCmd, moveShowCmd, moveToggleCmd)
	rootCmd.AddCommand(moveCmd)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	rfmcp "github.com/valter-silva-au/raptorflow/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the rf MCP server on stdio",
	Long: `Start the rf MCP (Model Context Protocol) server on stdio transport.

The server exposes the planner as tools: list_categories, synthesize_move,
launch_move, list_moves, toggle_task and get_metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MoveMgr == nil {
			return fmt.Errorf("move manager not initialized")
		}
		cfg := workspaceConfig()
		srv := rfmcp.NewServer(MoveMgr, MetricsCalc, rfmcp.Defaults{
			Audience:       resolveAudienceName(cmd.Context(), cfg.DefaultAudience),
			TimeCommitment: cfg.DefaultTimeCommitment,
			Duration:       cfg.DefaultDuration,
		}, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

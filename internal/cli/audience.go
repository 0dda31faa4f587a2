package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/raptorflow/pkg/models"
)

var (
	audienceID          string
	audienceDescription string
)

var audienceCmd = &cobra.Command{
	Use:   "audience",
	Short: "Manage the workspace's target audiences",
}

var audienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audiences for the current workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Audiences == nil {
			return fmt.Errorf("audience store not initialized")
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		list, err := Audiences.ListAudiences(ctx, workspaceID())
		if err != nil {
			return fmt.Errorf("listing audiences: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintf(out, "No audiences in workspace %s. Moves will target %q.\n", workspaceID(), models.GeneralAudience)
			return nil
		}
		fmt.Fprintf(out, "%-24s %-28s %s\n", "ID", "NAME", "DESCRIPTION")
		for _, a := range list {
			fmt.Fprintf(out, "%-24s %-28s %s\n", a.ID, a.Name, a.Description)
		}
		return nil
	},
}

var audienceAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an audience to the current workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Audiences == nil {
			return fmt.Errorf("audience store not initialized")
		}
		added, err := Audiences.AddAudience(workspaceID(), models.Audience{
			ID:          audienceID,
			Name:        args[0],
			Description: audienceDescription,
		})
		if err != nil {
			return err
		}
		if err := Audiences.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added audience %s (%s)\n", added.Name, added.ID)
		return nil
	},
}

func init() {
	audienceAddCmd.Flags().StringVar(&audienceID, "id", "", "Audience id (default derived from the name)")
	audienceAddCmd.Flags().StringVar(&audienceDescription, "description", "", "Short description")
	audienceCmd.AddCommand(audienceListCmd, audienceAddCmd)
	rootCmd.AddCommand(audienceCmd)
}

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/raptorflow/internal/core"
)

var categoriesJSON bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the Move categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := core.Profiles()
		out := cmd.OutOrStdout()
		if categoriesJSON {
			data, err := json.MarshalIndent(profiles, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting categories as JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, p := range profiles {
			fmt.Fprintf(out, "%s %s\n", headerStyle.Render(p.Name), labelStyle.Render("("+string(p.Category)+")"))
			fmt.Fprintf(out, "  %s\n", p.Tagline)
			fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Goal:   "), p.DefaultGoal)
			fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Tone:   "), p.Tone)
			fmt.Fprintf(out, "  %s %s\n\n", labelStyle.Render("Metrics:"), strings.Join(p.Metrics[:], ", "))
		}
		return nil
	},
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(categoriesCmd)
}

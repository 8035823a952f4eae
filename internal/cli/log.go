package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hourtrack/internal/core"
)

func newLogCmd(rt *runtime) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "log ACTIVITY DURATION",
		Short: "Log an activity done today",
		Long: "Log an activity done today. DURATION is minutes (\"45\") or " +
			"hours:minutes (\"1:30\"); a single session is capped at 300 minutes.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := core.ParseMinutes(args[1])
			if err != nil {
				return fmt.Errorf("duration %q: use minutes or HH:MM", args[1])
			}
			if minutes > core.MaxSessionMinutes {
				return fmt.Errorf("duration %d exceeds the %d minute session limit", minutes, core.MaxSessionMinutes)
			}

			rec, goalReached, err := rt.app.Tracker.LogActivity(cmd.Context(), rt.user, category, args[0], minutes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %q (%s, %s) for %s\n",
				rec.Activity, rec.Category, rec.Date, core.FormatMinutes(rec.TimeSpent))
			if goalReached {
				fmt.Fprintln(cmd.OutOrStdout(), "Congratulations! You've reached your daily goal.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "",
		fmt.Sprintf("category (%v or free text, default %q)", core.Categories, core.DefaultCategory))
	return cmd
}

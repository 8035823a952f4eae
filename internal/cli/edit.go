package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hourtrack/internal/core"
)

func newEditCmd(rt *runtime) *cobra.Command {
	var (
		activity string
		duration string
	)
	cmd := &cobra.Command{
		Use:   "edit POSITION",
		Short: "Edit a record by its history position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			if activity == "" && duration == "" {
				return fmt.Errorf("nothing to change: pass --activity and/or --minutes")
			}

			// Unset flags keep the record's current values.
			records, err := rt.app.Tracker.History(cmd.Context(), rt.user)
			if err != nil {
				return err
			}
			if pos > len(records) {
				return fmt.Errorf("no record at position %d", pos)
			}
			current := records[pos-1]
			if activity == "" {
				activity = current.Activity
			}
			minutes := current.TimeSpent
			if duration != "" {
				minutes, err = core.ParseMinutes(duration)
				if err != nil {
					return err
				}
				if minutes > core.MaxSessionMinutes {
					return fmt.Errorf("duration exceeds %d minutes", core.MaxSessionMinutes)
				}
			}

			if err := rt.app.Tracker.EditActivity(cmd.Context(), rt.user, pos-1, activity, minutes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated #%d: %s (%s)\n",
				pos, activity, core.FormatMinutes(minutes))
			return nil
		},
	}
	cmd.Flags().StringVarP(&activity, "activity", "a", "", "new activity description")
	cmd.Flags().StringVarP(&duration, "minutes", "m", "", "new duration (minutes or H:MM)")
	return cmd
}

func newDeleteCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete POSITION",
		Short: "Delete a record by its history position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd, fmt.Sprintf("Delete record #%d?", pos)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := rt.app.Tracker.DeleteActivity(cmd.Context(), rt.user, pos-1); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record #%d\n", pos)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func newClearCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history for the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Clear all history? This cannot be undone.") {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			if err := rt.app.Tracker.ClearHistory(cmd.Context(), rt.user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func parsePosition(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil || pos < 1 {
		return 0, fmt.Errorf("position must be a positive number, got %q", s)
	}
	return pos, nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hourtrack/internal/core"
	"hourtrack/internal/stats"
)

func newTodayCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's activities and goal progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := rt.app.Tracker.Today(cmd.Context(), rt.user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No activity logged today.")
			} else {
				printToday(out, records)
			}

			prog, err := rt.app.Tracker.Progress(cmd.Context(), rt.user)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nCompleted: %s, Remaining: %s (goal %s)\n",
				core.FormatMinutes(prog.CompletedMinutes),
				core.FormatMinutes(prog.RemainingMinutes),
				core.FormatMinutes(prog.GoalMinutes))
			return nil
		},
	}
}

func newHistoryCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show all logged activities with their positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := rt.app.Tracker.History(cmd.Context(), rt.user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No history yet.")
				return nil
			}
			printHistory(out, records)
			return nil
		},
	}
}

func newStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show historical statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := rt.app.Tracker.Stats(cmd.Context(), rt.user)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Activities: %d\n", sum.TotalRecords)
			fmt.Fprintf(out, "Unique Activities: %d\n", sum.UniqueActivities)
			fmt.Fprintf(out, "Total Time Spent: %s\n", core.FormatMinutes(sum.TotalMinutes))
			fmt.Fprintf(out, "Total Days Logged: %d\n", sum.DaysLogged)
			fmt.Fprintf(out, "Days Meeting Daily Goal: %d\n", sum.DaysMeetingGoal)
			return nil
		},
	}
}

// printHistory lists records with their one-based positions, the handle
// edit and delete take.
func printHistory(w io.Writer, records []core.Record) {
	fmt.Fprintf(w, "%-4s %-12s %-10s %-30s %s\n", "#", "Date", "Category", "Activity", "Time")
	fmt.Fprintln(w, strings.Repeat("-", 68))
	for i, r := range records {
		fmt.Fprintf(w, "%-4d %-12s %-10s %-30s %s\n",
			i+1, r.Date, r.Category, r.Activity, core.FormatMinutes(r.TimeSpent))
	}
	fmt.Fprintln(w, strings.Repeat("-", 68))
	fmt.Fprintf(w, "Total: %s\n", core.FormatMinutes(stats.TotalTime(records)))
}

func printToday(w io.Writer, records []core.Record) {
	fmt.Fprintf(w, "%-10s %-30s %s\n", "Category", "Activity", "Time")
	fmt.Fprintln(w, strings.Repeat("-", 55))
	for _, r := range records {
		fmt.Fprintf(w, "%-10s %-30s %s\n",
			r.Category, r.Activity, core.FormatMinutes(r.TimeSpent))
	}
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hourtrack/internal/core"
)

func newGoalCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "goal [MINUTES]",
		Short: "Show or set the daily goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				goal, err := rt.app.Settings.DailyGoal(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %s\n", core.FormatMinutes(goal))
				return nil
			}
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("goal must be a number of minutes, got %q", args[0])
			}
			if err := rt.app.Settings.SetDailyGoal(ctx, minutes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily goal set to %s\n", core.FormatMinutes(minutes))
			return nil
		},
	}
}

func newRemindCmd(rt *runtime) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "remind [on|off]",
		Short: "Show or change the daily reminder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if at != "" {
				if err := rt.app.Settings.SetReminderTime(ctx, at); err != nil {
					return err
				}
			}
			if len(args) == 1 {
				switch args[0] {
				case "on":
					if err := rt.app.Settings.SetRemindersEnabled(ctx, true); err != nil {
						return err
					}
				case "off":
					if err := rt.app.Settings.SetRemindersEnabled(ctx, false); err != nil {
						return err
					}
				default:
					return fmt.Errorf("expected on or off, got %q", args[0])
				}
			}

			enabled, err := rt.app.Settings.RemindersEnabled(ctx)
			if err != nil {
				return err
			}
			when, err := rt.app.Settings.ReminderTime(ctx)
			if err != nil {
				return err
			}
			state := "off"
			if enabled {
				state = "on"
			}
			fmt.Fprintf(out, "Reminder: %s at %s\n", state, when)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "reminder time as HH:MM")
	return cmd
}

func newThemeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the dashboard theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				switch args[0] {
				case "dark":
					if err := rt.app.Settings.SetDarkMode(ctx, true); err != nil {
						return err
					}
				case "light":
					if err := rt.app.Settings.SetDarkMode(ctx, false); err != nil {
						return err
					}
				default:
					return fmt.Errorf("expected light or dark, got %q", args[0])
				}
			}
			dark, err := rt.app.Settings.DarkMode(ctx)
			if err != nil {
				return err
			}
			theme := "light"
			if dark {
				theme = "dark"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", theme)
			return nil
		},
	}
}

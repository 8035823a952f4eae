package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// runtime carries the wired application and the resolved user id into the
// individual commands. It is populated by the root PersistentPreRunE.
type runtime struct {
	app  *App
	user string
}

// NewRootCmd builds the hourtrack command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}
	var userFlag string

	rootCmd := &cobra.Command{
		Use:           "hourtrack",
		Short:         "Log daily activities and track time toward a daily goal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := SetupLogger()
			LoadEnvFile()
			cfg := LoadAndValidateConfig(logger)

			app, err := NewApp(cfg, logger)
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			rt.app = app

			user := strings.TrimSpace(userFlag)
			if user == "" {
				user, err = app.Settings.CurrentUser(cmd.Context())
				if err != nil {
					return fmt.Errorf("resolve current user: %w", err)
				}
			}
			rt.user = user
			if err := app.Tracker.EnsureUser(cmd.Context(), user); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rt.app != nil {
				return rt.app.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "user id (defaults to the last active user)")

	rootCmd.AddCommand(newLogCmd(rt))
	rootCmd.AddCommand(newTodayCmd(rt))
	rootCmd.AddCommand(newHistoryCmd(rt))
	rootCmd.AddCommand(newStatsCmd(rt))
	rootCmd.AddCommand(newEditCmd(rt))
	rootCmd.AddCommand(newDeleteCmd(rt))
	rootCmd.AddCommand(newClearCmd(rt))
	rootCmd.AddCommand(newExportCmd(rt))
	rootCmd.AddCommand(newBackupCmd(rt))
	rootCmd.AddCommand(newRegisterCmd(rt))
	rootCmd.AddCommand(newLoginCmd(rt))
	rootCmd.AddCommand(newWhoamiCmd(rt))
	rootCmd.AddCommand(newGoalCmd(rt))
	rootCmd.AddCommand(newRemindCmd(rt))
	rootCmd.AddCommand(newThemeCmd(rt))
	rootCmd.AddCommand(newDashboardCmd(rt))

	return rootCmd
}

package cli

import (
	"github.com/spf13/cobra"

	"hourtrack/internal/tui"
)

func newDashboardCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the live activity dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dark, err := rt.app.Settings.DarkMode(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(rt.app.Tracker, rt.user, dark)
		},
	}
}

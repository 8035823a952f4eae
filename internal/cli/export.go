package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

func newExportCmd(rt *runtime) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "export PATH",
		Short: "Export history to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportTo(cmd, rt, args[0], force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the destination if it exists")
	return cmd
}

func newBackupCmd(rt *runtime) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "backup PATH",
		Short: "Back up history to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportTo(cmd, rt, args[0], force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the destination if it exists")
	return cmd
}

func exportTo(cmd *cobra.Command, rt *runtime, path string, force bool) error {
	err := rt.app.Tracker.ExportHistory(cmd.Context(), rt.user, path, force)
	if errors.Is(err, fs.ErrExist) {
		// Destination exists; ask before clobbering unless --force was given.
		if !confirm(cmd, fmt.Sprintf("%s already exists. Overwrite?", path)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		err = rt.app.Tracker.ExportHistory(cmd.Context(), rt.user, path, true)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "History written to %s\n", path)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List open windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		windows, err := listWindowsFunc()
		if err != nil {
			return err
		}
		for _, w := range windows {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %q %dx%d at (%d,%d)\n",
				w.ID, w.Title, w.Width, w.Height, w.X, w.Y)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(windowsCmd)
}

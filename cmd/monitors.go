package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List connected displays",
	RunE: func(cmd *cobra.Command, args []string) error {
		monitors, err := enumerator.Monitors()
		if err != nil {
			return err
		}
		for _, m := range monitors {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %dx%d at (%d,%d)\n",
				m.ID, m.Rect.Dx(), m.Rect.Dy(), m.Rect.Min.X, m.Rect.Min.Y)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(monitorsCmd)
}

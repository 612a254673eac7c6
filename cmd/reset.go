package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every saved answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintf(out, "This would delete %s. Run again with --yes to confirm.\n", st.Path())
			return nil
		}

		if err := st.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintf(out, "Deleted %s\n", st.Path())
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}

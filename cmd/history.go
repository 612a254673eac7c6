package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/footprint/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print previous results and the progress summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		styles := stylesFor(out)

		records, err := st.Load(cmd.Context())
		if err != nil {
			// A missing or unreadable file is reported, not failed on.
			logger.Debug("load records", zap.Error(err))
			fmt.Fprintln(out, styles.Bad(report.LoadErrorMessage(err, st.Path())))
			return nil
		}
		return report.Write(out, records, styles)
	},
}

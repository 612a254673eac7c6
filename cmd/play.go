package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/footprint/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Answer the questionnaire in a full-screen interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Repo:   st,
			Path:   st.Path(),
			Logger: logger,
		})
	},
}

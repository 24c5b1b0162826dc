package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP view gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				catalogOptions(),
				injectHandler(),
				injectDelivery(),
				fx.Invoke(startServer),
			)
			if err := app.Err(); err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}
}

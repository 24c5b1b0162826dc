package commands

import (
	"fmt"

	"marketplace/internal/infra/api"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Report whether the product backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var client *api.ProductClient
			app := fx.New(terminalOptions(), fx.Populate(&client))
			if err := app.Err(); err != nil {
				return err
			}

			if !client.Ping(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Backend unreachable")

				return errors.New("backend unreachable")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Backend reachable")

			return nil
		},
	}
}

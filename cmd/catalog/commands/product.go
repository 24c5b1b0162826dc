package commands

import (
	"marketplace/internal/domain/entity"
	"marketplace/internal/fetch"
	"marketplace/internal/usecase"

	"github.com/spf13/cobra"
)

func productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Load one product and print every transition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID := args[0]

			return withCatalog(cmd.Context(), func(catalog usecase.CatalogUsecase) error {
				subscribe := func(listener fetch.Listener[entity.Product]) fetch.Unsubscribe {
					return catalog.SubscribeProduct(productID, listener)
				}

				final, err := settle(cmd.Context(),
					subscribe,
					func() error { return catalog.Dispatch(fetch.Load(usecase.ProductKey(productID))) },
					func(state fetch.State[entity.Product]) { renderProduct(cmd.OutOrStdout(), state) },
				)
				if err != nil {
					return err
				}
				if final.Status == fetch.StatusError {
					return errFetchFailed
				}

				return nil
			})
		},
	}
}

package commands

import (
	"marketplace/internal/domain/entity"
	"marketplace/internal/fetch"
	"marketplace/internal/usecase"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Load the product list and print every transition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(cmd.Context(), func(catalog usecase.CatalogUsecase) error {
				final, err := settle(cmd.Context(),
					catalog.SubscribeProductList,
					func() error { return catalog.Dispatch(fetch.Load(usecase.ProductListKey)) },
					func(state fetch.State[[]entity.Product]) { renderProductList(cmd.OutOrStdout(), state) },
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

package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"marketplace/internal/fetch"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// errFetchFailed makes the process exit non-zero after the error was rendered.
var errFetchFailed = errors.New("fetch failed")

// withCatalog starts the terminal graph, hands the catalog to fn and stops
// the graph afterwards.
func withCatalog(ctx context.Context, fn func(usecase.CatalogUsecase) error) error {
	var catalog usecase.CatalogUsecase
	app := fx.New(terminalOptions(), fx.Populate(&catalog))
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "start")
	}
	defer func() {
		_ = app.Stop(context.Background())
	}()

	return fn(catalog)
}

// settle forwards every transition to render and returns the final state
// once it is Success or Error.
func settle[T any](
	ctx context.Context,
	subscribe func(fetch.Listener[T]) fetch.Unsubscribe,
	dispatch func() error,
	render func(fetch.State[T]),
) (fetch.State[T], error) {
	transitions := make(chan fetch.State[T], 16)
	unsubscribe := subscribe(func(state fetch.State[T]) {
		select {
		case transitions <- state:
		default:
		}
	})
	defer unsubscribe()

	if err := dispatch(); err != nil {
		return fetch.State[T]{}, err
	}

	for {
		select {
		case <-ctx.Done():
			return fetch.State[T]{}, errors.Wrap(ctx.Err(), "waiting for fetch")
		case state := <-transitions:
			render(state)
			if state.Status == fetch.StatusSuccess || state.Status == fetch.StatusError {
				return state, nil
			}
		}
	}
}

func renderProductList(w io.Writer, state usecase.ProductListState) {
	switch state.Status {
	case fetch.StatusLoading:
		fmt.Fprintln(w, "Loading products...")
	case fetch.StatusError:
		fmt.Fprintf(w, "Error: %s\n", state.Err)
	case fetch.StatusSuccess:
		if len(state.Data) == 0 {
			fmt.Fprintln(w, "No products")

			return
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tRATING")
		for _, p := range state.Data {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Price, p.AdditionalDetails.Ratings)
		}
		_ = tw.Flush()
	}
}

func renderProduct(w io.Writer, state usecase.ProductState) {
	switch state.Status {
	case fetch.StatusLoading:
		fmt.Fprintln(w, "Loading product...")
	case fetch.StatusError:
		fmt.Fprintf(w, "Error: %s\n", state.Err)
	case fetch.StatusSuccess:
		p := state.Data
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "ID\t%s\n", p.ID)
		fmt.Fprintf(tw, "Title\t%s\n", p.Title)
		fmt.Fprintf(tw, "Price\t%s\n", p.Price)
		fmt.Fprintf(tw, "Description\t%s\n", p.Description)
		fmt.Fprintf(tw, "Payment\t%v\n", p.PaymentMethods)
		fmt.Fprintf(tw, "Seller\t%s (%s)\n", p.SellerInformation.Name, p.SellerInformation.Reputation.Level)
		fmt.Fprintf(tw, "Rating\t%s (%s reviews)\n", p.AdditionalDetails.Ratings, p.AdditionalDetails.Reviews)
		fmt.Fprintf(tw, "Stock\t%s\n", p.AdditionalDetails.AvailableStock)
		_ = tw.Flush()
	}
}

package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var backendURL string

func Execute() error {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Marketplace product catalog client and view gateway",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&backendURL, "backend", "", "product backend base URL (overrides backend.baseUrl)")

	root.AddCommand(serveCmd(), productsCmd(), productCmd(), pingCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return root.ExecuteContext(ctx)
}

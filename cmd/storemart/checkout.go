package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taosaywong/storemart/internal/checkout"
	"github.com/Taosaywong/storemart/internal/payment"
)

func checkoutCmd() *cobra.Command {
	var method string
	var useBrowser bool

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Freeze the cart into an order and pay",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			m, err := cartManager(a)
			if err != nil {
				return err
			}
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}

			builder := checkout.NewBuilder()
			intent, err := builder.Build(m.Snapshot(), method)
			if err != nil {
				return err
			}

			fmt.Println("Purchase summary:")
			for _, item := range intent.Items {
				fmt.Printf("  %-30s x%-3d RM %s\n", item.ProductName, item.Quantity, item.TotalPrice.StringFixed(2))
			}
			fmt.Printf("Total amount: RM %s\n", intent.TotalAmount.StringFixed(2))

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var coordinator *payment.Coordinator
			sink := func(target string) {
				// Errors surface through the result channel below.
				_ = coordinator.HandleNavigation(ctx, target)
			}
			var surface payment.ApprovalSurface
			if useBrowser {
				surface = payment.NewBrowserSurface(sink)
			} else {
				surface = payment.NewRedirectListener(a.cfg.CallbackAddr, sink)
			}
			coordinator = payment.NewCoordinator(a.client, surface)

			if _, err := coordinator.Start(ctx, intent); err != nil {
				return err
			}

			// Approval can take a while; keep the bearer token fresh so
			// execute-payment does not land with an expired credential.
			go a.session.RunRefresher(ctx, a.cfg.RefreshInterval)

			result := <-coordinator.Result()
			switch result.Status {
			case payment.StatusCompleted:
				fmt.Println("Payment successful!")
				if result.Order != nil {
					fmt.Printf("Invoice: %s  Total: RM %s\n", result.Order.InvoiceNumber, result.Order.TotalPrice.StringFixed(2))
				}
				return nil
			case payment.StatusCancelled:
				fmt.Println("Payment cancelled.")
				return nil
			default:
				return fmt.Errorf("payment failed: %w", result.Err)
			}
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "payment method (e.g. PayPal)")
	cmd.Flags().BoolVar(&useBrowser, "browser", false, "drive a local browser window for approval")
	return cmd
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Taosaywong/storemart/internal/cart"
)

func cartManager(a *app) (*cart.Manager, error) {
	user, err := a.requireUser()
	if err != nil {
		return nil, err
	}
	branch, err := a.branchScope()
	if err != nil {
		return nil, err
	}
	return cart.NewManager(a.client, a.cache, user.ID, branch), nil
}

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit the cart for a branch",
	}
	cmd.AddCommand(cartShowCmd(), cartAddCmd(), cartRemoveCmd(), cartIncCmd(), cartDecCmd())
	return cmd
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List cart items and subtotal",
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

			snapshot := m.Snapshot()
			if len(snapshot.Items) == 0 {
				fmt.Println("No items in cart")
				return nil
			}
			for _, item := range snapshot.Items {
				name := fmt.Sprintf("product #%d", item.ID)
				if item.Product != nil {
					name = item.Product.Name
				}
				fmt.Printf("%6d  %-30s x%-3d RM %s\n", item.ID, name, item.Quantity, item.TotalPrice.StringFixed(2))
			}
			fmt.Printf("Total: RM %s\n", snapshot.Subtotal())
			return nil
		},
	}
}

func cartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-branch-id>",
		Short: "Add a product-branch to the cart",
		Args:  cobra.ExactArgs(1),
		RunE:  runCartMutation(func(m *cart.Manager, cmd *cobra.Command, id int64) error { return m.AddItem(cmd.Context(), id) }),
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-branch-id>",
		Short: "Remove a product-branch from the cart",
		Args:  cobra.ExactArgs(1),
		RunE:  runCartMutation(func(m *cart.Manager, cmd *cobra.Command, id int64) error { return m.RemoveItem(cmd.Context(), id) }),
	}
}

func cartIncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inc <line-item-id>",
		Short: "Raise a line item's quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: runCartMutation(func(m *cart.Manager, cmd *cobra.Command, id int64) error {
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}
			return m.Increment(cmd.Context(), id)
		}),
	}
}

func cartDecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dec <line-item-id>",
		Short: "Lower a line item's quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: runCartMutation(func(m *cart.Manager, cmd *cobra.Command, id int64) error {
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}
			return m.Decrement(cmd.Context(), id)
		}),
	}
}

func runCartMutation(fn func(*cart.Manager, *cobra.Command, int64) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		m, err := cartManager(a)
		if err != nil {
			return err
		}
		if err := fn(m, cmd, id); err != nil {
			return err
		}
		fmt.Printf("Cart total: RM %s\n", m.Subtotal())
		return nil
	}
}

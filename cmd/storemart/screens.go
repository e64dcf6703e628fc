package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taosaywong/storemart/internal/orders"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Authenticate and store the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			user, err := a.session.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("invalid username or password: %w", err)
			}
			access, refresh := a.session.Tokens()
			if err := saveStoredSession(&storedSession{
				Access:  access,
				Refresh: refresh,
				User:    *user,
			}); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			a.session.Logout()
			if err := removeStoredSession(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func ordersCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			user, err := a.requireUser()
			if err != nil {
				return err
			}
			history := orders.NewHistory(a.client)
			txs, err := history.List(cmd.Context(), user.ID)
			if err != nil {
				return err
			}
			txs = orders.FilterByDate(txs, date)
			if len(txs) == 0 {
				fmt.Println("No transactions found for the selected date.")
				return nil
			}
			for _, tx := range txs {
				fmt.Printf("%-16s %-12s RM %-10s %s\n", tx.InvoiceNumber, tx.CreatedAt, tx.TotalPrice, tx.Status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "only show transactions of this date")
	return cmd
}

func orderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <invoice-number>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireUser(); err != nil {
				return err
			}
			detail, err := orders.NewHistory(a.client).Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Invoice %s  %s  RM %s  %s\n", detail.InvoiceNumber, detail.CreatedAt, detail.TotalPrice, detail.Status)
			for _, item := range detail.Items {
				fmt.Printf("  %-30s x%-3d RM %s\n", item.ProductName, item.Quantity, item.TotalPrice)
			}
			return nil
		},
	}
}

func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List products stocked at a branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			branch, err := a.branchScope()
			if err != nil {
				return err
			}
			pbs, err := a.client.ProductBranches(cmd.Context(), branch)
			if err != nil {
				return err
			}
			for _, pb := range pbs {
				fmt.Printf("%6d  product %-6d stock %-4d RM %s\n", pb.ID, pb.ProductID, pb.Stock, pb.Price)
			}
			return nil
		},
	}
}

func branchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			branches, err := a.client.Branches(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range branches {
				fmt.Printf("%6d  %-24s %s\n", b.ID, b.Name, b.Address)
			}
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the branch sales summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireUser(); err != nil {
				return err
			}
			branch, err := a.branchScope()
			if err != nil {
				return err
			}
			summary, err := orders.NewHistory(a.client).Summary(cmd.Context(), branch, period)
			if err != nil {
				return err
			}
			fmt.Printf("Branch %d (%s): %d orders, RM %s total, RM %s average\n",
				summary.BranchID, summary.Period, summary.OrderCount, summary.TotalSales, summary.AverageOrder)
			for _, top := range summary.TopProducts {
				fmt.Printf("  %-30s x%-4d RM %s\n", top.ProductName, top.Quantity, top.Revenue)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "monthly", "report period (daily, weekly, monthly)")
	return cmd
}

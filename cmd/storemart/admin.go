package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Taosaywong/storemart/internal/orders"
	"github.com/Taosaywong/storemart/internal/rest"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(usersListCmd(), usersShowCmd(), usersAddCmd(), usersRemoveCmd())
	return cmd
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireUser(); err != nil {
				return err
			}
			accounts, err := a.client.Users(cmd.Context())
			if err != nil {
				return err
			}
			for _, acc := range accounts {
				fmt.Printf("%6d  %-16s %-28s branch %-4d %s\n", acc.ID, acc.Username, acc.Email, acc.BranchID, acc.Status)
			}
			return nil
		},
	}
}

func usersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Show one user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireUser(); err != nil {
				return err
			}
			acc, err := a.client.User(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Username: %s\nName:     %s %s\nEmail:    %s\nBranch:   %d\nRole:     %d\nStatus:   %s\n",
				acc.Username, acc.FirstName, acc.LastName, acc.Email, acc.BranchID, acc.RoleID, acc.Status)
			return nil
		},
	}
}

func usersAddCmd() *cobra.Command {
	req := &rest.AccountRequest{}
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireUser(); err != nil {
				return err
			}
			req.Username = args[0]
			if err := a.client.CreateUser(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Printf("User %s created\n", req.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().Int64Var(&req.BranchID, "user-branch", 0, "assigned branch")
	cmd.Flags().Int64Var(&req.RoleID, "role", 0, "role id, see `storemart users list`")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	return cmd
}

func usersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireUser(); err != nil {
				return err
			}
			if err := a.client.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("User %d deleted\n", id)
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <email> <password>",
		Short: "Sign up for a customer account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.client.Register(cmd.Context(), args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Printf("Account %s registered, you can log in now\n", args[0])
			return nil
		},
	}
}

func reviewCmd() *cobra.Command {
	var rating float64
	var text string
	cmd := &cobra.Command{
		Use:   "review <product-id>",
		Short: "Submit a product review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			user, err := a.requireUser()
			if err != nil {
				return err
			}
			if err := a.client.AddReview(cmd.Context(), productID, user.ID, text, rating); err != nil {
				return err
			}
			fmt.Println("Review submitted")
			return nil
		},
	}
	cmd.Flags().Float64Var(&rating, "rating", 3, "rating from 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "review text")
	return cmd
}

func revenueCmd() *cobra.Command {
	var categoryID int64
	var year, month, day int
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Show per-product revenue for a branch and category",
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
			revenue, err := orders.NewHistory(a.client).Revenue(cmd.Context(), branch, categoryID, year, month, day)
			if err != nil {
				return err
			}
			for _, p := range revenue.Products {
				fmt.Printf("  %-30s RM %s\n", p.ProductName, p.TotalRevenue.StringFixed(2))
			}
			fmt.Printf("Overall: RM %s\n", orders.OverallRevenue(revenue).StringFixed(2))
			return nil
		},
	}
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category to report on")
	cmd.Flags().IntVar(&year, "year", 0, "limit to a year")
	cmd.Flags().IntVar(&month, "month", 0, "limit to a month")
	cmd.Flags().IntVar(&day, "day", 0, "limit to a day")
	return cmd
}

func customerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "customer <user-id>",
		Short: "Show a customer's spend by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			if _, err := a.requireUser(); err != nil {
				return err
			}
			behavior, err := orders.NewHistory(a.client).Behavior(cmd.Context(), userID)
			if err != nil {
				return err
			}
			for _, c := range behavior.Categories {
				fmt.Printf("  %-24s RM %s\n", c.CategoryName, c.TotalRevenue.StringFixed(2))
			}
			fmt.Printf("Total spend: RM %s\n", behavior.TotalRevenue.StringFixed(2))
			return nil
		},
	}
}

package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Taosaywong/storemart/internal/domain"
)

func (c *Client) Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	path := fmt.Sprintf("/api/checkout/transactions/%d/", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &txs, true); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) TransactionDetail(ctx context.Context, invoiceNumber string) (*domain.TransactionDetail, error) {
	var detail domain.TransactionDetail
	path := "/api/checkout/transaction/invoiceNum_transaction_detail/" + invoiceNumber
	if err := c.do(ctx, http.MethodGet, path, nil, &detail, true); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ProductRevenue fetches per-product revenue for one branch and category.
// Zero-valued year, month and day are left off the query so the report
// scope narrows only as far as the caller asked.
func (c *Client) ProductRevenue(ctx context.Context, branchID, categoryID int64, year, month, day int) (*domain.CategoryRevenue, error) {
	path := fmt.Sprintf("/api/checkout/sales/product_category_revenue/%d/%d/", branchID, categoryID)
	q := url.Values{}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	if month > 0 {
		q.Set("month", strconv.Itoa(month))
	}
	if day > 0 {
		q.Set("day", strconv.Itoa(day))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var revenue domain.CategoryRevenue
	if err := c.do(ctx, http.MethodGet, path, nil, &revenue, true); err != nil {
		return nil, err
	}
	return &revenue, nil
}

// PurchaseBehavior fetches one customer's spend broken down by category.
func (c *Client) PurchaseBehavior(ctx context.Context, userID int64) (*domain.PurchaseBehavior, error) {
	var behavior domain.PurchaseBehavior
	path := fmt.Sprintf("/api/user_purchase_category/%d/", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &behavior, true); err != nil {
		return nil, err
	}
	return &behavior, nil
}

// SalesSummary fetches the aggregated sales report for a branch and period.
// Manager and staff scopes are enforced server-side.
func (c *Client) SalesSummary(ctx context.Context, branchID int64, period string) (*domain.SalesSummary, error) {
	var summary domain.SalesSummary
	path := fmt.Sprintf("/api/checkout/sales_summary/%d/?period=%s", branchID, period)
	if err := c.do(ctx, http.MethodGet, path, nil, &summary, true); err != nil {
		return nil, err
	}
	return &summary, nil
}

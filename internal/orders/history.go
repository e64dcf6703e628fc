package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Taosaywong/storemart/internal/domain"
)

// API is the slice of the REST client the history and report screens need.
type API interface {
	Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
	TransactionDetail(ctx context.Context, invoiceNumber string) (*domain.TransactionDetail, error)
	SalesSummary(ctx context.Context, branchID int64, period string) (*domain.SalesSummary, error)
	ProductRevenue(ctx context.Context, branchID, categoryID int64, year, month, day int) (*domain.CategoryRevenue, error)
	PurchaseBehavior(ctx context.Context, userID int64) (*domain.PurchaseBehavior, error)
}

// History serves the transaction history and report screens. Like every
// screen it re-reads from the server on demand and keeps no state of its own.
type History struct {
	api API
}

func NewHistory(api API) *History {
	return &History{api: api}
}

func (h *History) List(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	txs, err := h.api.Transactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return txs, nil
}

func (h *History) Detail(ctx context.Context, invoiceNumber string) (*domain.TransactionDetail, error) {
	detail, err := h.api.TransactionDetail(ctx, invoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("load transaction %s: %w", invoiceNumber, err)
	}
	return detail, nil
}

func (h *History) Summary(ctx context.Context, branchID int64, period string) (*domain.SalesSummary, error) {
	summary, err := h.api.SalesSummary(ctx, branchID, period)
	if err != nil {
		return nil, fmt.Errorf("load sales summary: %w", err)
	}
	return summary, nil
}

func (h *History) Revenue(ctx context.Context, branchID, categoryID int64, year, month, day int) (*domain.CategoryRevenue, error) {
	revenue, err := h.api.ProductRevenue(ctx, branchID, categoryID, year, month, day)
	if err != nil {
		return nil, fmt.Errorf("load product revenue: %w", err)
	}
	return revenue, nil
}

func (h *History) Behavior(ctx context.Context, userID int64) (*domain.PurchaseBehavior, error) {
	behavior, err := h.api.PurchaseBehavior(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load purchase behavior: %w", err)
	}
	return behavior, nil
}

// OverallRevenue sums the per-product totals of one revenue report.
func OverallRevenue(revenue *domain.CategoryRevenue) decimal.Decimal {
	total := decimal.Zero
	for _, p := range revenue.Products {
		total = total.Add(p.TotalRevenue)
	}
	return total
}

// UniqueDates extracts the distinct transaction dates in first-seen order,
// for the date filter picker.
func UniqueDates(txs []domain.Transaction) []string {
	seen := make(map[string]struct{}, len(txs))
	dates := make([]string, 0, len(txs))
	for _, tx := range txs {
		if _, ok := seen[tx.CreatedAt]; ok {
			continue
		}
		seen[tx.CreatedAt] = struct{}{}
		dates = append(dates, tx.CreatedAt)
	}
	return dates
}

// FilterByDate keeps transactions of one date; an empty date keeps all.
func FilterByDate(txs []domain.Transaction, date string) []domain.Transaction {
	if date == "" {
		return txs
	}
	filtered := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.CreatedAt == date {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

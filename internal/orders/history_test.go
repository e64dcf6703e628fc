package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taosaywong/storemart/internal/domain"
	"github.com/Taosaywong/storemart/internal/rest"
)

// apiMock implements the API interface for testing.
type apiMock struct {
	txs      []domain.Transaction
	txErr    error
	detail   *domain.TransactionDetail
	summary  *domain.SalesSummary
	revenue  *domain.CategoryRevenue
	behavior *domain.PurchaseBehavior
}

func (m *apiMock) Transactions(_ context.Context, _ int64) ([]domain.Transaction, error) {
	return m.txs, m.txErr
}

func (m *apiMock) TransactionDetail(_ context.Context, _ string) (*domain.TransactionDetail, error) {
	return m.detail, nil
}

func (m *apiMock) SalesSummary(_ context.Context, _ int64, _ string) (*domain.SalesSummary, error) {
	return m.summary, nil
}

func (m *apiMock) ProductRevenue(_ context.Context, _, _ int64, _, _, _ int) (*domain.CategoryRevenue, error) {
	return m.revenue, nil
}

func (m *apiMock) PurchaseBehavior(_ context.Context, _ int64) (*domain.PurchaseBehavior, error) {
	return m.behavior, nil
}

func sampleTxs() []domain.Transaction {
	return []domain.Transaction{
		{ID: 1, InvoiceNumber: "INV-1", CreatedAt: "2024-05-01", TotalPrice: "15.50"},
		{ID: 2, InvoiceNumber: "INV-2", CreatedAt: "2024-05-02", TotalPrice: "8.00"},
		{ID: 3, InvoiceNumber: "INV-3", CreatedAt: "2024-05-01", TotalPrice: "23.90"},
	}
}

func TestList(t *testing.T) {
	h := NewHistory(&apiMock{txs: sampleTxs()})

	txs, err := h.List(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, txs, 3)
}

func TestList_Error(t *testing.T) {
	h := NewHistory(&apiMock{txErr: rest.ErrServer})

	_, err := h.List(context.Background(), 1)
	assert.ErrorIs(t, err, rest.ErrServer)
}

func TestRevenue(t *testing.T) {
	h := NewHistory(&apiMock{revenue: &domain.CategoryRevenue{
		Products: []domain.ProductRevenue{
			{ProductName: "Nasi Lemak", TotalRevenue: decimal.RequireFromString("120.50")},
			{ProductName: "Teh Tarik", TotalRevenue: decimal.RequireFromString("34.00")},
		},
	}})

	revenue, err := h.Revenue(context.Background(), 2, 1, 2024, 5, 0)

	require.NoError(t, err)
	require.Len(t, revenue.Products, 2)
	assert.Equal(t, "154.50", OverallRevenue(revenue).StringFixed(2))
}

func TestOverallRevenue_Empty(t *testing.T) {
	assert.Equal(t, "0.00", OverallRevenue(&domain.CategoryRevenue{}).StringFixed(2))
}

func TestBehavior(t *testing.T) {
	h := NewHistory(&apiMock{behavior: &domain.PurchaseBehavior{
		Categories: []domain.PurchaseCategory{
			{CategoryName: "Beverages", TotalRevenue: decimal.RequireFromString("34.00")},
		},
		TotalRevenue: decimal.RequireFromString("34.00"),
	}})

	behavior, err := h.Behavior(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, behavior.Categories, 1)
	assert.Equal(t, "Beverages", behavior.Categories[0].CategoryName)
}

func TestUniqueDates(t *testing.T) {
	dates := UniqueDates(sampleTxs())
	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, dates)
}

func TestUniqueDates_Empty(t *testing.T) {
	assert.Empty(t, UniqueDates(nil))
}

func TestFilterByDate(t *testing.T) {
	txs := sampleTxs()

	filtered := FilterByDate(txs, "2024-05-01")
	require.Len(t, filtered, 2)
	assert.Equal(t, "INV-1", filtered[0].InvoiceNumber)
	assert.Equal(t, "INV-3", filtered[1].InvoiceNumber)

	// Empty date keeps everything.
	assert.Len(t, FilterByDate(txs, ""), 3)
	assert.Empty(t, FilterByDate(txs, "2024-06-01"))
}

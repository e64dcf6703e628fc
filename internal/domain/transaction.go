package domain

import "github.com/shopspring/decimal"

// Transaction is one entry of a user's purchase history.
type Transaction struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	CreatedAt     string `json:"formatted_created_at"`
	TotalPrice    string `json:"total_price"`
	Status        string `json:"transaction_status"`
}

// TransactionDetail is the full record behind one invoice number.
type TransactionDetail struct {
	Transaction
	Items []TransactionItem `json:"items"`
}

type TransactionItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	TotalPrice  string `json:"total_price"`
}

// SalesSummary is the aggregated report consumed by manager/admin screens.
type SalesSummary struct {
	BranchID     int64   `json:"branch_id"`
	Period       string  `json:"period"`
	TotalSales   string  `json:"total_sales"`
	OrderCount   int     `json:"order_count"`
	AverageOrder string  `json:"average_order"`
	TopProducts  []Sales `json:"top_products"`
}

type Sales struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Revenue     string `json:"revenue"`
}

// CategoryRevenue breaks one category's revenue down per product, for the
// product revenue report.
type CategoryRevenue struct {
	Products []ProductRevenue `json:"product_revenue"`
}

type ProductRevenue struct {
	ProductName  string          `json:"product_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// PurchaseBehavior is one customer's spend broken down by category.
type PurchaseBehavior struct {
	Categories   []PurchaseCategory `json:"purchase_category"`
	TotalRevenue decimal.Decimal    `json:"total_revenue"`
}

type PurchaseCategory struct {
	CategoryName string          `json:"category_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

package domain

import "github.com/shopspring/decimal"

// IntentItem is the price-frozen copy of a line item inside a CheckoutIntent.
type IntentItem struct {
	LineItemID  int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// CheckoutIntent is an ephemeral snapshot handed from the summary builder to
// the payment coordinator. Once built it never changes; mutating the live
// cart does not affect an in-flight checkout.
type CheckoutIntent struct {
	CartID        string
	UserID        int64
	PaymentMethod string
	Items         []IntentItem
	TotalAmount   decimal.Decimal
}

// Order is the order payload returned by a successful payment execution.
type Order struct {
	InvoiceNumber string          `json:"invoice_number"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"transaction_status"`
}

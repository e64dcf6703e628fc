package domain

import "github.com/shopspring/decimal"

// Product is the denormalized product snapshot merged into a cart line item.
// It is fetched from the products endpoint, not embedded in the raw cart record.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Image string          `json:"image"`
	Price decimal.Decimal `json:"price"`
}

// ProductRef is the shape the cart endpoint returns for an item's product
// before enrichment.
type ProductRef struct {
	ProductID int64 `json:"product_id"`
}

// CartLineItem is one product-branch entry in a user's cart for a branch.
// TotalPrice is authoritative from the server; the client only sums it.
type CartLineItem struct {
	ID         int64           `json:"id"`
	Product    *Product        `json:"product,omitempty"`
	ProductRef *ProductRef     `json:"product_ref,omitempty"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Cart is scoped to (userID, branchID). At most one active cart per branch;
// switching branches means fetching a different cart scope.
type Cart struct {
	CartID   string
	UserID   int64
	BranchID int64
	Items    []CartLineItem
}

// Subtotal sums line totals. Empty cart formats as "0.00".
func (c *Cart) Subtotal() string {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice)
	}
	return total.StringFixed(2)
}

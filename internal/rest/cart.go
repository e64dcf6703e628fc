package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Taosaywong/storemart/internal/domain"
)

type cartIDResponse struct {
	CartID string `json:"cart_id"`
}

// rawCartItem is the unenriched shape the cart endpoint returns: the product
// is only a reference, full detail comes from the products endpoint.
type rawCartItem struct {
	ID       int64              `json:"id"`
	Product  *domain.ProductRef `json:"product"`
	Quantity int                `json:"quantity"`
	Total    decimal.Decimal    `json:"total_price"`
}

// QuantityUpdate is the authoritative state the server returns after a
// quantity mutation. The client never computes total_price itself.
type QuantityUpdate struct {
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type addItemRequest struct {
	ProductBranchID int64 `json:"product_branch_id"`
	Quantity        int   `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCartID fetches the opaque cart correlation ID for a user.
func (c *Client) GetCartID(ctx context.Context, userID int64) (string, error) {
	var resp cartIDResponse
	path := fmt.Sprintf("/api/checkout/cart/%d/get_cart_id/", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, false); err != nil {
		return "", err
	}
	if resp.CartID == "" {
		return "", fmt.Errorf("cart id missing in response")
	}
	return resp.CartID, nil
}

// BranchCartItems fetches the raw cart line items for (userID, branchID).
func (c *Client) BranchCartItems(ctx context.Context, userID, branchID int64) ([]domain.CartLineItem, error) {
	var raw []rawCartItem
	path := fmt.Sprintf("/api/checkout/cart/%d/branch_cart_items/%d/", userID, branchID)
	if err := c.do(ctx, http.MethodGet, path, nil, &raw, false); err != nil {
		return nil, err
	}

	items := make([]domain.CartLineItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, domain.CartLineItem{
			ID:         r.ID,
			ProductRef: r.Product,
			Quantity:   r.Quantity,
			TotalPrice: r.Total,
		})
	}
	return items, nil
}

// UpdateQuantity sets the absolute quantity of one line item and returns the
// server-computed state for that item only.
func (c *Client) UpdateQuantity(ctx context.Context, userID, itemID, productID int64, quantity int) (*QuantityUpdate, error) {
	var resp QuantityUpdate
	path := fmt.Sprintf("/api/checkout/cart/%d/cart_item/%d/update_quantity/%d/", userID, itemID, productID)
	if err := c.do(ctx, http.MethodPatch, path, updateQuantityRequest{Quantity: quantity}, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddCartItem adds a product-branch to the cart. The server enforces
// idempotency on (userID, productBranchID).
func (c *Client) AddCartItem(ctx context.Context, userID, productBranchID int64, quantity int) error {
	path := fmt.Sprintf("/api/checkout/cart/%d/add_item/", userID)
	return c.do(ctx, http.MethodPost, path, addItemRequest{ProductBranchID: productBranchID, Quantity: quantity}, nil, false)
}

// RemoveCartItem removes a product-branch from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, userID, productBranchID int64) error {
	path := fmt.Sprintf("/api/checkout/cart/%d/remove_item/%d/", userID, productBranchID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, false)
}

// GetProduct fetches full product detail for cart enrichment.
func (c *Client) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var p domain.Product
	path := fmt.Sprintf("/api/products/products/%d", productID)
	if err := c.do(ctx, http.MethodGet, path, nil, &p, false); err != nil {
		return nil, err
	}
	return &p, nil
}

package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Taosaywong/storemart/internal/domain"
)

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/products/", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsByIDs fetches several products in one round trip.
func (c *Client) ProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	var products []domain.Product
	path := "/api/products/products/?ids=" + strings.Join(parts, ",")
	if err := c.do(ctx, http.MethodGet, path, nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, http.MethodGet, "/api/products/categories/", nil, &categories, false); err != nil {
		return nil, err
	}
	return categories, nil
}

// ProductBranches lists the stock entries of one branch.
func (c *Client) ProductBranches(ctx context.Context, branchID int64) ([]domain.ProductBranch, error) {
	var pbs []domain.ProductBranch
	path := fmt.Sprintf("/api/products/product-branches/branch/%d", branchID)
	if err := c.do(ctx, http.MethodGet, path, nil, &pbs, false); err != nil {
		return nil, err
	}
	return pbs, nil
}

type reviewRequest struct {
	Product    int64   `json:"product"`
	User       int64   `json:"user"`
	ReviewText string  `json:"review_text"`
	Rating     float64 `json:"rating"`
}

// AddReview submits a product review for the authenticated user.
func (c *Client) AddReview(ctx context.Context, productID, userID int64, text string, rating float64) error {
	path := fmt.Sprintf("/api/products/products/%d/reviews/", productID)
	req := reviewRequest{Product: productID, User: userID, ReviewText: text, Rating: rating}
	return c.do(ctx, http.MethodPost, path, req, nil, true)
}

func (c *Client) ProductReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	path := fmt.Sprintf("/api/products/products/%d/reviews/", productID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews, false); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) Branches(ctx context.Context) ([]domain.Branch, error) {
	var branches []domain.Branch
	if err := c.do(ctx, http.MethodGet, "/api/branches/", nil, &branches, false); err != nil {
		return nil, err
	}
	return branches, nil
}

func (c *Client) Branch(ctx context.Context, branchID int64) (*domain.Branch, error) {
	var b domain.Branch
	path := fmt.Sprintf("/api/branches/%d", branchID)
	if err := c.do(ctx, http.MethodGet, path, nil, &b, false); err != nil {
		return nil, err
	}
	return &b, nil
}

package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRevenue_ScopesQuery(t *testing.T) {
	srv, _ := newTestServer(t, func(r chi.Router) {
		r.Get("/api/checkout/sales/product_category_revenue/{branchID}/{categoryID}/", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "2", chi.URLParam(req, "branchID"))
			assert.Equal(t, "5", chi.URLParam(req, "categoryID"))
			q := req.URL.Query()
			assert.Equal(t, "2024", q.Get("year"))
			assert.Equal(t, "5", q.Get("month"))
			assert.False(t, q.Has("day"))
			w.Write([]byte(`{"product_revenue": [
				{"product_name": "Nasi Lemak", "total_revenue": 120.5},
				{"product_name": "Teh Tarik", "total_revenue": 34}
			]}`))
		})
	})
	client := NewClient(srv.URL, WithTokenSource(staticTokens("token-123")))

	revenue, err := client.ProductRevenue(context.Background(), 2, 5, 2024, 5, 0)

	require.NoError(t, err)
	require.Len(t, revenue.Products, 2)
	assert.Equal(t, "120.50", revenue.Products[0].TotalRevenue.StringFixed(2))
}

func TestPurchaseBehavior(t *testing.T) {
	srv, _ := newTestServer(t, func(r chi.Router) {
		r.Get("/api/user_purchase_category/{userID}/", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "7", chi.URLParam(req, "userID"))
			w.Write([]byte(`{
				"purchase_category": [{"category_name": "Beverages", "total_revenue": 34}],
				"total_revenue": 34
			}`))
		})
	})
	client := NewClient(srv.URL, WithTokenSource(staticTokens("token-123")))

	behavior, err := client.PurchaseBehavior(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, behavior.Categories, 1)
	assert.Equal(t, "34.00", behavior.TotalRevenue.StringFixed(2))
}

func TestAddReview_SendsPayload(t *testing.T) {
	srv, _ := newTestServer(t, func(r chi.Router) {
		r.Post("/api/products/products/{productID}/reviews/", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "10", chi.URLParam(req, "productID"))
			assert.Equal(t, "Bearer token-123", req.Header.Get("Authorization"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, float64(10), body["product"])
			assert.Equal(t, float64(7), body["user"])
			assert.Equal(t, "sedap!", body["review_text"])
			assert.Equal(t, 4.5, body["rating"])
			w.WriteHeader(http.StatusCreated)
		})
	})
	client := NewClient(srv.URL, WithTokenSource(staticTokens("token-123")))

	err := client.AddReview(context.Background(), 10, 7, "sedap!", 4.5)
	require.NoError(t, err)
}

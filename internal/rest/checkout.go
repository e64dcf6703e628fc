package rest

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Taosaywong/storemart/internal/domain"
)

type createPaymentRequest struct {
	CartID      string              `json:"cart_id"`
	TotalAmount string              `json:"total_amount"`
	CartItems   []domain.IntentItem `json:"cart_items"`
}

type createPaymentResponse struct {
	ApprovalURL string `json:"approval_url"`
}

// ExecutePaymentRequest carries the provider identifiers extracted from the
// approval callback plus the originating cart correlation.
type ExecutePaymentRequest struct {
	PaymentID   string          `json:"paymentId"`
	PayerID     string          `json:"PayerID"`
	CartID      string          `json:"cart_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type executePaymentResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

// CreatePayment opens a payment session for the intent and returns the
// external approval URL. An empty URL in the response is an error for the
// caller to classify.
func (c *Client) CreatePayment(ctx context.Context, intent *domain.CheckoutIntent) (string, error) {
	req := createPaymentRequest{
		CartID:      intent.CartID,
		TotalAmount: intent.TotalAmount.StringFixed(2),
		CartItems:   intent.Items,
	}
	var resp createPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/api/checkout/create-payment/", req, &resp, false); err != nil {
		return "", err
	}
	return resp.ApprovalURL, nil
}

// ExecutePayment finalizes an approved payment. Requires the bearer
// credential; the server decides success via the response message.
func (c *Client) ExecutePayment(ctx context.Context, req *ExecutePaymentRequest) (string, *domain.Order, error) {
	var resp executePaymentResponse
	if err := c.do(ctx, http.MethodPost, "/api/checkout/execute-payment/", req, &resp, true); err != nil {
		return "", nil, err
	}
	return resp.Message, resp.Order, nil
}

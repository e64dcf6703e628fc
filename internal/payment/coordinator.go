package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/Taosaywong/storemart/internal/domain"
	"github.com/Taosaywong/storemart/internal/rest"
)

var (
	ErrPaymentInit       = errors.New("failed to initiate payment")
	ErrPaymentExec       = errors.New("failed to execute payment")
	ErrSessionInProgress = errors.New("a payment session is already in progress")
)

// Markers the coordinator matches against observed navigation targets and the
// execute-payment response.
const (
	successMarker  = "payment-success"
	cancelMarker   = "payment-cancel"
	executedMarker = "Payment executed successfully"
)

// API is the slice of the REST client the coordinator needs.
type API interface {
	CreatePayment(ctx context.Context, intent *domain.CheckoutIntent) (string, error)
	ExecutePayment(ctx context.Context, req *rest.ExecutePaymentRequest) (string, *domain.Order, error)
}

// ApprovalSurface is the external payment UI: shown with the approval URL,
// hidden on every terminal transition before the result surfaces.
type ApprovalSurface interface {
	Show(ctx context.Context, approvalURL string) error
	Hide()
}

// Result is the terminal outcome of one payment session.
type Result struct {
	Status SessionStatus
	Order  *domain.Order
	Err    error
}

// Coordinator drives one payment session at a time: create payment, show the
// approval surface, classify observed navigation targets, and execute the
// payment exactly once. Callback delivery is at-least-once and noisy; every
// duplicate success signal after the first is a no-op by construction.
type Coordinator struct {
	api     API
	surface ApprovalSurface

	mu     sync.Mutex
	status SessionStatus
	intent *domain.CheckoutIntent
	result chan Result
}

func NewCoordinator(api API, surface ApprovalSurface) *Coordinator {
	return &Coordinator{api: api, surface: surface}
}

// Status returns the current session status; empty before the first Start.
func (c *Coordinator) Status() SessionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Result delivers the terminal outcome of the current session. The channel is
// replaced on every Start; stale sessions are never resumed.
func (c *Coordinator) Result() <-chan Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Start opens a brand-new payment session for the intent and shows the
// approval surface. A missing approval URL fails the session with no retry;
// the user must re-initiate from checkout.
func (c *Coordinator) Start(ctx context.Context, intent *domain.CheckoutIntent) (string, error) {
	c.mu.Lock()
	if c.status != "" && !c.status.IsTerminal() {
		c.mu.Unlock()
		return "", ErrSessionInProgress
	}
	c.status = StatusInitializing
	c.intent = intent
	c.result = make(chan Result, 1)
	c.mu.Unlock()

	approvalURL, err := c.api.CreatePayment(ctx, intent)
	if err != nil {
		c.setStatus(StatusFailed)
		return "", fmt.Errorf("%w: %v", ErrPaymentInit, err)
	}
	if approvalURL == "" {
		c.setStatus(StatusFailed)
		return "", fmt.Errorf("%w: no approval url in response", ErrPaymentInit)
	}

	c.setStatus(StatusAwaitingApproval)
	if err := c.surface.Show(ctx, approvalURL); err != nil {
		c.setStatus(StatusFailed)
		return "", fmt.Errorf("%w: showing approval surface: %v", ErrPaymentInit, err)
	}
	return approvalURL, nil
}

// HandleNavigation classifies one observed navigation target. Irrelevant
// targets and duplicate signals return nil without side effects.
func (c *Coordinator) HandleNavigation(ctx context.Context, target string) error {
	switch {
	case strings.Contains(target, successMarker):
		return c.handleSuccess(ctx, target)
	case strings.Contains(target, cancelMarker):
		c.handleCancel()
		return nil
	default:
		return nil
	}
}

func (c *Coordinator) handleSuccess(ctx context.Context, target string) error {
	c.mu.Lock()
	if !CanTransitionTo(c.status, StatusExecuting) {
		// Duplicate success signal, or the session is already past
		// approval. Exactly-once execution is enforced here.
		c.mu.Unlock()
		return nil
	}
	c.status = StatusExecuting
	intent := c.intent
	c.mu.Unlock()

	paymentID, payerID, err := callbackIDs(target)
	if err != nil {
		c.finish(Result{Status: StatusFailed, Err: fmt.Errorf("%w: %v", ErrPaymentExec, err)})
		return fmt.Errorf("%w: %v", ErrPaymentExec, err)
	}

	message, order, err := c.api.ExecutePayment(ctx, &rest.ExecutePaymentRequest{
		PaymentID:   paymentID,
		PayerID:     payerID,
		CartID:      intent.CartID,
		TotalAmount: intent.TotalAmount,
	})
	if err != nil {
		c.finish(Result{Status: StatusFailed, Err: fmt.Errorf("%w: %v", ErrPaymentExec, err)})
		return fmt.Errorf("%w: %v", ErrPaymentExec, err)
	}
	if !strings.Contains(message, executedMarker) {
		execErr := fmt.Errorf("%w: %s", ErrPaymentExec, message)
		c.finish(Result{Status: StatusFailed, Err: execErr})
		return execErr
	}

	c.finish(Result{Status: StatusCompleted, Order: order})
	return nil
}

func (c *Coordinator) handleCancel() {
	c.mu.Lock()
	if !CanTransitionTo(c.status, StatusCancelled) {
		c.mu.Unlock()
		return
	}
	c.status = StatusCancelled
	c.mu.Unlock()
	// No backend call for cancellation.
	c.finish(Result{Status: StatusCancelled})
}

// finish tears down the approval surface, records the terminal status, and
// only then delivers the result.
func (c *Coordinator) finish(result Result) {
	c.surface.Hide()

	c.mu.Lock()
	c.status = result.Status
	resultCh := c.result
	c.mu.Unlock()

	select {
	case resultCh <- result:
	default:
		log.Printf("payment result dropped: no receiver for session in status %s", result.Status)
	}
}

func (c *Coordinator) setStatus(status SessionStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

// callbackIDs extracts the provider payment and payer identifiers from a
// success callback target.
func callbackIDs(target string) (string, string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", "", fmt.Errorf("parse callback url: %v", err)
	}
	q := u.Query()
	paymentID := q.Get("paymentId")
	payerID := q.Get("PayerID")
	if paymentID == "" || payerID == "" {
		return "", "", fmt.Errorf("callback url missing paymentId or PayerID")
	}
	return paymentID, payerID, nil
}

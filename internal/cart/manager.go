package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Taosaywong/storemart/internal/cache"
	"github.com/Taosaywong/storemart/internal/domain"
	"github.com/Taosaywong/storemart/internal/rest"
)

var (
	ErrCartLoad     = errors.New("failed to load cart")
	ErrCartMutation = errors.New("failed to update cart")
)

// API is the slice of the REST client the manager needs.
type API interface {
	GetCartID(ctx context.Context, userID int64) (string, error)
	BranchCartItems(ctx context.Context, userID, branchID int64) ([]domain.CartLineItem, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	UpdateQuantity(ctx context.Context, userID, itemID, productID int64, quantity int) (*rest.QuantityUpdate, error)
	AddCartItem(ctx context.Context, userID, productBranchID int64, quantity int) error
	RemoveCartItem(ctx context.Context, userID, productBranchID int64) error
}

// Manager owns the client-side view of one user's cart for one branch. The
// server is the source of truth: the view is rebuilt from it on every
// refresh, never incrementally trusted.
type Manager struct {
	api   API
	cache cache.ProductCache // optional, advisory only
	sfg   singleflight.Group // dedupes concurrent product detail fetches

	userID   int64
	branchID int64

	mu       sync.Mutex
	cartID   string
	items    []domain.CartLineItem
	reqToken uint64 // most recently issued refresh token
}

func NewManager(api API, productCache cache.ProductCache, userID, branchID int64) *Manager {
	return &Manager{
		api:      api,
		cache:    productCache,
		userID:   userID,
		branchID: branchID,
	}
}

// Refresh rebuilds the cart view from the server. Concurrent refreshes are
// allowed; a response whose token is no longer the most recently issued is
// discarded, so a slow earlier refresh cannot clobber a later one. On failure
// the previous view is left untouched.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.reqToken++
	token := m.reqToken
	m.mu.Unlock()

	cartID, items, err := m.load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCartLoad, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if token != m.reqToken {
		// A newer refresh was issued while this one was in flight.
		return nil
	}
	m.cartID = cartID
	m.items = items
	return nil
}

func (m *Manager) load(ctx context.Context) (string, []domain.CartLineItem, error) {
	cartID, err := m.api.GetCartID(ctx, m.userID)
	if err != nil {
		return "", nil, err
	}

	raw, err := m.api.BranchCartItems(ctx, m.userID, m.branchID)
	if err != nil {
		return "", nil, err
	}

	items := make([]domain.CartLineItem, 0, len(raw))
	for _, item := range raw {
		if item.ProductRef == nil {
			// No product reference to enrich from; pass through as-is.
			items = append(items, item)
			continue
		}
		product, err := m.fetchProduct(ctx, item.ProductRef.ProductID)
		if err != nil {
			return "", nil, err
		}
		item.Product = product
		items = append(items, item)
	}
	return cartID, items, nil
}

// fetchProduct resolves full product detail, consulting the advisory cache
// first and collapsing concurrent fetches for the same product.
func (m *Manager) fetchProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	if m.cache != nil {
		product, err := m.cache.Get(ctx, productID)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("product cache get error: %v", err)
		}
	}

	v, err, _ := m.sfg.Do(strconv.FormatInt(productID, 10), func() (interface{}, error) {
		product, err := m.api.GetProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		if m.cache != nil {
			go func() {
				if errSet := m.cache.Set(context.Background(), product); errSet != nil {
					log.Printf("product cache set error: %v", errSet)
				}
			}()
		}
		return product, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

// Increment raises the quantity of one line item by one. The server-computed
// quantity and total are merged back into that item only, keyed by line-item
// ID, so concurrent mutations on other items are never clobbered.
func (m *Manager) Increment(ctx context.Context, itemID int64) error {
	return m.adjust(ctx, itemID, +1)
}

// Decrement lowers the quantity by one. At quantity 1 it is a local no-op:
// removal is an explicit action, never reachable by decrementing to zero.
func (m *Manager) Decrement(ctx context.Context, itemID int64) error {
	return m.adjust(ctx, itemID, -1)
}

func (m *Manager) adjust(ctx context.Context, itemID int64, delta int) error {
	m.mu.Lock()
	item, ok := m.find(itemID)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: line item %d not in cart", ErrCartMutation, itemID)
	}

	if delta < 0 && item.Quantity <= 1 {
		return nil
	}

	productID, ok := productIDOf(item)
	if !ok {
		return fmt.Errorf("%w: line item %d has no product reference", ErrCartMutation, itemID)
	}

	updated, err := m.api.UpdateQuantity(ctx, m.userID, itemID, productID, item.Quantity+delta)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCartMutation, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == itemID {
			m.items[i].Quantity = updated.Quantity
			m.items[i].TotalPrice = updated.TotalPrice
			break
		}
	}
	return nil
}

// AddItem adds a product-branch to the cart and resyncs. Safe to call when
// the item already exists; the server enforces idempotency.
func (m *Manager) AddItem(ctx context.Context, productBranchID int64) error {
	if err := m.api.AddCartItem(ctx, m.userID, productBranchID, 1); err != nil {
		return fmt.Errorf("%w: %v", ErrCartMutation, err)
	}
	return m.Refresh(ctx)
}

// RemoveItem removes a product-branch from the cart and resyncs.
func (m *Manager) RemoveItem(ctx context.Context, productBranchID int64) error {
	if err := m.api.RemoveCartItem(ctx, m.userID, productBranchID); err != nil {
		return fmt.Errorf("%w: %v", ErrCartMutation, err)
	}
	return m.Refresh(ctx)
}

// Contains reports whether a product is in the loaded cart view. The loaded
// line items are the single authoritative source for this.
func (m *Manager) Contains(productID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if id, ok := productIDOf(item); ok && id == productID {
			return true
		}
	}
	return false
}

// Subtotal formats the sum of server-computed line totals.
func (m *Manager) Subtotal() string {
	return m.snapshot().Subtotal()
}

// Snapshot returns a copy of the current cart view for the checkout flow.
func (m *Manager) Snapshot() *domain.Cart {
	return m.snapshot()
}

func (m *Manager) snapshot() *domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]domain.CartLineItem, len(m.items))
	copy(items, m.items)
	return &domain.Cart{
		CartID:   m.cartID,
		UserID:   m.userID,
		BranchID: m.branchID,
		Items:    items,
	}
}

// find must be called with m.mu held.
func (m *Manager) find(itemID int64) (domain.CartLineItem, bool) {
	for _, item := range m.items {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.CartLineItem{}, false
}

func productIDOf(item domain.CartLineItem) (int64, bool) {
	if item.Product != nil {
		return item.Product.ID, true
	}
	if item.ProductRef != nil {
		return item.ProductRef.ProductID, true
	}
	return 0, false
}

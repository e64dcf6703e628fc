package checkout

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Taosaywong/storemart/internal/domain"
)

var (
	ErrNoPaymentMethod      = errors.New("no payment method selected")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrEmptyCart            = errors.New("cart is empty, nothing to checkout")
)

// MethodPayPal is the one externally integrated payment method.
const MethodPayPal = "PayPal"

// Builder freezes a cart view plus a chosen payment method into an immutable
// CheckoutIntent. The method set is closed but extensible: registering a new
// method never changes the intent shape.
type Builder struct {
	mu      sync.RWMutex
	methods map[string]struct{}
}

func NewBuilder() *Builder {
	b := &Builder{methods: make(map[string]struct{})}
	b.RegisterMethod(MethodPayPal)
	return b
}

func (b *Builder) RegisterMethod(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.methods[name] = struct{}{}
}

// Methods lists the registered payment methods in stable order.
func (b *Builder) Methods() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.methods))
	for name := range b.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build validates the selection and snapshots the cart. The intent holds its
// own copy of the line items, so mutating the live cart afterward cannot
// alter an in-flight checkout.
func (b *Builder) Build(cart *domain.Cart, method string) (*domain.CheckoutIntent, error) {
	if method == "" {
		return nil, ErrNoPaymentMethod
	}

	b.mu.RLock()
	_, known := b.methods[method]
	b.mu.RUnlock()
	if !known {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPaymentMethod, method)
	}

	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	items := make([]domain.IntentItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, domain.IntentItem{
			LineItemID:  item.ID,
			ProductName: name,
			Quantity:    item.Quantity,
			TotalPrice:  item.TotalPrice,
		})
		total = total.Add(item.TotalPrice)
	}

	return &domain.CheckoutIntent{
		CartID:        cart.CartID,
		UserID:        cart.UserID,
		PaymentMethod: method,
		Items:         items,
		TotalAmount:   total,
	}, nil
}

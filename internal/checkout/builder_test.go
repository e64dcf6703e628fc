package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Taosaywong/storemart/internal/domain"
)

func sampleCart() *domain.Cart {
	return &domain.Cart{
		CartID: "cart-1",
		UserID: 1,
		Items: []domain.CartLineItem{
			{
				ID:         1,
				Product:    &domain.Product{ID: 10, Name: "Milo Tin"},
				Quantity:   2,
				TotalPrice: decimal.RequireFromString("10.00"),
			},
			{
				ID:         2,
				Product:    &domain.Product{ID: 20, Name: "Gardenia Loaf"},
				Quantity:   1,
				TotalPrice: decimal.RequireFromString("5.50"),
			},
		},
	}
}

func TestBuild_NoPaymentMethod(t *testing.T) {
	b := NewBuilder()

	intent, err := b.Build(sampleCart(), "")

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, ErrNoPaymentMethod)
}

func TestBuild_UnknownPaymentMethod(t *testing.T) {
	b := NewBuilder()

	intent, err := b.Build(sampleCart(), "Barter")

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}

func TestBuild_EmptyCart(t *testing.T) {
	b := NewBuilder()

	intent, err := b.Build(&domain.Cart{CartID: "cart-1"}, MethodPayPal)

	assert.Nil(t, intent)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuild_TotalMatchesSubtotal(t *testing.T) {
	b := NewBuilder()
	cart := sampleCart()

	intent, err := b.Build(cart, MethodPayPal)

	require.NoError(t, err)
	assert.Equal(t, cart.Subtotal(), intent.TotalAmount.StringFixed(2))
	assert.Equal(t, "15.50", intent.TotalAmount.StringFixed(2))
	assert.Equal(t, MethodPayPal, intent.PaymentMethod)
	require.Len(t, intent.Items, 2)
	assert.Equal(t, "Milo Tin", intent.Items[0].ProductName)
}

func TestBuild_IntentIsImmuneToCartMutation(t *testing.T) {
	b := NewBuilder()
	cart := sampleCart()

	intent, err := b.Build(cart, MethodPayPal)
	require.NoError(t, err)

	// Mutate the live cart after the intent is built.
	cart.Items[0].Quantity = 99
	cart.Items[0].TotalPrice = decimal.RequireFromString("495.00")
	cart.Items = cart.Items[:1]

	assert.Equal(t, 2, intent.Items[0].Quantity)
	assert.Equal(t, "10.00", intent.Items[0].TotalPrice.StringFixed(2))
	require.Len(t, intent.Items, 2)
	assert.Equal(t, "15.50", intent.TotalAmount.StringFixed(2))
}

func TestRegisterMethod_ExtendsSet(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, []string{MethodPayPal}, b.Methods())

	b.RegisterMethod("GrabPay")
	assert.Equal(t, []string{"GrabPay", MethodPayPal}, b.Methods())

	// The intent shape does not change with a new method.
	intent, err := b.Build(sampleCart(), "GrabPay")
	require.NoError(t, err)
	assert.Equal(t, "GrabPay", intent.PaymentMethod)
}

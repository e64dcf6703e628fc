package payment

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRedirectListener_ForwardsCallbacks(t *testing.T) {
	addr := freeAddr(t)
	targets := make(chan string, 1)
	l := NewRedirectListener(addr, func(target string) { targets <- target })

	require.NoError(t, l.Show(context.Background(), "https://paypal.example/approve"))
	defer l.Hide()

	// Show binds before returning, so the endpoint is reachable immediately.
	url := fmt.Sprintf("http://%s/payment-success?paymentId=PAY-7&PayerID=BUYER-3", addr)
	resp, err := http.Get(url)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case target := <-targets:
		assert.Contains(t, target, "payment-success")
		assert.Contains(t, target, "paymentId=PAY-7")
		assert.Contains(t, target, "PayerID=BUYER-3")
	case <-time.After(2 * time.Second):
		t.Fatal("sink never received the callback target")
	}
}

func TestRedirectListener_HideStopsServing(t *testing.T) {
	addr := freeAddr(t)
	l := NewRedirectListener(addr, func(string) {})

	require.NoError(t, l.Show(context.Background(), "https://paypal.example/approve"))

	url := fmt.Sprintf("http://%s/payment-cancel", addr)
	if resp, err := http.Get(url); err == nil {
		resp.Body.Close()
	}

	l.Hide()
	// Hide is idempotent.
	l.Hide()

	_, err := http.Get(url)
	assert.Error(t, err)
}

func TestRedirectListener_AddrInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	l := NewRedirectListener(ln.Addr().String(), func(string) {})
	err = l.Show(context.Background(), "https://paypal.example/approve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bind callback listener")
}

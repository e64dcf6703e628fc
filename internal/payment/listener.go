package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// NavigationSink receives every navigation target an approval surface
// observes; the coordinator's HandleNavigation is the usual sink.
type NavigationSink func(target string)

// RedirectListener is an ApprovalSurface for redirect-based provider return
// URLs: it serves the payment-success and payment-cancel endpoints on
// localhost and forwards each hit to the sink. The user opens the approval
// URL in their own browser; the provider redirects back here.
type RedirectListener struct {
	addr string
	sink NavigationSink

	mu  sync.Mutex
	srv *http.Server
}

func NewRedirectListener(addr string, sink NavigationSink) *RedirectListener {
	return &RedirectListener{addr: addr, sink: sink}
}

func (l *RedirectListener) Show(ctx context.Context, approvalURL string) error {
	r := chi.NewRouter()
	r.Get("/payment-success", l.forward("Payment approved. You can close this tab."))
	r.Get("/payment-cancel", l.forward("Payment cancelled. You can close this tab."))

	// Bind before returning so a taken address fails the session right away
	// instead of leaving it waiting for a callback that can never arrive.
	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("bind callback listener on %s: %w", l.addr, err)
	}

	srv := &http.Server{
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	l.mu.Lock()
	l.srv = srv
	l.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("redirect listener error: %v", err)
		}
	}()

	log.Printf("open the approval page in your browser: %s", approvalURL)
	return nil
}

func (l *RedirectListener) forward(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := "http://" + l.addr + r.URL.String()
		go l.sink(target)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(message))
	}
}

func (l *RedirectListener) Hide() {
	l.mu.Lock()
	srv := l.srv
	l.srv = nil
	l.mu.Unlock()
	if srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("redirect listener shutdown: %v", err)
	}
}

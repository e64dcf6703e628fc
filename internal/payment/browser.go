package payment

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserSurface is an ApprovalSurface that drives a visible Chromium window
// to the approval URL and feeds every frame navigation back to the sink. This
// mirrors an embedded web view: the provider walks the user through approval
// and the redirects land in the same page.
type BrowserSurface struct {
	sink NavigationSink

	mu      sync.Mutex
	browser *rod.Browser
}

func NewBrowserSurface(sink NavigationSink) *BrowserSurface {
	return &BrowserSurface{sink: sink}
}

func (b *BrowserSurface) Show(ctx context.Context, approvalURL string) error {
	// Headful on purpose: the user has to see the provider's approval page.
	controlURL, err := launcher.New().Headless(false).Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: approvalURL})
	if err != nil {
		_ = browser.Close()
		return fmt.Errorf("open approval page: %w", err)
	}

	b.mu.Lock()
	b.browser = browser
	b.mu.Unlock()

	go page.EachEvent(func(e *proto.PageFrameNavigated) {
		b.sink(e.Frame.URL)
	})()

	return nil
}

func (b *BrowserSurface) Hide() {
	b.mu.Lock()
	browser := b.browser
	b.browser = nil
	b.mu.Unlock()
	if browser == nil {
		return
	}
	if err := browser.Close(); err != nil {
		log.Printf("closing approval browser: %v", err)
	}
}

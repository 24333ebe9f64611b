package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"divinespark/config"
)

// HostedGateway integrates the provider's hosted widget. The widget script
// is fetched from the CDN once and re-served to pages; each invocation waits
// on a channel that the browser's success/dismiss callbacks resolve.
type HostedGateway struct {
	ScriptURL  string
	ThemeColor string
	// Wait bounds how long an open invocation may stay unresolved before
	// it counts as dismissed.
	Wait   time.Duration
	Logger *zap.Logger

	http *resty.Client

	mu      sync.Mutex
	script  []byte
	pending map[string]chan Result
}

// NewHostedGateway builds a gateway from the loaded application config.
func NewHostedGateway(logger *zap.Logger) *HostedGateway {
	return &HostedGateway{
		ScriptURL:  config.AppConfig.CheckoutScriptURL,
		ThemeColor: config.AppConfig.CheckoutThemeColor,
		Wait:       time.Duration(config.AppConfig.CheckoutWaitSecs) * time.Second,
		Logger:     logger,
		http:       resty.New().SetTimeout(10 * time.Second),
		pending:    make(map[string]chan Result),
	}
}

// EnsureLoaded fetches the widget script from the CDN if it is not cached
// yet. A previous failure does not poison later attempts; the next booking
// retries the fetch.
func (g *HostedGateway) EnsureLoaded(ctx context.Context) error {
	g.mu.Lock()
	loaded := g.script != nil
	g.mu.Unlock()
	if loaded {
		return nil
	}

	resp, err := g.http.R().SetContext(ctx).Get(g.ScriptURL)
	if err != nil {
		return fmt.Errorf("failed to load checkout script: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("failed to load checkout script: status %d", resp.StatusCode())
	}

	g.mu.Lock()
	g.script = resp.Body()
	g.mu.Unlock()
	g.Logger.Info("checkout script loaded", zap.String("url", g.ScriptURL))
	return nil
}

// Script returns the cached widget script bytes, or nil when not loaded.
func (g *HostedGateway) Script() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.script
}

// Open blocks until the browser resolves the invocation or the wait
// expires. An expired wait counts as a dismissal: the viewer walked away
// without paying.
func (g *HostedGateway) Open(ctx context.Context, attemptID string, order Order) Result {
	ch := make(chan Result, 1)

	g.mu.Lock()
	g.pending[attemptID] = ch
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		delete(g.pending, attemptID)
		g.mu.Unlock()
	}()

	timer := time.NewTimer(g.Wait)
	defer timer.Stop()

	select {
	case result := <-ch:
		return result
	case <-timer.C:
		return Result{Outcome: OutcomeDismissed}
	case <-ctx.Done():
		return Result{Outcome: OutcomeDismissed, Err: ctx.Err()}
	}
}

// Options builds the widget instantiation payload for the browser.
func (g *HostedGateway) Options(order Order) WidgetOptions {
	return WidgetOptions{
		Key:         order.Key,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        order.Name,
		Description: order.Description,
		OrderID:     order.OrderID,
		Prefill:     order.Prefill,
		Theme:       WidgetTheme{Color: g.ThemeColor},
	}
}

// ResolveSuccess settles a pending invocation with the provider's payment
// identifier. Unknown attempt ids are ignored; the attempt already settled.
func (g *HostedGateway) ResolveSuccess(attemptID, paymentID string) bool {
	return g.resolve(attemptID, Result{Outcome: OutcomeSuccess, PaymentID: paymentID})
}

// ResolveDismiss settles a pending invocation as closed-without-paying.
func (g *HostedGateway) ResolveDismiss(attemptID string) bool {
	return g.resolve(attemptID, Result{Outcome: OutcomeDismissed})
}

func (g *HostedGateway) resolve(attemptID string, result Result) bool {
	g.mu.Lock()
	ch, ok := g.pending[attemptID]
	g.mu.Unlock()
	if !ok {
		return false
	}
	select {
	case ch <- result:
		return true
	default:
		return false
	}
}

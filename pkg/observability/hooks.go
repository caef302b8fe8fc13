// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline stages, API requests and clipboard copies.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The Prometheus implementation lives in internal/telemetry and is
// registered by the serve command.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(metrics)
//	    observability.SetHTTPHooks(metrics)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParse(ctx, len(points), leftover, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the point transform pipeline.
type PipelineHooks interface {
	// OnParse records a parsed input: the number of points produced and the
	// number of trailing tokens dropped.
	OnParse(ctx context.Context, points, leftover int, duration time.Duration)

	// OnTransform records a transform applied to a point list.
	OnTransform(ctx context.Context, mode string, points int, duration time.Duration)

	// OnRender records rendered output.
	OnRender(ctx context.Context, format string, size int, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// Clipboard Hooks
// =============================================================================

// ClipboardHooks receives events from clipboard copies.
type ClipboardHooks interface {
	// OnCopy records a copy attempt; err is nil on success.
	OnCopy(ctx context.Context, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParse(context.Context, int, int, time.Duration)        {}
func (NoopPipelineHooks) OnTransform(context.Context, string, int, time.Duration) {}
func (NoopPipelineHooks) OnRender(context.Context, string, int, time.Duration)    {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                       {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// NoopClipboardHooks is a no-op implementation of ClipboardHooks.
type NoopClipboardHooks struct{}

func (NoopClipboardHooks) OnCopy(context.Context, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks  PipelineHooks  = NoopPipelineHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	clipboardHooks ClipboardHooks = NoopClipboardHooks{}
	hooksMu        sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// SetClipboardHooks registers custom clipboard hooks.
func SetClipboardHooks(h ClipboardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		clipboardHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Clipboard returns the registered clipboard hooks.
func Clipboard() ClipboardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return clipboardHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	httpHooks = NoopHTTPHooks{}
	clipboardHooks = NoopClipboardHooks{}
}

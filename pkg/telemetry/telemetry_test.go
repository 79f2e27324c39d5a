package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"

	"github.com/ghuser/assettrack/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:      "test-service",
		ServiceVersion:   "test",
		Environment:      "testing",
		OtelEndpoint:     "", // OTLP export disabled; Prometheus reader only
		TraceSampleRatio: 1,
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	_, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
}

func TestSetup_ExportsInventoryMetrics(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	m, err := NewInventoryMetrics(otel.GetMeterProvider())
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	m.RecordMutation(context.Background(), "add_block", true)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))
	body := rr.Body.String()
	for _, want := range []string{"mutations", "add_block", "go_goroutines"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestSetup_TwiceDoesNotConflict(t *testing.T) {
	for i := 0; i < 2; i++ {
		shutdown, _, err := Setup(context.Background(), baseConfig())
		if err != nil {
			t.Fatalf("setup %d: %v", i, err)
		}
		_ = shutdown(context.Background())
	}
}

func TestCaptureError_WithoutSentry(t *testing.T) {
	// No client is bound; the call must not panic.
	CaptureError(context.Background(), nil)
	CaptureError(context.Background(), http.ErrBodyNotAllowed, "operation", "add_block")
}

func TestDropCanceled(t *testing.T) {
	event := &sentry.Event{Message: "publish failed"}
	tests := []struct {
		name string
		hint *sentry.EventHint
		keep bool
	}{
		{"no hint", nil, true},
		{"other error", &sentry.EventHint{OriginalException: errors.New("bus closed")}, true},
		{"canceled", &sentry.EventHint{OriginalException: fmt.Errorf("publish: %w", context.Canceled)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dropCanceled(event, tt.hint)
			if (got != nil) != tt.keep {
				t.Errorf("dropCanceled kept=%v, want %v", got != nil, tt.keep)
			}
		})
	}
}

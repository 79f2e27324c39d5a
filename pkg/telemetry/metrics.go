package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/assettrack/inventory"

// Outcome attribute values for inventory.mutations.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
)

// InventoryMetrics records mutation engine activity. A nil *InventoryMetrics
// is valid and records nothing.
type InventoryMetrics struct {
	mutations metric.Int64Counter
}

// NewInventoryMetrics registers the inventory instruments on mp.
// Pass otel.GetMeterProvider() after Setup so values reach /metrics.
func NewInventoryMetrics(mp metric.MeterProvider) (*InventoryMetrics, error) {
	meter := mp.Meter(meterName)
	mutations, err := meter.Int64Counter("inventory.mutations",
		metric.WithDescription("Mutation attempts by operation and outcome"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("inventory.mutations counter: %w", err)
	}
	return &InventoryMetrics{mutations: mutations}, nil
}

// RecordMutation counts one mutation attempt.
func (m *InventoryMetrics) RecordMutation(ctx context.Context, operation string, applied bool) {
	if m == nil {
		return
	}
	outcome := OutcomeNoop
	if applied {
		outcome = OutcomeApplied
	}
	m.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

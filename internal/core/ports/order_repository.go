package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository owns the JSON encode/decode boundary for the structured
// fields (site, items, answers): callers only ever see materialized values,
// never their serialized form.
type OrderRepository interface {
	// Add persists a new order and assigns its store-generated ID to the
	// aggregate. The order must be valid and must not carry an ID yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Updating a nonexistent ID affects zero rows and surfaces a
	// distinguishable not-found error, never a silent success.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its store-assigned ID.
	// Returns errs.ObjectNotFoundError when no such order exists. Corruption
	// in any single serialized field degrades that field to its safe default
	// instead of failing the read.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInTransitStartedBefore retrieves orders still in transit whose
	// dispatch started before the given bound, oldest first.
	GetAllInTransitStartedBefore(ctx context.Context, bound kernel.Timestamp) ([]*order.Order, error)
}

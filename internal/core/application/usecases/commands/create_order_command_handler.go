package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the new order, re-reads it so the caller sees the authoritative
// store-generated fields (ID, createdAt), and fans the created order out to
// all audience groups.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command and returns the materialized
// order as stored. The order_created event is published only after a
// successful commit; publication is fire-and-forget and cannot fail the
// operation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.Number(),
		order.NewSite(cmd.SiteName(), cmd.SiteAddress()),
		cmd.Items(),
		cmd.Driver(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	// Round-trip through storage so generated fields are authoritative.
	stored, err := orderRepo.Get(ctx, newOrder.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ports.EventOrderCreated, stored.Snapshot())
	return stored, nil
}

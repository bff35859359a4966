package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// StartDispatchCommandHandler transitions an order to in_transit.
// The operation is a lookup-mutate-update-lookup sequence: a nonexistent
// order surfaces a distinguishable not-found error on the first lookup
// rather than an update that silently affects zero rows.
type StartDispatchCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewStartDispatchCommandHandler creates a handler for dispatch start operations.
func NewStartDispatchCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) StartDispatchCommandHandler {
	return StartDispatchCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch start and returns the updated order as
// re-read from storage. Publishes dispatch_started after a successful commit.
func (h *StartDispatchCommandHandler) Handle(ctx context.Context, cmd StartDispatchCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Start(cmd.Photo(), cmd.Answers()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	stored, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ports.EventDispatchStarted, stored.Snapshot())
	return stored, nil
}

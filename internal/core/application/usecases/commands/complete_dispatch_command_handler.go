package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// CompleteDispatchCommandHandler transitions an order to completed.
// No guard requires the order to have been started first; the transition
// table in the domain model is the single source of truth for that policy.
type CompleteDispatchCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCompleteDispatchCommandHandler creates a handler for dispatch completion operations.
func NewCompleteDispatchCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CompleteDispatchCommandHandler {
	return CompleteDispatchCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the dispatch completion and returns the updated order as
// re-read from storage. Publishes dispatch_completed after a successful commit.
func (h *CompleteDispatchCommandHandler) Handle(ctx context.Context, cmd CompleteDispatchCommand) (*order.Order, error) {
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

	if err = aggregate.Complete(cmd.Photo(), cmd.Answers()); err != nil {
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

	h.notifier.Publish(ports.EventDispatchCompleted, stored.Snapshot())
	return stored, nil
}

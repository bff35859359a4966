package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDispatchCommandIsNotConstructed = errors.New(
	"CompleteDispatchCommand must be created via NewCompleteDispatchCommand constructor",
)

// CompleteDispatchCommand represents a driver marking an order as delivered.
// Mirrors StartDispatchCommand: optional photo filename plus optional decoded
// JSON answers.
type CompleteDispatchCommand struct {
	orderID int64
	photo   *string
	answers any

	guard guard.ConstructorGuard
}

// NewCompleteDispatchCommand creates a command to complete a dispatch.
func NewCompleteDispatchCommand(orderID int64, photo *string, answers any) (CompleteDispatchCommand, error) {
	if orderID <= 0 {
		return CompleteDispatchCommand{}, errs.NewValueIsInvalidError("orderID")
	}

	return CompleteDispatchCommand{
		orderID: orderID,
		photo:   photo,
		answers: answers,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDispatchCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDispatchCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CompleteDispatchCommand) OrderID() int64 {
	return c.orderID
}

// Photo returns the stored completion photo filename, nil if absent.
func (c CompleteDispatchCommand) Photo() *string {
	return c.photo
}

// Answers returns the completion answers, nil if absent.
func (c CompleteDispatchCommand) Answers() any {
	return c.answers
}

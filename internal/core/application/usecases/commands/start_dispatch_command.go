package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrStartDispatchCommandIsNotConstructed = errors.New(
	"StartDispatchCommand must be created via NewStartDispatchCommand constructor",
)

// StartDispatchCommand represents a driver marking an order as picked up.
// photo is the stored filename of the start photo on the upload store, nil
// when the driver supplied none; answers is an arbitrary decoded JSON value
// (the boundary layer rejects malformed payloads before a command exists).
type StartDispatchCommand struct {
	orderID int64
	photo   *string
	answers any

	guard guard.ConstructorGuard
}

// NewStartDispatchCommand creates a command to start a dispatch.
// The order ID must be positive; photo and answers are optional.
func NewStartDispatchCommand(orderID int64, photo *string, answers any) (StartDispatchCommand, error) {
	if orderID <= 0 {
		return StartDispatchCommand{}, errs.NewValueIsInvalidError("orderID")
	}

	return StartDispatchCommand{
		orderID: orderID,
		photo:   photo,
		answers: answers,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDispatchCommand) Validate() error {
	return c.guard.Validate(ErrStartDispatchCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c StartDispatchCommand) OrderID() int64 {
	return c.orderID
}

// Photo returns the stored start photo filename, nil if absent.
func (c StartDispatchCommand) Photo() *string {
	return c.photo
}

// Answers returns the driver's start answers, nil if absent.
func (c StartDispatchCommand) Answers() any {
	return c.answers
}

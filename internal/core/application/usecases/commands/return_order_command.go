package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents an order coming back, from whatever state it
// was in. notes is an arbitrary decoded JSON value describing the return;
// photo is the stored filename of the return photo.
type ReturnOrderCommand struct {
	orderID int64
	notes   any
	photo   *string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return an order.
func NewReturnOrderCommand(orderID int64, notes any, photo *string) (ReturnOrderCommand, error) {
	if orderID <= 0 {
		return ReturnOrderCommand{}, errs.NewValueIsInvalidError("orderID")
	}

	return ReturnOrderCommand{
		orderID: orderID,
		notes:   notes,
		photo:   photo,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ReturnOrderCommand) OrderID() int64 {
	return c.orderID
}

// Notes returns the return notes, nil if absent.
func (c ReturnOrderCommand) Notes() any {
	return c.notes
}

// Photo returns the stored return photo filename, nil if absent.
func (c ReturnOrderCommand) Photo() *string {
	return c.photo
}

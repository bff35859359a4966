package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order.
// Every field is caller-optional: an empty order number means "generate one",
// and the tracker does not insist on site details, items, or a driver at
// creation time. Normalization and timestamping happen in the domain model.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("", "Acme Site", "1 Main St", []string{"box-a"}, "D1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	number      string
	siteName    string
	siteAddress string
	items       []string
	driver      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
func NewCreateOrderCommand(number, siteName, siteAddress string, items []string, driver string) (CreateOrderCommand, error) {
	return CreateOrderCommand{
		number:      number,
		siteName:    siteName,
		siteAddress: siteAddress,
		items:       items,
		driver:      driver,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Number returns the caller-supplied order number, empty when one should be generated.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// SiteName returns the delivery site name.
func (c CreateOrderCommand) SiteName() string {
	return c.siteName
}

// SiteAddress returns the delivery site address.
func (c CreateOrderCommand) SiteAddress() string {
	return c.siteAddress
}

// Items returns the ordered item list.
func (c CreateOrderCommand) Items() []string {
	return c.items
}

// Driver returns the driver identifier.
func (c CreateOrderCommand) Driver() string {
	return c.driver
}

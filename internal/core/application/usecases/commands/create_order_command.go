package commands

import (
	"errors"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/order"
	"punarvasthra/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new catalog order.
// Line items and customer details are validated by the order aggregate.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	customer    order.Customer
	items       []order.Item
	totalAmount float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new catalog order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer order.Customer,
	items []order.Item,
	totalAmount float64,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:     orderID,
		orderNumber: orderNumber,
		customer:    customer,
		items:       items,
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the store-facing order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Customer returns the customer placing the order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// TotalAmount returns the order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

package order

import (
	"errors"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Item is a single line of an order.
type Item struct {
	Title    string
	Price    float64
	Quantity int
}

func (i Item) validate() error {
	if i.Title == "" {
		return errs.NewValueIsRequiredError("item title")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidError("item quantity")
	}
	if i.Price < 0 {
		return errs.NewValueIsInvalidError("item price")
	}
	return nil
}

// Customer holds the contact and shipping details of the person who placed
// the order. Opaque to the workflow core; carried for persistence and for
// rendering the confirmation email.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
}

func (c Customer) validate() error {
	if c.FirstName == "" {
		return errs.NewValueIsRequiredError("customer first name")
	}
	if c.Email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	return nil
}

// Order is the aggregate root for a catalog order. It manages the order
// lifecycle from placement through fulfilment.
//
// Unlike submissions and customization requests, orders carry no tracked
// notification state: the confirmation email is fire-and-forget.
type Order struct {
	id          kernel.UUID
	orderNumber string
	customer    Customer
	items       []Item
	totalAmount float64
	placedAt    time.Time
	status      Status

	isConstructed bool
}

// NewOrder creates a pending order. The order number must be unique per
// store; uniqueness is enforced by the persistence layer.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	items []Item,
	totalAmount float64,
	placedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if err := customer.validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.validate(); err != nil {
			return nil, err
		}
	}
	if totalAmount < 0 {
		return nil, errs.NewValueIsInvalidError("totalAmount")
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		customer:      customer,
		items:         items,
		totalAmount:   totalAmount,
		placedAt:      placedAt,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persisted state.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	items []Item,
	totalAmount float64,
	placedAt time.Time,
	status Status,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		customer:      customer,
		items:         items,
		totalAmount:   totalAmount,
		placedAt:      placedAt,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the store-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the customer who placed the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// PlacedAt returns the time the order was placed.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus applies a requested transition. The fulfilment sequence is
// strict (no skipping, no backward moves) and cancellation is only possible
// before shipping; anything else is rejected with an InvalidTransitionError
// and leaves the aggregate untouched.
func (o *Order) ChangeStatus(requested Status) error {
	newStatus, err := o.status.ChangeTo(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

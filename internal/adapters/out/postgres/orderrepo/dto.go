// Package orderrepo provides data transfer objects and mapping functions for
// catalog order persistence. Orders and their line items map to two tables
// joined by the order ID.
package orderrepo

import (
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderNumber string      `gorm:"uniqueIndex"`
	Customer    CustomerDTO `gorm:"embedded"`
	Items       []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount float64
	PlacedAt    time.Time
	Status      int `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer columns within the order table.
type CustomerDTO struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
}

// ItemDTO represents one order line.
type ItemDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Title    string
	Price    float64
	Quantity int
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	customer := aggregate.Customer()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Customer: CustomerDTO{
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
			Phone:     customer.Phone,
			Address:   customer.Address,
			City:      customer.City,
		},
		Items:       items,
		TotalAmount: aggregate.TotalAmount(),
		PlacedAt:    aggregate.PlacedAt(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item{
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Customer{
			FirstName: dto.Customer.FirstName,
			LastName:  dto.Customer.LastName,
			Email:     dto.Customer.Email,
			Phone:     dto.Customer.Phone,
			Address:   dto.Customer.Address,
			City:      dto.Customer.City,
		},
		items,
		dto.TotalAmount,
		dto.PlacedAt,
		order.Status(dto.Status),
	)
}

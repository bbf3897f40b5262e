// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and submission time.
//
// The line snapshot is stored as a JSONB document and the total as an exact
// numeric string, so no price ever passes through a float.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableNumber string    `gorm:"index"`
	Lines       []byte    `gorm:"type:jsonb"`
	Total       string    `gorm:"type:numeric(12,2)"`
	Status      int       `gorm:"index"`
	Version     int
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineDTO is the JSONB shape of one snapshot line.
type lineDTO struct {
	MenuItemID int    `json:"menuItemId"`
	Name       string `json:"name"`
	Price      string `json:"price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := aggregate.Lines()
	lineDTOs := make([]lineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, lineDTO{
			MenuItemID: line.MenuItemID(),
			Name:       line.Name(),
			Price:      line.Price().String(),
		})
	}

	rawLines, err := json.Marshal(lineDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		TableNumber: aggregate.TableNumber(),
		Lines:       rawLines,
		Total:       aggregate.Total().String(),
		Status:      int(aggregate.Status()),
		Version:     aggregate.Version(),
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lineDTOs []lineDTO
	if err = json.Unmarshal(dto.Lines, &lineDTOs); err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		price, priceErr := kernel.MoneyFromString(l.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := order.NewLine(l.MenuItemID, l.Name, price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	total, err := kernel.MoneyFromString(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.TableNumber, lines, total,
		order.Status(dto.Status), dto.Version, dto.CreatedAt)
}

// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders store no status column: the row carries the
// milestone timestamps the status engine derives the status from, plus the
// attached quotations.
package orderrepo

import (
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex"`
	CreatedAt   time.Time

	QuotedAt            *time.Time
	ConfirmedAt         *time.Time
	ProductionStartedAt *time.Time
	CompletedAt         *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	CanceledAt          *time.Time

	ProductionStageID *uuid.UUID `gorm:"type:uuid"`

	Quotations []QuotationDTO `gorm:"foreignKey:OrderID"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// QuotationDTO represents one quotation row attached to an order. At most one
// quotation per order is active at a time; AddQuotation enforces that.
type QuotationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ValidUntil time.Time
	IsActive   bool
}

// TableName overrides GORM's default naming convention to use "order_quotations".
func (QuotationDTO) TableName() string {
	return "order_quotations"
}

// fromDomain converts an order snapshot to its database representation.
func fromDomain(snap order.Snapshot) OrderDTO {
	var stageID *uuid.UUID
	if snap.ProductionStageID != nil {
		raw := snap.ProductionStageID.Bytes()
		stageID = &raw
	}

	quotations := make([]QuotationDTO, 0, len(snap.Quotations))
	for _, q := range snap.Quotations {
		quotations = append(quotations, quotationFromDomain(snap.ID, q))
	}

	return OrderDTO{
		ID:                  snap.ID.Bytes(),
		OrderNumber:         snap.OrderNumber,
		CreatedAt:           snap.CreatedAt,
		QuotedAt:            snap.QuotedAt,
		ConfirmedAt:         snap.ConfirmedAt,
		ProductionStartedAt: snap.ProductionStartedAt,
		CompletedAt:         snap.CompletedAt,
		ShippedAt:           snap.ShippedAt,
		DeliveredAt:         snap.DeliveredAt,
		CanceledAt:          snap.CanceledAt,
		ProductionStageID:   stageID,
		Quotations:          quotations,
	}
}

func quotationFromDomain(orderID kernel.UUID, q order.QuotationRef) QuotationDTO {
	return QuotationDTO{
		ID:         q.ID.Bytes(),
		OrderID:    orderID.Bytes(),
		ValidUntil: q.ValidUntil,
		IsActive:   q.IsActive,
	}
}

// toDomain converts a database DTO to an order snapshot.
func toDomain(dto OrderDTO) (order.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Snapshot{}, err
	}

	var stageID *kernel.UUID
	if dto.ProductionStageID != nil {
		sID, stageErr := kernel.UUIDFromBytes((*dto.ProductionStageID)[:])
		if stageErr != nil {
			return order.Snapshot{}, stageErr
		}
		stageID = &sID
	}

	quotations := make([]order.QuotationRef, 0, len(dto.Quotations))
	for _, q := range dto.Quotations {
		qID, qErr := kernel.UUIDFromBytes(q.ID[:])
		if qErr != nil {
			return order.Snapshot{}, qErr
		}
		quotations = append(quotations, order.QuotationRef{
			ID:         qID,
			ValidUntil: q.ValidUntil,
			IsActive:   q.IsActive,
		})
	}

	return order.Snapshot{
		ID:                  id,
		OrderNumber:         dto.OrderNumber,
		CreatedAt:           dto.CreatedAt,
		QuotedAt:            dto.QuotedAt,
		ConfirmedAt:         dto.ConfirmedAt,
		ProductionStartedAt: dto.ProductionStartedAt,
		CompletedAt:         dto.CompletedAt,
		ShippedAt:           dto.ShippedAt,
		DeliveredAt:         dto.DeliveredAt,
		CanceledAt:          dto.CanceledAt,
		ProductionStageID:   stageID,
		Quotations:          quotations,
	}, nil
}

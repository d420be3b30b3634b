package orderrepo

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, snap order.Snapshot) error {
	if err := snap.ID.Validate(); err != nil {
		return err
	}
	if snap.OrderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if snap.CreatedAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	dto := fromDomain(snap)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order snapshot by ID, including its quotations.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (order.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Quotations").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Snapshot{}, errs.NewObjectNotFoundError("order", id.String())
		}
		return order.Snapshot{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves snapshots for every order, for batch auditing.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]order.Snapshot, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Quotations").Find(&dtos).Error; err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(dtos))
	for _, dto := range dtos {
		snap, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// SetMilestone stamps the milestone's timestamp on the order row. The column
// name is the milestone's snake_case name, so the mapping needs no switch.
func (r *GormOrderRepository) SetMilestone(
	ctx context.Context, id kernel.UUID, m order.Milestone, at time.Time,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update(m.String(), at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// AddQuotation deactivates the previously active quotation, attaches the new
// one, and stamps quoted_at. The caller is expected to run this inside a unit
// of work so the three writes land atomically.
func (r *GormOrderRepository) AddQuotation(
	ctx context.Context, id kernel.UUID, q order.QuotationRef, quotedAt time.Time,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := q.ID.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	err := db.Model(&QuotationDTO{}).
		Where("order_id = ? AND is_active", id.Bytes()).
		Update("is_active", false).Error
	if err != nil {
		return err
	}

	dto := quotationFromDomain(id, q)
	if err = db.Create(&dto).Error; err != nil {
		return err
	}

	result := db.Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Update("quoted_at", quotedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

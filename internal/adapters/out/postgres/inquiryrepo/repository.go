package inquiryrepo

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInquiryRepository implements InquiryRepository using GORM.
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GORM inquiry repository.
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// Add saves a new inquiry to the database.
func (r *GormInquiryRepository) Add(ctx context.Context, snap inquiry.Snapshot) error {
	if err := snap.ID.Validate(); err != nil {
		return err
	}
	if snap.CreatedAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	dto := fromDomain(snap)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an inquiry snapshot by ID.
func (r *GormInquiryRepository) Get(ctx context.Context, id kernel.UUID) (inquiry.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return inquiry.Snapshot{}, err
	}

	var dto InquiryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inquiry.Snapshot{}, errs.NewObjectNotFoundError("inquiry", id.String())
		}
		return inquiry.Snapshot{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves snapshots for every inquiry, for batch auditing.
func (r *GormInquiryRepository) GetAll(ctx context.Context) ([]inquiry.Snapshot, error) {
	var dtos []InquiryDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	snapshots := make([]inquiry.Snapshot, 0, len(dtos))
	for _, dto := range dtos {
		snap, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// SetStatus writes the status code and, for decision statuses, stamps the
// matching timestamp in the same update.
func (r *GormInquiryRepository) SetStatus(
	ctx context.Context, id kernel.UUID, status inquiry.Status, at time.Time,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	updates := map[string]any{"status_code": int(status)}
	switch status {
	case inquiry.Accepted:
		updates["accepted_at"] = at
	case inquiry.Rejected:
		updates["rejected_at"] = at
	case inquiry.Closed:
		updates["closed_at"] = at
	}

	result := r.db.WithContext(ctx).
		Model(&InquiryDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inquiry", id.String())
	}

	return nil
}

package historyrepo

import (
	"context"

	"manufacturing/internal/core/domain/model/history"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusChangeStore implements StatusChangeStore using GORM.
type GormStatusChangeStore struct {
	db *gorm.DB
}

// NewGormStatusChangeStore creates a new GORM status-change store.
func NewGormStatusChangeStore(db *gorm.DB) *GormStatusChangeStore {
	return &GormStatusChangeStore{db: db}
}

// Append inserts one change record.
func (s *GormStatusChangeStore) Append(ctx context.Context, record history.ChangeRecord) error {
	if err := record.ID.Validate(); err != nil {
		return err
	}
	if err := record.EntityID.Validate(); err != nil {
		return err
	}
	if record.ToStatus == "" {
		return errs.NewValueIsRequiredError("toStatus")
	}

	dto, err := fromDomain(record)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}

// ListByEntity returns all records for one entity, ascending by change time.
func (s *GormStatusChangeStore) ListByEntity(
	ctx context.Context, entityType history.EntityType, entityID kernel.UUID,
) ([]history.ChangeRecord, error) {
	if err := entityID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ChangeRecordDTO
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID.Bytes()).
		Order("changed_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// ListByEntityType returns all records of one entity type, ascending by entity
// id and then change time.
func (s *GormStatusChangeStore) ListByEntityType(
	ctx context.Context, entityType history.EntityType,
) ([]history.ChangeRecord, error) {
	var dtos []ChangeRecordDTO
	err := s.db.WithContext(ctx).
		Where("entity_type = ?", string(entityType)).
		Order("entity_id ASC, changed_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Query returns records matching the filter, descending by change time,
// paginated.
func (s *GormStatusChangeStore) Query(ctx context.Context, filter history.Filter) ([]history.ChangeRecord, error) {
	db := s.db.WithContext(ctx).Model(&ChangeRecordDTO{})

	if filter.EntityType != "" {
		db = db.Where("entity_type = ?", string(filter.EntityType))
	}
	if filter.EntityID != nil {
		db = db.Where("entity_id = ?", filter.EntityID.Bytes())
	}
	if filter.ChangedBy != "" {
		db = db.Where("changed_by = ?", filter.ChangedBy)
	}
	if filter.From != nil {
		db = db.Where("changed_at >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("changed_at <= ?", *filter.To)
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		db = db.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var dtos []ChangeRecordDTO
	if err := db.Order("changed_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []ChangeRecordDTO) ([]history.ChangeRecord, error) {
	records := make([]history.ChangeRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

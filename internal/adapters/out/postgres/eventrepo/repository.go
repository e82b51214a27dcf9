package eventrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// GormEventRepository implements ports.EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add appends the events to the outbox in the given order. All rows share one
// occurred-at timestamp; relative order is carried by the position column.
func (r *GormEventRepository) Add(ctx context.Context, events []order.PlaceOrderEvent) error {
	if len(events) == 0 {
		return nil
	}

	occurredAt := time.Now().UTC()
	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		dto, err := fromDomain(event, occurredAt)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished retrieves at most limit pending events in insertion order.
func (r *GormEventRepository) GetUnpublished(
	ctx context.Context, limit int,
) ([]ports.OutboxEvent, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("position").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]ports.OutboxEvent, 0, len(dtos))
	for _, dto := range dtos {
		events = append(events, toPort(dto))
	}

	return events, nil
}

// MarkPublished stamps the given events as published.
func (r *GormEventRepository) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id IN ?", ids).
		Update("published_at", &now).Error
}

package persistence

import (
	"context"

	"github.com/culturehub/backend/internal/domain/schedule"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormScheduleRepository implements schedule.Repository using GORM
type GormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GormScheduleRepository
func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// FindByIDWithGroup loads a schedule with its group. A group reference that
// does not resolve is reported as a missing schedule.
func (r *GormScheduleRepository) FindByIDWithGroup(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	var m models.ScheduleModel
	if err := r.db.WithContext(ctx).Preload("Group").First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Schedule")
	}
	if m.GroupID != nil && m.Group == nil {
		return nil, shared.NotFound("Schedule")
	}
	return m.ToDomain(), nil
}

var _ schedule.Repository = (*GormScheduleRepository)(nil)

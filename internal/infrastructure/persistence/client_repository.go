package persistence

import (
	"context"
	"time"

	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements client.Repository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	var m models.ClientModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Client")
	}
	return m.ToDomain(), nil
}

// ExistsByID checks whether a client exists
func (r *GormClientRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateActivity persists status and last activity timestamp
func (r *GormClientRepository) UpdateActivity(ctx context.Context, c *client.Client) error {
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"status":           c.Status,
			"last_activity_at": c.LastActivityAt,
			"updated_at":       c.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Client")
	}
	return nil
}

// DeactivateDormant flips ACTIVE clients idle since before cutoff to INACTIVE.
// VIP and already inactive clients are left alone by the status filter.
func (r *GormClientRepository) DeactivateDormant(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("status = ? AND COALESCE(last_activity_at, created_at) < ?", client.StatusActive, cutoff).
		Updates(map[string]any{
			"status":     client.StatusInactive,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// Create inserts a client. Clients are owned by another service; this is used
// by seeding and tests.
func (r *GormClientRepository) Create(ctx context.Context, c *client.Client) error {
	return r.db.WithContext(ctx).Create(models.ClientModelFromDomain(c)).Error
}

var _ client.Repository = (*GormClientRepository)(nil)

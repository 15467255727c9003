package persistence

import (
	"context"

	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/culturehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSubscriptionRepository implements subscription.Repository using GORM
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GormSubscriptionRepository
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// FindByID finds a subscription with its kind
func (r *GormSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	var m models.SubscriptionModel
	if err := r.db.WithContext(ctx).Preload("SubscriptionType").First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Subscription")
	}
	return m.ToDomain(), nil
}

// FindByIDForUpdate loads the subscription with SELECT ... FOR UPDATE on its row
func (r *GormSubscriptionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	var m models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("SubscriptionType").
		First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Subscription")
	}
	return m.ToDomain(), nil
}

// FindEligible returns ACTIVE subscriptions of the group covering the date
// that still have visits, newest first. Unlimited subscriptions carry a NULL
// counter and always qualify on that condition.
func (r *GormSubscriptionRepository) FindEligible(ctx context.Context, filter subscription.EligibilityFilter) ([]subscription.Subscription, error) {
	query := r.db.WithContext(ctx).
		Preload("SubscriptionType").
		Where("group_id = ? AND status = ?", filter.GroupID, subscription.StatusActive).
		Where("start_date <= ? AND end_date >= ?", filter.Date, filter.Date).
		Where("remaining_visits IS NULL OR remaining_visits > 0")
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}

	var rows []models.SubscriptionModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	subs := make([]subscription.Subscription, len(rows))
	for i := range rows {
		subs[i] = *rows[i].ToDomain()
	}
	return subs, nil
}

// DecrementVisits takes one visit in a single conditional UPDATE so two
// concurrent marks can never drive the counter below zero.
func (r *GormSubscriptionRepository) DecrementVisits(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ? AND remaining_visits > 0", id).
		UpdateColumn("remaining_visits", gorm.Expr("remaining_visits - 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// IncrementVisits gives one visit back. A NULL counter stays NULL.
func (r *GormSubscriptionRepository) IncrementVisits(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ? AND remaining_visits IS NOT NULL", id).
		UpdateColumn("remaining_visits", gorm.Expr("remaining_visits + 1")).Error
}

var _ subscription.Repository = (*GormSubscriptionRepository)(nil)

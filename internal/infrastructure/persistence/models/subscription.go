package models

import (
	"time"

	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionTypeModel is the persistence model for price list entries
type SubscriptionTypeModel struct {
	BaseModel
	Name           string            `gorm:"type:varchar(200);not null"`
	Kind           subscription.Kind `gorm:"column:type;type:varchar(20);not null"`
	VisitsIncluded *int
	DurationDays   int             `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (SubscriptionTypeModel) TableName() string {
	return "subscription_types"
}

// SubscriptionModel is the persistence model for client subscriptions
type SubscriptionModel struct {
	BaseModel
	ClientID           uuid.UUID              `gorm:"type:uuid;not null;index"`
	GroupID            uuid.UUID              `gorm:"type:uuid;not null;index:idx_subscriptions_eligibility,priority:1"`
	SubscriptionTypeID uuid.UUID              `gorm:"type:uuid;not null"`
	SubscriptionType   *SubscriptionTypeModel `gorm:"foreignKey:SubscriptionTypeID"`
	RemainingVisits    *int                   `gorm:"check:remaining_visits >= 0"`
	StartDate          time.Time              `gorm:"type:date;not null"`
	EndDate            time.Time              `gorm:"type:date;not null"`
	Status             subscription.Status    `gorm:"type:varchar(20);not null;default:'ACTIVE';index:idx_subscriptions_eligibility,priority:2"`
}

// TableName returns the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToDomain converts the model to a domain Subscription. The kind comes from
// the preloaded subscription type.
func (m *SubscriptionModel) ToDomain() *subscription.Subscription {
	s := &subscription.Subscription{
		BaseEntity:         m.BaseModel.ToDomain(),
		ClientID:           m.ClientID,
		GroupID:            m.GroupID,
		SubscriptionTypeID: m.SubscriptionTypeID,
		RemainingVisits:    m.RemainingVisits,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		Status:             m.Status,
	}
	if m.SubscriptionType != nil {
		s.Kind = m.SubscriptionType.Kind
	}
	return s
}

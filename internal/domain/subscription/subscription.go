package subscription

import (
	"fmt"
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the closed set of subscription flavours
type Kind string

const (
	// KindSingleVisit subscriptions carry a finite visit counter
	KindSingleVisit Kind = "SINGLE_VISIT"
	// KindUnlimited subscriptions have no counter; RemainingVisits stays nil
	KindUnlimited Kind = "UNLIMITED"
)

// IsValid checks if the kind is known
func (k Kind) IsValid() bool {
	switch k {
	case KindSingleVisit, KindUnlimited:
		return true
	}
	return false
}

// CountsVisits reports whether attendance moves the visit counter.
// This is the only place that branches on Kind.
func (k Kind) CountsVisits() bool {
	switch k {
	case KindSingleVisit:
		return true
	case KindUnlimited:
		return false
	default:
		return false
	}
}

// Status represents the lifecycle state of a subscription
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusFrozen    Status = "FROZEN"
	StatusExpired   Status = "EXPIRED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFrozen, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// SubscriptionType is a product in the price list
type SubscriptionType struct {
	shared.BaseEntity
	Name           string
	Kind           Kind
	VisitsIncluded *int
	DurationDays   int
	Price          decimal.Decimal
}

// Subscription is a client's purchased entitlement to attend a group
type Subscription struct {
	shared.BaseEntity
	ClientID           uuid.UUID
	GroupID            uuid.UUID
	SubscriptionTypeID uuid.UUID
	Kind               Kind
	RemainingVisits    *int
	StartDate          time.Time
	EndDate            time.Time
	Status             Status
}

// CountsVisits reports whether this subscription's counter participates in attendance
func (s *Subscription) CountsVisits() bool {
	return s.Kind.CountsVisits()
}

// CoversDate reports whether date falls within [StartDate, EndDate]
func (s *Subscription) CoversDate(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}

// HasVisitsLeft is true for uncounted subscriptions and for counted ones with a positive balance
func (s *Subscription) HasVisitsLeft() bool {
	if !s.CountsVisits() {
		return true
	}
	return s.RemainingVisits != nil && *s.RemainingVisits > 0
}

// IsFullyConsumed is true only when a counted subscription sits at exactly zero visits
func (s *Subscription) IsFullyConsumed() bool {
	return s.CountsVisits() && s.RemainingVisits != nil && *s.RemainingVisits == 0
}

// HasUnconsumedVisits is true when a counted subscription still has visits left
func (s *Subscription) HasUnconsumedVisits() bool {
	return s.CountsVisits() && s.RemainingVisits != nil && *s.RemainingVisits > 0
}

// ValidateBasis checks that the subscription may cover an attendance of
// clientID in groupID on date. Checks run in a fixed order so the caller
// always sees the first violated rule.
func (s *Subscription) ValidateBasis(clientID, groupID uuid.UUID, date time.Time) error {
	if s.ClientID != clientID {
		return ErrWrongClient
	}
	if s.GroupID != groupID {
		return ErrWrongGroup
	}
	if s.Status != StatusActive {
		return shared.NewDomainError(CodeNotActive, fmt.Sprintf("Subscription is %s, not ACTIVE", s.Status))
	}
	if !s.CoversDate(date) {
		return shared.NewDomainError(CodeOutOfRange, fmt.Sprintf(
			"Subscription is valid from %s to %s, class date %s is outside that range",
			s.StartDate.Format(time.DateOnly), s.EndDate.Format(time.DateOnly), date.Format(time.DateOnly)))
	}
	if !s.HasVisitsLeft() {
		return ErrNoVisitsLeft
	}
	return nil
}

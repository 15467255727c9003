package client

import (
	"context"
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents the activity status of a client
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
	StatusVIP      Status = "VIP"
)

// IsValid checks if the status is a valid client status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusVIP:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Client is a person or organisation using the center's services.
// Clients are created outside this service; here only their activity is tracked.
type Client struct {
	shared.BaseEntity
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	Status         Status
	LastActivityAt *time.Time
}

// FullName joins first and last name
func (c *Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// RecordActivity refreshes the last activity timestamp and brings an
// INACTIVE client back to ACTIVE. It reports whether the status changed.
func (c *Client) RecordActivity(at time.Time) bool {
	reactivated := false
	if c.Status == StatusInactive {
		c.Status = StatusActive
		reactivated = true
	}
	c.LastActivityAt = &at
	c.UpdatedAt = time.Now()
	return reactivated
}

// IsDormantSince reports whether an ACTIVE client has shown no activity since cutoff.
// VIP clients are never considered dormant. A client with no recorded activity is
// measured from its creation time.
func (c *Client) IsDormantSince(cutoff time.Time) bool {
	if c.Status != StatusActive {
		return false
	}
	last := c.CreatedAt
	if c.LastActivityAt != nil {
		last = *c.LastActivityAt
	}
	return last.Before(cutoff)
}

// Deactivate flips an ACTIVE client to INACTIVE
func (c *Client) Deactivate() error {
	if c.Status != StatusActive {
		return shared.NewDomainError(shared.CodeInvalidState, "Only active clients can be deactivated")
	}
	c.Status = StatusInactive
	c.UpdatedAt = time.Now()
	return nil
}

// Repository defines persistence for client activity tracking
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// UpdateActivity persists status and last activity timestamp
	UpdateActivity(ctx context.Context, c *Client) error
	// DeactivateDormant flips ACTIVE clients whose last activity (or creation,
	// when none is recorded) is before cutoff to INACTIVE and returns how many changed.
	DeactivateDormant(ctx context.Context, cutoff time.Time) (int64, error)
}

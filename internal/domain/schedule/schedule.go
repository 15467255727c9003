package schedule

import (
	"context"
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Group is a recurring class (a studio, a course) that clients subscribe to
type Group struct {
	shared.BaseEntity
	Name     string
	Capacity int
}

// Schedule is one concrete class occurrence. GroupID is nil for one-off
// sessions that are not tied to a group.
type Schedule struct {
	shared.BaseEntity
	GroupID   *uuid.UUID
	Group     *Group
	Date      time.Time
	StartTime string
	EndTime   string
}

// HasGroup reports whether the schedule belongs to a group
func (s *Schedule) HasGroup() bool {
	return s.GroupID != nil
}

// Repository provides read access to schedules. The reconciliation core never writes them.
type Repository interface {
	// FindByIDWithGroup loads the schedule and its group. It returns
	// shared.ErrNotFound when the schedule is missing or its group reference dangles.
	FindByIDWithGroup(ctx context.Context, id uuid.UUID) (*Schedule, error)
}

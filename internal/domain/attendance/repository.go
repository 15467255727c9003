package attendance

import (
	"context"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StatusCounts holds per-status attendance totals
type StatusCounts map[Status]int64

// Repository defines persistence for attendance marks
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Attendance, error)

	// FindByIDForUpdate loads the mark and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Attendance, error)

	ExistsForScheduleAndClient(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error)

	// Create inserts a new mark; a (schedule, client) duplicate yields ErrDuplicate
	Create(ctx context.Context, a *Attendance) error

	// Save writes a mark whose version was bumped once since it was loaded.
	// A moved version or a deleted row yields shared.ErrConcurrencyConflict.
	Save(ctx context.Context, a *Attendance) error

	Delete(ctx context.Context, id uuid.UUID) error

	// CountDeductedPresent counts PRESENT marks that consumed a visit of the subscription
	CountDeductedPresent(ctx context.Context, subscriptionID uuid.UUID) (int64, error)

	// CountByStatusForClient groups a client's marks by status for classes
	// whose date falls in the inclusive range
	CountByStatusForClient(ctx context.Context, clientID uuid.UUID, period shared.DateRange) (StatusCounts, error)

	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]Attendance, error)
}

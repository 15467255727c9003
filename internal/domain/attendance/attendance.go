package attendance

import (
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents whether a client attended a class
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusExcused Status = "EXCUSED"
)

// AllStatuses lists every attendance status
var AllStatuses = []Status{StatusPresent, StatusAbsent, StatusExcused}

// IsValid checks if the status is a valid attendance status
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusExcused:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// ErrDuplicate is returned when the client already has a mark for the class
var ErrDuplicate = shared.NewDomainError(shared.CodeAlreadyExists, "Attendance for this client and class already exists")

// Attendance is one client's mark on one schedule
type Attendance struct {
	shared.BaseAggregateRoot
	ScheduleID           uuid.UUID
	ClientID             uuid.UUID
	Status               Status
	SubscriptionID       *uuid.UUID
	SubscriptionDeducted bool
	MarkedBy             *uuid.UUID
	MarkedAt             time.Time
	Notes                *string
}

// NewAttendance creates an attendance mark without a subscription basis
func NewAttendance(scheduleID, clientID uuid.UUID, status Status, notes *string, markedBy *uuid.UUID) (*Attendance, error) {
	if scheduleID == uuid.Nil || clientID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Schedule and client are required")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown attendance status "+string(status))
	}
	a := &Attendance{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ScheduleID:        scheduleID,
		ClientID:          clientID,
		Status:            status,
		MarkedBy:          markedBy,
		MarkedAt:          time.Now(),
		Notes:             notes,
	}
	return a, nil
}

// IsDeductedPresence reports whether this mark consumed a subscription visit
func (a *Attendance) IsDeductedPresence() bool {
	return a.Status == StatusPresent && a.SubscriptionDeducted && a.SubscriptionID != nil
}

// LinkBasis records the subscription that covered this presence
func (a *Attendance) LinkBasis(subscriptionID uuid.UUID) {
	a.SubscriptionID = &subscriptionID
	a.SubscriptionDeducted = true
}

// ReleaseBasis detaches the subscription after its visit was given back
func (a *Attendance) ReleaseBasis() {
	a.SubscriptionID = nil
	a.SubscriptionDeducted = false
}

// Remark applies a new status and notes and stamps who marked it. A nil notes
// pointer keeps the existing notes.
func (a *Attendance) Remark(status Status, notes *string, markedBy *uuid.UUID) {
	a.Status = status
	if notes != nil {
		a.Notes = notes
	}
	a.MarkedBy = markedBy
	a.MarkedAt = time.Now()
	a.UpdatedAt = a.MarkedAt
	a.IncrementVersion()
}

// RecordMarked queues an AttendanceMarked event
func (a *Attendance) RecordMarked() {
	a.AddDomainEvent(NewAttendanceMarkedEvent(a))
}

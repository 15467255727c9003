package attendance

import (
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	AggregateTypeAttendance = "Attendance"
	EventTypeMarked         = "AttendanceMarked"
)

// AttendanceMarkedEvent is raised after a new attendance mark is committed
type AttendanceMarkedEvent struct {
	shared.BaseDomainEvent
	AttendanceID         uuid.UUID  `json:"attendance_id"`
	ScheduleID           uuid.UUID  `json:"schedule_id"`
	ClientID             uuid.UUID  `json:"client_id"`
	Status               Status     `json:"status"`
	SubscriptionID       *uuid.UUID `json:"subscription_id,omitempty"`
	SubscriptionDeducted bool       `json:"subscription_deducted"`
}

// EventType returns the event type name
func (e *AttendanceMarkedEvent) EventType() string {
	return EventTypeMarked
}

// NewAttendanceMarkedEvent creates a new AttendanceMarkedEvent
func NewAttendanceMarkedEvent(a *Attendance) *AttendanceMarkedEvent {
	return &AttendanceMarkedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypeMarked, AggregateTypeAttendance, a.ID),
		AttendanceID:         a.ID,
		ScheduleID:           a.ScheduleID,
		ClientID:             a.ClientID,
		Status:               a.Status,
		SubscriptionID:       a.SubscriptionID,
		SubscriptionDeducted: a.SubscriptionDeducted,
	}
}

package attendance

import (
	"time"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/google/uuid"
)

// MarkAttendanceRequest is the input of MarkAttendance
type MarkAttendanceRequest struct {
	ScheduleID     uuid.UUID
	ClientID       uuid.UUID
	Status         attendance.Status
	Notes          *string
	SubscriptionID *uuid.UUID
	ActingUserID   *uuid.UUID
}

// UpdateStatusRequest is the input of UpdateStatus. Nil fields keep their values.
type UpdateStatusRequest struct {
	Status         *attendance.Status
	SubscriptionID *uuid.UUID
	Notes          *string
	ActingUserID   *uuid.UUID
}

// StatsRequest bounds GetClientStats by class date, inclusive
type StatsRequest struct {
	From *time.Time
	To   *time.Time
}

// AttendanceResponse represents an attendance mark in API responses
type AttendanceResponse struct {
	ID                   uuid.UUID  `json:"id"`
	ScheduleID           uuid.UUID  `json:"schedule_id"`
	ClientID             uuid.UUID  `json:"client_id"`
	Status               string     `json:"status"`
	SubscriptionID       *uuid.UUID `json:"subscription_id,omitempty"`
	SubscriptionDeducted bool       `json:"subscription_deducted"`
	MarkedBy             *uuid.UUID `json:"marked_by,omitempty"`
	MarkedAt             time.Time  `json:"marked_at"`
	Notes                *string    `json:"notes,omitempty"`
	Version              int        `json:"version"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ToAttendanceResponse converts a domain Attendance to a response
func ToAttendanceResponse(a *attendance.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                   a.ID,
		ScheduleID:           a.ScheduleID,
		ClientID:             a.ClientID,
		Status:               a.Status.String(),
		SubscriptionID:       a.SubscriptionID,
		SubscriptionDeducted: a.SubscriptionDeducted,
		MarkedBy:             a.MarkedBy,
		MarkedAt:             a.MarkedAt,
		Notes:                a.Notes,
		Version:              a.Version,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// SubscriptionBaseResponse is a subscription that can cover a class
type SubscriptionBaseResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"client_id"`
	GroupID         uuid.UUID `json:"group_id"`
	Kind            string    `json:"kind"`
	RemainingVisits *int      `json:"remaining_visits"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToSubscriptionBaseResponse converts a domain Subscription to a response
func ToSubscriptionBaseResponse(s *subscription.Subscription) SubscriptionBaseResponse {
	return SubscriptionBaseResponse{
		ID:              s.ID,
		ClientID:        s.ClientID,
		GroupID:         s.GroupID,
		Kind:            string(s.Kind),
		RemainingVisits: s.RemainingVisits,
		StartDate:       s.StartDate.Format(time.DateOnly),
		EndDate:         s.EndDate.Format(time.DateOnly),
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
	}
}

// ClientStatsResponse summarises a client's attendance
type ClientStatsResponse struct {
	Total          int64   `json:"total"`
	Present        int64   `json:"present"`
	Absent         int64   `json:"absent"`
	Excused        int64   `json:"excused"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// ToClientStatsResponse converts domain stats to a response
func ToClientStatsResponse(s attendance.ClientStats) ClientStatsResponse {
	return ClientStatsResponse{
		Total:          s.Total,
		Present:        s.Present,
		Absent:         s.Absent,
		Excused:        s.Excused,
		AttendanceRate: s.AttendanceRate,
	}
}

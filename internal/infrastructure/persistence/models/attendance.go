package models

import (
	"time"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/google/uuid"
)

// AttendanceModel is the persistence model for attendance marks
type AttendanceModel struct {
	AggregateModel
	ScheduleID           uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_schedule_client,priority:1"`
	ClientID             uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_schedule_client,priority:2;index"`
	Status               attendance.Status `gorm:"type:varchar(20);not null"`
	SubscriptionID       *uuid.UUID        `gorm:"type:uuid;index"`
	SubscriptionDeducted bool              `gorm:"not null;default:false"`
	MarkedBy             *uuid.UUID        `gorm:"type:uuid"`
	MarkedAt             time.Time         `gorm:"not null"`
	Notes                *string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AttendanceModel) TableName() string {
	return "attendances"
}

// ToDomain converts the model to a domain Attendance
func (m *AttendanceModel) ToDomain() *attendance.Attendance {
	return &attendance.Attendance{
		BaseAggregateRoot:    m.ToAggregateRoot(),
		ScheduleID:           m.ScheduleID,
		ClientID:             m.ClientID,
		Status:               m.Status,
		SubscriptionID:       m.SubscriptionID,
		SubscriptionDeducted: m.SubscriptionDeducted,
		MarkedBy:             m.MarkedBy,
		MarkedAt:             m.MarkedAt,
		Notes:                m.Notes,
	}
}

// AttendanceModelFromDomain creates a model from a domain Attendance
func AttendanceModelFromDomain(a *attendance.Attendance) *AttendanceModel {
	m := &AttendanceModel{
		ScheduleID:           a.ScheduleID,
		ClientID:             a.ClientID,
		Status:               a.Status,
		SubscriptionID:       a.SubscriptionID,
		SubscriptionDeducted: a.SubscriptionDeducted,
		MarkedBy:             a.MarkedBy,
		MarkedAt:             a.MarkedAt,
		Notes:                a.Notes,
	}
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	return m
}

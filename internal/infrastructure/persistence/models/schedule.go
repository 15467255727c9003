package models

import (
	"time"

	"github.com/culturehub/backend/internal/domain/schedule"
	"github.com/google/uuid"
)

// GroupModel is the persistence model for class groups
type GroupModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(200);not null"`
	Capacity int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (GroupModel) TableName() string {
	return "groups"
}

// ToDomain converts the model to a domain Group
func (m *GroupModel) ToDomain() *schedule.Group {
	return &schedule.Group{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Capacity:   m.Capacity,
	}
}

// ScheduleModel is the persistence model for class occurrences
type ScheduleModel struct {
	BaseModel
	GroupID   *uuid.UUID  `gorm:"type:uuid;index"`
	Group     *GroupModel `gorm:"foreignKey:GroupID"`
	Date      time.Time   `gorm:"type:date;not null;index"`
	StartTime string      `gorm:"type:varchar(5);not null"`
	EndTime   string      `gorm:"type:varchar(5);not null"`
}

// TableName returns the table name for GORM
func (ScheduleModel) TableName() string {
	return "schedules"
}

// ToDomain converts the model to a domain Schedule, including the group when loaded
func (m *ScheduleModel) ToDomain() *schedule.Schedule {
	s := &schedule.Schedule{
		BaseEntity: m.BaseModel.ToDomain(),
		GroupID:    m.GroupID,
		Date:       m.Date,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
	}
	if m.Group != nil {
		s.Group = m.Group.ToDomain()
	}
	return s
}

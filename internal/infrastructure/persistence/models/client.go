package models

import (
	"time"

	"github.com/culturehub/backend/internal/domain/client"
)

// ClientModel is the persistence model for clients
type ClientModel struct {
	BaseModel
	FirstName      string        `gorm:"type:varchar(100);not null"`
	LastName       string        `gorm:"type:varchar(100)"`
	Phone          string        `gorm:"type:varchar(50);index"`
	Email          string        `gorm:"type:varchar(200)"`
	Status         client.Status `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	LastActivityAt *time.Time
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the model to a domain Client
func (m *ClientModel) ToDomain() *client.Client {
	return &client.Client{
		BaseEntity:     m.BaseModel.ToDomain(),
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Phone:          m.Phone,
		Email:          m.Email,
		Status:         m.Status,
		LastActivityAt: m.LastActivityAt,
	}
}

// ClientModelFromDomain creates a model from a domain Client
func ClientModelFromDomain(c *client.Client) *ClientModel {
	m := &ClientModel{
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Phone:          c.Phone,
		Email:          c.Email,
		Status:         c.Status,
		LastActivityAt: c.LastActivityAt,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

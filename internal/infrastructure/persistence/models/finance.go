package models

import (
	"time"

	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for invoices
type InvoiceModel struct {
	AggregateModel
	Number         string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	SubscriptionID *uuid.UUID            `gorm:"type:uuid;index"`
	TotalAmount    decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	Status         finance.InvoiceStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	DueDate        *time.Time            `gorm:"type:date"`
	PaidAt         *time.Time
	Notes          *string            `gorm:"type:text"`
	Items          []InvoiceItemModel `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain Invoice with whatever items were loaded
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	inv := &finance.Invoice{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Number:            m.Number,
		ClientID:          m.ClientID,
		SubscriptionID:    m.SubscriptionID,
		TotalAmount:       m.TotalAmount,
		Status:            m.Status,
		DueDate:           m.DueDate,
		PaidAt:            m.PaidAt,
		Notes:             m.Notes,
	}
	if len(m.Items) > 0 {
		inv.Items = make([]finance.InvoiceItem, len(m.Items))
		for i := range m.Items {
			inv.Items[i] = *m.Items[i].ToDomain()
		}
	}
	return inv
}

// InvoiceItemModel is the persistence model for invoice lines
type InvoiceItemModel struct {
	BaseModel
	InvoiceID      uuid.UUID              `gorm:"type:uuid;not null;index"`
	Description    string                 `gorm:"type:varchar(500);not null"`
	Quantity       int                    `gorm:"not null;default:1"`
	UnitPrice      decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	TotalPrice     decimal.Decimal        `gorm:"type:decimal(12,2);not null"`
	WriteOffTiming finance.WriteOffTiming `gorm:"type:varchar(20);not null;default:'ON_SALE'"`
	WriteOffStatus finance.WriteOffStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	UsageStartedAt *time.Time             `gorm:"type:date"`
	WrittenOffAt   *time.Time
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the model to a domain InvoiceItem
func (m *InvoiceItemModel) ToDomain() *finance.InvoiceItem {
	return &finance.InvoiceItem{
		BaseEntity:     m.BaseModel.ToDomain(),
		InvoiceID:      m.InvoiceID,
		Description:    m.Description,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TotalPrice:     m.TotalPrice,
		WriteOffTiming: m.WriteOffTiming,
		WriteOffStatus: m.WriteOffStatus,
		UsageStartedAt: m.UsageStartedAt,
		WrittenOffAt:   m.WrittenOffAt,
	}
}

// PaymentModel is the persistence model for payments
type PaymentModel struct {
	AggregateModel
	ClientID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	InvoiceID      *uuid.UUID            `gorm:"type:uuid;index:idx_payments_invoice_status,priority:1"`
	SubscriptionID *uuid.UUID            `gorm:"type:uuid"`
	RentalID       *uuid.UUID            `gorm:"type:uuid"`
	Amount         decimal.Decimal       `gorm:"type:decimal(12,2);not null"`
	Method         finance.PaymentMethod `gorm:"type:varchar(20);not null"`
	Type           finance.PaymentType   `gorm:"type:varchar(20);not null"`
	Status         finance.PaymentStatus `gorm:"type:varchar(20);not null;index:idx_payments_invoice_status,priority:2"`
	Notes          *string               `gorm:"type:text"`
	TransactionID  *string               `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the model to a domain Payment
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseAggregateRoot: m.ToAggregateRoot(),
		ClientID:          m.ClientID,
		InvoiceID:         m.InvoiceID,
		SubscriptionID:    m.SubscriptionID,
		RentalID:          m.RentalID,
		Amount:            m.Amount,
		Method:            m.Method,
		Type:              m.Type,
		Status:            m.Status,
		Notes:             m.Notes,
		TransactionID:     m.TransactionID,
	}
}

// PaymentModelFromDomain creates a model from a domain Payment
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{
		ClientID:       p.ClientID,
		InvoiceID:      p.InvoiceID,
		SubscriptionID: p.SubscriptionID,
		RentalID:       p.RentalID,
		Amount:         p.Amount,
		Method:         p.Method,
		Type:           p.Type,
		Status:         p.Status,
		Notes:          p.Notes,
		TransactionID:  p.TransactionID,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}

// All returns every model in dependency order, for AutoMigrate in tests and development
func All() []any {
	return []any{
		&ClientModel{},
		&GroupModel{},
		&ScheduleModel{},
		&SubscriptionTypeModel{},
		&SubscriptionModel{},
		&AttendanceModel{},
		&InvoiceModel{},
		&InvoiceItemModel{},
		&PaymentModel{},
	}
}

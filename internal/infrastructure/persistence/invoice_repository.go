package persistence

import (
	"context"

	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements finance.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID loads an invoice with its items
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	var m models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Invoice")
	}
	return m.ToDomain(), nil
}

// FindByIDForUpdate loads the invoice row with SELECT ... FOR UPDATE
func (r *GormInvoiceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	var m models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Invoice")
	}
	return m.ToDomain(), nil
}

// SaveWithLock writes status fields when the stored version is the one the
// aggregate was loaded with
func (r *GormInvoiceRepository) SaveWithLock(ctx context.Context, inv *finance.Invoice) error {
	result := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("id = ? AND version = ?", inv.ID, inv.Version-1).
		Updates(map[string]any{
			"status":     inv.Status,
			"paid_at":    inv.PaidAt,
			"version":    inv.Version,
			"updated_at": inv.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// FindUsageItemsBySubscription returns ON_USE lines of invoices issued for the subscription
func (r *GormInvoiceRepository) FindUsageItemsBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]finance.InvoiceItem, error) {
	var rows []models.InvoiceItemModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.subscription_id = ? AND invoice_items.write_off_timing = ?", subscriptionID, finance.WriteOffOnUse).
		Order("invoice_items.created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]finance.InvoiceItem, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items, nil
}

// SaveItemWriteOff persists the write-off fields of an invoice line
func (r *GormInvoiceRepository) SaveItemWriteOff(ctx context.Context, item *finance.InvoiceItem) error {
	result := r.db.WithContext(ctx).
		Model(&models.InvoiceItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"write_off_status": item.WriteOffStatus,
			"usage_started_at": item.UsageStartedAt,
			"written_off_at":   item.WrittenOffAt,
			"updated_at":       item.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Invoice item")
	}
	return nil
}

var _ finance.InvoiceRepository = (*GormInvoiceRepository)(nil)

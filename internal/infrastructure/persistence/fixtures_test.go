package persistence

import (
	"testing"
	"time"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/culturehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func base(id uuid.UUID, created time.Time) models.BaseModel {
	return models.BaseModel{ID: id, CreatedAt: created, UpdatedAt: created}
}

// fixture seeds one client, one group class and the reference data around it
type fixture struct {
	db         *gorm.DB
	clientID   uuid.UUID
	groupID    uuid.UUID
	scheduleID uuid.UUID
	classDate  time.Time
	countedID  uuid.UUID
	unlimited  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)
	now := time.Now().UTC()
	f := &fixture{
		db:         db,
		clientID:   uuid.New(),
		groupID:    uuid.New(),
		scheduleID: uuid.New(),
		classDate:  day(2026, 3, 10),
		countedID:  uuid.New(),
		unlimited:  uuid.New(),
	}

	require.NoError(t, db.Create(&models.ClientModel{
		BaseModel: base(f.clientID, now),
		FirstName: "Anna",
		Status:    client.StatusActive,
	}).Error)
	require.NoError(t, db.Create(&models.GroupModel{BaseModel: base(f.groupID, now), Name: "Ceramics", Capacity: 12}).Error)
	require.NoError(t, db.Create(&models.ScheduleModel{
		BaseModel: base(f.scheduleID, now),
		GroupID:   &f.groupID,
		Date:      f.classDate,
		StartTime: "18:00",
		EndTime:   "19:30",
	}).Error)

	countedType := f.seedType(t, subscription.KindSingleVisit, intPtr(8))
	unlimitedType := f.seedType(t, subscription.KindUnlimited, nil)
	f.seedSubscription(t, f.countedID, countedType, intPtr(8), now.Add(-time.Hour))
	f.seedSubscription(t, f.unlimited, unlimitedType, nil, now.Add(-2*time.Hour))
	return f
}

func (f *fixture) seedType(t *testing.T, kind subscription.Kind, visits *int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, f.db.Create(&models.SubscriptionTypeModel{
		BaseModel:      base(id, time.Now().UTC()),
		Name:           string(kind),
		Kind:           kind,
		VisitsIncluded: visits,
		DurationDays:   30,
		Price:          decimal.NewFromInt(4000),
	}).Error)
	return id
}

func (f *fixture) seedSubscription(t *testing.T, id, typeID uuid.UUID, visits *int, created time.Time) {
	t.Helper()
	require.NoError(t, f.db.Create(&models.SubscriptionModel{
		BaseModel:          base(id, created),
		ClientID:           f.clientID,
		GroupID:            f.groupID,
		SubscriptionTypeID: typeID,
		RemainingVisits:    visits,
		StartDate:          day(2026, 3, 1),
		EndDate:            day(2026, 3, 31),
		Status:             subscription.StatusActive,
	}).Error)
}

// seedInvoice creates an invoice for the counted subscription with one ON_USE line
func (f *fixture) seedInvoice(t *testing.T, total decimal.Decimal) (uuid.UUID, uuid.UUID) {
	t.Helper()
	now := time.Now().UTC()
	invoiceID, itemID := uuid.New(), uuid.New()
	require.NoError(t, f.db.Create(&models.InvoiceModel{
		AggregateModel: models.AggregateModel{BaseModel: base(invoiceID, now), Version: 1},
		Number:         "INV-" + invoiceID.String()[:8],
		ClientID:       f.clientID,
		SubscriptionID: &f.countedID,
		TotalAmount:    total,
		Status:         finance.InvoiceStatusPending,
		Items: []models.InvoiceItemModel{{
			BaseModel:      base(itemID, now),
			Description:    "8 ceramics classes",
			Quantity:       1,
			UnitPrice:      total,
			TotalPrice:     total,
			WriteOffTiming: finance.WriteOffOnUse,
			WriteOffStatus: finance.WriteOffPending,
		}},
	}).Error)
	return invoiceID, itemID
}

func (f *fixture) remainingVisits(t *testing.T, id uuid.UUID) *int {
	t.Helper()
	var m models.SubscriptionModel
	require.NoError(t, f.db.First(&m, "id = ?", id).Error)
	return m.RemainingVisits
}

func (f *fixture) newMark(t *testing.T, status attendance.Status) *attendance.Attendance {
	t.Helper()
	a, err := attendance.NewAttendance(f.scheduleID, f.clientID, status, nil, nil)
	require.NoError(t, err)
	return a
}

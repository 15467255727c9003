package persistence

import (
	"context"
	"errors"
	"testing"

	appattendance "github.com/culturehub/backend/internal/application/attendance"
	appfinance "github.com/culturehub/backend/internal/application/finance"
	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	f := newFixture(t)
	scope := NewGormTransactionScope(f.db).AttendanceScope()
	ctx := context.Background()
	boom := errors.New("boom")

	err := scope.Execute(ctx, func(repos appattendance.TransactionalRepositories) error {
		ok, err := repos.SubscriptionRepo().DecrementVisits(ctx, f.countedID)
		require.NoError(t, err)
		require.True(t, ok)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 8, *f.remainingVisits(t, f.countedID))
}

func itemStatus(t *testing.T, f *fixture) finance.WriteOffStatus {
	t.Helper()
	var item models.InvoiceItemModel
	require.NoError(t, f.db.Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoices.subscription_id = ?", f.countedID).First(&item).Error)
	return item.WriteOffStatus
}

// The services below run against real GORM repositories end to end
func TestAttendanceService_WithGormScope(t *testing.T) {
	f := newFixture(t)
	f.seedInvoice(t, decimal.NewFromInt(4000))
	svc := appattendance.NewService(NewGormTransactionScope(f.db).AttendanceScope(), NewGormClientRepository(f.db), zaptest.NewLogger(t))
	ctx := context.Background()

	resp, err := svc.MarkAttendance(ctx, appattendance.MarkAttendanceRequest{
		ScheduleID: f.scheduleID,
		ClientID:   f.clientID,
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.SubscriptionID)
	assert.Equal(t, f.countedID, *resp.SubscriptionID)
	assert.True(t, resp.SubscriptionDeducted)
	assert.Equal(t, 7, *f.remainingVisits(t, f.countedID))
	assert.Equal(t, finance.WriteOffInProgress, itemStatus(t, f))

	_, err = svc.MarkAttendance(ctx, appattendance.MarkAttendanceRequest{
		ScheduleID: f.scheduleID,
		ClientID:   f.clientID,
		Status:     attendance.StatusAbsent,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicate)
	assert.Equal(t, 7, *f.remainingVisits(t, f.countedID))

	absent := attendance.StatusAbsent
	updated, err := svc.UpdateStatus(ctx, resp.ID, appattendance.UpdateStatusRequest{Status: &absent})
	require.NoError(t, err)
	assert.Nil(t, updated.SubscriptionID)
	assert.False(t, updated.SubscriptionDeducted)
	assert.Equal(t, 8, *f.remainingVisits(t, f.countedID))
	assert.Equal(t, finance.WriteOffPending, itemStatus(t, f))

	present := attendance.StatusPresent
	_, err = svc.UpdateStatus(ctx, resp.ID, appattendance.UpdateStatusRequest{Status: &present, SubscriptionID: &f.unlimited})
	require.NoError(t, err)
	assert.Equal(t, 8, *f.remainingVisits(t, f.countedID))
	assert.Nil(t, f.remainingVisits(t, f.unlimited))

	require.NoError(t, svc.Remove(ctx, resp.ID))
	assert.Equal(t, 8, *f.remainingVisits(t, f.countedID))
}

func TestPaymentService_WithGormScope(t *testing.T) {
	f := newFixture(t)
	invoiceID, _ := f.seedInvoice(t, decimal.NewFromInt(4000))
	scope := NewGormTransactionScope(f.db).FinanceScope()
	payments := appfinance.NewPaymentService(scope, NewGormClientRepository(f.db), zaptest.NewLogger(t))
	invoices := appfinance.NewInvoiceService(scope, zaptest.NewLogger(t))
	ctx := context.Background()

	pay := func(amount int64, method finance.PaymentMethod) (*appfinance.PaymentResponse, error) {
		return payments.Create(ctx, appfinance.CreatePaymentRequest{
			ClientID:  f.clientID,
			Amount:    decimal.NewFromInt(amount),
			Method:    method,
			Type:      finance.PaymentTypeSubscription,
			InvoiceID: &invoiceID,
		})
	}

	_, err := pay(1500, finance.PaymentMethodCash)
	require.NoError(t, err)
	inv, err := invoices.Get(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, string(finance.InvoiceStatusPartiallyPaid), inv.Status)

	_, err = pay(3000, finance.PaymentMethodCash)
	de, ok := shared.AsDomainError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, finance.CodePaymentExceedsUnpaid, de.Code)

	card, err := pay(2500, finance.PaymentMethodCard)
	require.NoError(t, err)
	inv, err = invoices.Get(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, string(finance.InvoiceStatusPartiallyPaid), inv.Status)

	completed := finance.PaymentStatusCompleted
	_, err = payments.Update(ctx, card.ID, appfinance.UpdatePaymentRequest{Status: &completed})
	require.NoError(t, err)
	inv, err = invoices.Get(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, string(finance.InvoiceStatusPaid), inv.Status)
	assert.NotNil(t, inv.PaidAt)

	require.NoError(t, payments.Remove(ctx, card.ID))
	inv, err = invoices.Get(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, string(finance.InvoiceStatusPartiallyPaid), inv.Status)
	assert.Nil(t, inv.PaidAt)
}

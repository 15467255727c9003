package persistence

import (
	"context"

	appattendance "github.com/culturehub/backend/internal/application/attendance"
	appfinance "github.com/culturehub/backend/internal/application/finance"
	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/schedule"
	"github.com/culturehub/backend/internal/domain/subscription"
	"gorm.io/gorm"
)

// GormTransactionScope runs application work inside one GORM transaction.
// It serves both the attendance and the payment services.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// AttendanceScope returns the scope typed for the attendance service
func (s *GormTransactionScope) AttendanceScope() appattendance.TransactionScope {
	return attendanceScope{s}
}

// FinanceScope returns the scope typed for the payment and invoice services
func (s *GormTransactionScope) FinanceScope() appfinance.TransactionScope {
	return financeScope{s}
}

func (s *GormTransactionScope) run(ctx context.Context, fn func(repos *gormTransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type attendanceScope struct{ s *GormTransactionScope }

func (a attendanceScope) Execute(ctx context.Context, fn func(repos appattendance.TransactionalRepositories) error) error {
	return a.s.run(ctx, func(repos *gormTransactionalRepositories) error { return fn(repos) })
}

type financeScope struct{ s *GormTransactionScope }

func (f financeScope) Execute(ctx context.Context, fn func(repos appfinance.TransactionalRepositories) error) error {
	return f.s.run(ctx, func(repos *gormTransactionalRepositories) error { return fn(repos) })
}

// gormTransactionalRepositories hands out repositories bound to the open transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) AttendanceRepo() attendance.Repository {
	return NewGormAttendanceRepository(r.tx)
}

func (r *gormTransactionalRepositories) ScheduleRepo() schedule.Repository {
	return NewGormScheduleRepository(r.tx)
}

func (r *gormTransactionalRepositories) SubscriptionRepo() subscription.Repository {
	return NewGormSubscriptionRepository(r.tx)
}

func (r *gormTransactionalRepositories) InvoiceRepo() finance.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

func (r *gormTransactionalRepositories) PaymentRepo() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

var (
	_ appattendance.TransactionScope          = attendanceScope{}
	_ appfinance.TransactionScope             = financeScope{}
	_ appattendance.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
	_ appfinance.TransactionalRepositories    = (*gormTransactionalRepositories)(nil)
)

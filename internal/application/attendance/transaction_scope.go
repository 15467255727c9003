package attendance

import (
	"context"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/schedule"
	"github.com/culturehub/backend/internal/domain/subscription"
)

// TransactionScope runs reconciliation work in one database transaction.
// If fn returns an error the transaction is rolled back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories touched by attendance
// reconciliation. All of them share the surrounding transaction.
type TransactionalRepositories interface {
	AttendanceRepo() attendance.Repository
	ScheduleRepo() schedule.Repository
	SubscriptionRepo() subscription.Repository
	InvoiceRepo() finance.InvoiceRepository
}

// NoOpTransactionScope hands out plain repositories without a transaction.
// Useful in tests.
type NoOpTransactionScope struct {
	attendances   attendance.Repository
	schedules     schedule.Repository
	subscriptions subscription.Repository
	invoices      finance.InvoiceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(
	attendances attendance.Repository,
	schedules schedule.Repository,
	subscriptions subscription.Repository,
	invoices finance.InvoiceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		attendances:   attendances,
		schedules:     schedules,
		subscriptions: subscriptions,
		invoices:      invoices,
	}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) AttendanceRepo() attendance.Repository     { return s.attendances }
func (s *NoOpTransactionScope) ScheduleRepo() schedule.Repository         { return s.schedules }
func (s *NoOpTransactionScope) SubscriptionRepo() subscription.Repository { return s.subscriptions }
func (s *NoOpTransactionScope) InvoiceRepo() finance.InvoiceRepository    { return s.invoices }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

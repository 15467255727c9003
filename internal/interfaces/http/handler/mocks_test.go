package handler

import (
	"context"

	attendanceapp "github.com/culturehub/backend/internal/application/attendance"
	financeapp "github.com/culturehub/backend/internal/application/finance"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAttendanceService struct {
	mock.Mock
}

func (m *mockAttendanceService) MarkAttendance(ctx context.Context, req attendanceapp.MarkAttendanceRequest) (*attendanceapp.AttendanceResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*attendanceapp.AttendanceResponse)
	return resp, args.Error(1)
}

func (m *mockAttendanceService) UpdateStatus(ctx context.Context, id uuid.UUID, req attendanceapp.UpdateStatusRequest) (*attendanceapp.AttendanceResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*attendanceapp.AttendanceResponse)
	return resp, args.Error(1)
}

func (m *mockAttendanceService) Remove(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAttendanceService) GetAvailableBases(ctx context.Context, scheduleID uuid.UUID) ([]attendanceapp.SubscriptionBaseResponse, error) {
	args := m.Called(ctx, scheduleID)
	resp, _ := args.Get(0).([]attendanceapp.SubscriptionBaseResponse)
	return resp, args.Error(1)
}

func (m *mockAttendanceService) GetClientStats(ctx context.Context, clientID uuid.UUID, req attendanceapp.StatsRequest) (*attendanceapp.ClientStatsResponse, error) {
	args := m.Called(ctx, clientID, req)
	resp, _ := args.Get(0).(*attendanceapp.ClientStatsResponse)
	return resp, args.Error(1)
}

func (m *mockAttendanceService) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]attendanceapp.AttendanceResponse, error) {
	args := m.Called(ctx, scheduleID)
	resp, _ := args.Get(0).([]attendanceapp.AttendanceResponse)
	return resp, args.Error(1)
}

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) Create(ctx context.Context, req financeapp.CreatePaymentRequest) (*financeapp.PaymentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*financeapp.PaymentResponse)
	return resp, args.Error(1)
}

func (m *mockPaymentService) Update(ctx context.Context, id uuid.UUID, req financeapp.UpdatePaymentRequest) (*financeapp.PaymentResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*financeapp.PaymentResponse)
	return resp, args.Error(1)
}

func (m *mockPaymentService) Remove(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPaymentService) Get(ctx context.Context, id uuid.UUID) (*financeapp.PaymentResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*financeapp.PaymentResponse)
	return resp, args.Error(1)
}

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) Get(ctx context.Context, id uuid.UUID) (*financeapp.InvoiceResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*financeapp.InvoiceResponse)
	return resp, args.Error(1)
}

func (m *mockInvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req financeapp.UpdateInvoiceStatusRequest) (*financeapp.InvoiceResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*financeapp.InvoiceResponse)
	return resp, args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

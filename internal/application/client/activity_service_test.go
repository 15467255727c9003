package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// MockClientRepository is a mock implementation of client.Repository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) UpdateActivity(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) DeactivateDormant(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func newClient(status client.Status) *client.Client {
	return &client.Client{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  "Anna",
		LastName:   "Petrova",
		Status:     status,
	}
}

func TestActivityService_ReactivateClientIfNeeded(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("inactive client becomes active", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewActivityService(repo, zaptest.NewLogger(t))
		svc.now = func() time.Time { return now }
		c := newClient(client.StatusInactive)

		repo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		repo.On("UpdateActivity", mock.Anything, mock.MatchedBy(func(updated *client.Client) bool {
			return updated.Status == client.StatusActive && updated.LastActivityAt.Equal(now)
		})).Return(nil)

		require.NoError(t, svc.ReactivateClientIfNeeded(context.Background(), c.ID))
		repo.AssertExpectations(t)
	})

	t.Run("vip keeps status and gets timestamp", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewActivityService(repo, zaptest.NewLogger(t))
		svc.now = func() time.Time { return now }
		c := newClient(client.StatusVIP)

		repo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		repo.On("UpdateActivity", mock.Anything, c).Return(nil)

		require.NoError(t, svc.ReactivateClientIfNeeded(context.Background(), c.ID))
		assert.Equal(t, client.StatusVIP, c.Status)
		require.NotNil(t, c.LastActivityAt)
	})

	t.Run("unknown client is ignored", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewActivityService(repo, zaptest.NewLogger(t))
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.NotFound("Client"))

		assert.NoError(t, svc.ReactivateClientIfNeeded(context.Background(), id))
		repo.AssertNotCalled(t, "UpdateActivity", mock.Anything, mock.Anything)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := new(MockClientRepository)
		svc := NewActivityService(repo, zaptest.NewLogger(t))
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, errors.New("connection reset"))

		assert.Error(t, svc.ReactivateClientIfNeeded(context.Background(), id))
	})
}

func TestActivityService_DeactivateInactiveClients(t *testing.T) {
	now := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	repo := new(MockClientRepository)
	svc := NewActivityService(repo, zaptest.NewLogger(t))
	svc.now = func() time.Time { return now }

	repo.On("DeactivateDormant", mock.Anything, now.Add(-30*24*time.Hour)).Return(int64(4), nil)

	n, err := svc.DeactivateInactiveClients(context.Background(), 30*24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	repo.AssertExpectations(t)
}

func TestActivityService_DeactivateUsesDefaultThreshold(t *testing.T) {
	now := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	repo := new(MockClientRepository)
	svc := NewActivityService(repo, zaptest.NewLogger(t))
	svc.now = func() time.Time { return now }

	repo.On("DeactivateDormant", mock.Anything, now.Add(-DefaultInactivityThreshold)).Return(int64(0), nil)

	_, err := svc.DeactivateInactiveClients(context.Background(), 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestClientActivityHandler_Handle(t *testing.T) {
	c := newClient(client.StatusInactive)

	t.Run("present attendance reactivates", func(t *testing.T) {
		repo := new(MockClientRepository)
		handler := NewClientActivityHandler(NewActivityService(repo, zaptest.NewLogger(t)), zaptest.NewLogger(t))
		repo.On("FindByID", mock.Anything, c.ID).Return(newClient(client.StatusInactive), nil)
		repo.On("UpdateActivity", mock.Anything, mock.Anything).Return(nil)

		a, err := attendance.NewAttendance(uuid.New(), c.ID, attendance.StatusPresent, nil, nil)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), attendance.NewAttendanceMarkedEvent(a)))
		repo.AssertNumberOfCalls(t, "UpdateActivity", 1)
	})

	t.Run("absence is not activity", func(t *testing.T) {
		repo := new(MockClientRepository)
		handler := NewClientActivityHandler(NewActivityService(repo, zaptest.NewLogger(t)), zaptest.NewLogger(t))

		a, err := attendance.NewAttendance(uuid.New(), c.ID, attendance.StatusAbsent, nil, nil)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), attendance.NewAttendanceMarkedEvent(a)))
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("payment reactivates", func(t *testing.T) {
		repo := new(MockClientRepository)
		handler := NewClientActivityHandler(NewActivityService(repo, zaptest.NewLogger(t)), zaptest.NewLogger(t))
		repo.On("FindByID", mock.Anything, c.ID).Return(newClient(client.StatusActive), nil)
		repo.On("UpdateActivity", mock.Anything, mock.Anything).Return(nil)

		p, err := finance.NewPayment(finance.NewPaymentParams{
			ClientID: c.ID,
			Amount:   decimal.NewFromInt(500),
			Method:   finance.PaymentMethodCash,
			Type:     finance.PaymentTypeSingleVisit,
		})
		require.NoError(t, err)

		require.NoError(t, handler.Handle(context.Background(), finance.NewPaymentReceivedEvent(p)))
		repo.AssertExpectations(t)
	})

	t.Run("rejects other events", func(t *testing.T) {
		handler := NewClientActivityHandler(NewActivityService(new(MockClientRepository), nil), zaptest.NewLogger(t))
		inv := &finance.Invoice{BaseAggregateRoot: shared.NewBaseAggregateRoot()}

		err := handler.Handle(context.Background(), finance.NewInvoiceStatusChangedEvent(inv, finance.InvoiceStatusPending, decimal.Zero))

		assert.Error(t, err)
	})

	t.Run("declares consumed event types", func(t *testing.T) {
		handler := NewClientActivityHandler(nil, zaptest.NewLogger(t))
		assert.ElementsMatch(t, []string{attendance.EventTypeMarked, finance.EventTypePaymentReceived}, handler.EventTypes())
	})
}

package client

import (
	"context"
	"fmt"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientActivityHandler reactivates clients when they attend a class or pay
type ClientActivityHandler struct {
	activity *ActivityService
	logger   *zap.Logger
}

// NewClientActivityHandler creates a new ClientActivityHandler
func NewClientActivityHandler(activity *ActivityService, logger *zap.Logger) *ClientActivityHandler {
	return &ClientActivityHandler{
		activity: activity,
		logger:   logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *ClientActivityHandler) EventTypes() []string {
	return []string{attendance.EventTypeMarked, finance.EventTypePaymentReceived}
}

// Handle records client activity for the event
func (h *ClientActivityHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	var clientID uuid.UUID
	switch e := event.(type) {
	case *attendance.AttendanceMarkedEvent:
		if e.Status != attendance.StatusPresent {
			return nil
		}
		clientID = e.ClientID
	case *finance.PaymentReceivedEvent:
		clientID = e.ClientID
	default:
		return fmt.Errorf("unexpected event type: expected %s or %s, got %s",
			attendance.EventTypeMarked, finance.EventTypePaymentReceived, event.EventType())
	}

	h.logger.Debug("Recording client activity",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("client_id", clientID.String()),
	)
	return h.activity.ReactivateClientIfNeeded(ctx, clientID)
}

var _ shared.EventHandler = (*ClientActivityHandler)(nil)

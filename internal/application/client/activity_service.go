package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultInactivityThreshold is how long a client may go without attendance
// or payments before being flagged INACTIVE.
const DefaultInactivityThreshold = 90 * 24 * time.Hour

// ActivityService tracks client activity derived from attendance and payments
type ActivityService struct {
	clients client.Repository
	logger  *zap.Logger
	now     func() time.Time
}

// NewActivityService creates a new ActivityService
func NewActivityService(clients client.Repository, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		clients: clients,
		logger:  logger,
		now:     time.Now,
	}
}

// ReactivateClientIfNeeded stamps the client's last activity and brings an
// INACTIVE client back to ACTIVE.
func (s *ActivityService) ReactivateClientIfNeeded(ctx context.Context, clientID uuid.UUID) error {
	c, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Activity for unknown client ignored", zap.String("client_id", clientID.String()))
			return nil
		}
		return fmt.Errorf("failed to load client: %w", err)
	}

	reactivated := c.RecordActivity(s.now())
	if err := s.clients.UpdateActivity(ctx, c); err != nil {
		return fmt.Errorf("failed to update client activity: %w", err)
	}
	if reactivated {
		s.logger.Info("Client reactivated", zap.String("client_id", clientID.String()))
	}
	return nil
}

// DeactivateInactiveClients flips ACTIVE clients idle for longer than
// threshold to INACTIVE. VIP clients are left alone.
func (s *ActivityService) DeactivateInactiveClients(ctx context.Context, threshold time.Duration) (int64, error) {
	if threshold <= 0 {
		threshold = DefaultInactivityThreshold
	}
	cutoff := s.now().Add(-threshold)
	n, err := s.clients.DeactivateDormant(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate dormant clients: %w", err)
	}
	s.logger.Info("Inactive clients deactivated",
		zap.Int64("count", n),
		zap.Time("cutoff", cutoff),
	)
	return n, nil
}

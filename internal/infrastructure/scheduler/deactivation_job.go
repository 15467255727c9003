package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ClientDeactivator flips dormant clients to INACTIVE
type ClientDeactivator interface {
	DeactivateInactiveClients(ctx context.Context, threshold time.Duration) (int64, error)
}

// DeactivationJob deactivates clients with no activity within Threshold
type DeactivationJob struct {
	clients   ClientDeactivator
	threshold time.Duration
	logger    *zap.Logger
}

func NewDeactivationJob(clients ClientDeactivator, threshold time.Duration, logger *zap.Logger) *DeactivationJob {
	return &DeactivationJob{clients: clients, threshold: threshold, logger: logger}
}

func (j *DeactivationJob) Name() string { return "client_deactivation" }

func (j *DeactivationJob) Run(ctx context.Context) error {
	n, err := j.clients.DeactivateInactiveClients(ctx, j.threshold)
	if err != nil {
		return err
	}
	j.logger.Info("Deactivated dormant clients",
		zap.Int64("count", n),
		zap.Duration("threshold", j.threshold),
	)
	return nil
}

package attendance

import (
	"context"
	"fmt"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/schedule"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/culturehub/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service reconciles attendance marks with the subscription visit ledger and
// the write-off state of invoice items.
type Service struct {
	txScope        TransactionScope
	clients        client.Repository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new attendance Service
func NewService(txScope TransactionScope, clients client.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		txScope: txScope,
		clients: clients,
		logger:  logger,
	}
}

// SetEventPublisher sets the publisher used for post-commit events
func (s *Service) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// MarkAttendance records a client's attendance on a class. A PRESENT mark on a
// group class is charged to a subscription: the requested one, or the newest
// eligible one when none is requested. With no eligible subscription the
// presence is recorded unbilled.
func (s *Service) MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (*AttendanceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "attendance", "mark",
		telemetry.SpanAttrScheduleID, req.ScheduleID,
		telemetry.SpanAttrClientID, req.ClientID,
		telemetry.SpanAttrStatus, req.Status,
	)
	defer span.End()

	var created *attendance.Attendance

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		sched, err := repos.ScheduleRepo().FindByIDWithGroup(ctx, req.ScheduleID)
		if err != nil {
			return err
		}

		exists, err := repos.AttendanceRepo().ExistsForScheduleAndClient(ctx, req.ScheduleID, req.ClientID)
		if err != nil {
			return fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if exists {
			return attendance.ErrDuplicate
		}

		a, err := attendance.NewAttendance(req.ScheduleID, req.ClientID, req.Status, req.Notes, req.ActingUserID)
		if err != nil {
			return err
		}

		if a.Status == attendance.StatusPresent {
			if err := s.coverPresence(ctx, repos, a, sched, req.SubscriptionID); err != nil {
				return err
			}
		}

		if err := repos.AttendanceRepo().Create(ctx, a); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Attendance marked",
		zap.String("attendance_id", created.ID.String()),
		zap.String("schedule_id", created.ScheduleID.String()),
		zap.String("client_id", created.ClientID.String()),
		zap.String("status", created.Status.String()),
		zap.Bool("subscription_deducted", created.SubscriptionDeducted),
	)

	created.RecordMarked()
	s.publishDomainEvents(ctx, created)

	resp := ToAttendanceResponse(created)
	return &resp, nil
}

// UpdateStatus changes status and notes of a mark and settles the ledger for
// the transition. PRESENT to PRESENT is a field update; a new subscription id
// is ignored in that case.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*AttendanceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "attendance", "update_status", telemetry.SpanAttrAttendanceID, id)
	defer span.End()

	var updated *attendance.Attendance
	var enteredPresent bool

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		a, err := repos.AttendanceRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		next := a.Status
		if req.Status != nil {
			if !req.Status.IsValid() {
				return shared.NewDomainError(shared.CodeInvalidInput, "Unknown attendance status "+string(*req.Status))
			}
			next = *req.Status
		}

		transition := attendance.ClassifyTransition(a.Status, next)
		s.logger.Debug("Applying attendance transition",
			zap.String("attendance_id", a.ID.String()),
			zap.String("from", a.Status.String()),
			zap.String("to", next.String()),
			zap.String("transition", transition.String()),
		)

		switch transition {
		case attendance.TransitionLeavePresent:
			err = s.leavePresent(ctx, repos, a, next, req)
		case attendance.TransitionEnterPresent:
			err = s.enterPresent(ctx, repos, a, next, req)
			enteredPresent = err == nil
		default:
			a.Remark(next, req.Notes, req.ActingUserID)
			err = repos.AttendanceRepo().Save(ctx, a)
		}
		if err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if enteredPresent {
		updated.RecordMarked()
		s.publishDomainEvents(ctx, updated)
	}

	resp := ToAttendanceResponse(updated)
	return &resp, nil
}

// leavePresent persists the new status first so the deducted-presence count
// used by revert no longer includes this mark.
func (s *Service) leavePresent(
	ctx context.Context,
	repos TransactionalRepositories,
	a *attendance.Attendance,
	next attendance.Status,
	req UpdateStatusRequest,
) error {
	wasDeducted := a.IsDeductedPresence()
	var subscriptionID uuid.UUID
	if wasDeducted {
		subscriptionID = *a.SubscriptionID
		a.ReleaseBasis()
	}

	a.Remark(next, req.Notes, req.ActingUserID)
	if err := repos.AttendanceRepo().Save(ctx, a); err != nil {
		return err
	}
	if !wasDeducted {
		return nil
	}
	return s.giveBack(ctx, repos, subscriptionID)
}

func (s *Service) enterPresent(
	ctx context.Context,
	repos TransactionalRepositories,
	a *attendance.Attendance,
	next attendance.Status,
	req UpdateStatusRequest,
) error {
	sched, err := repos.ScheduleRepo().FindByIDWithGroup(ctx, a.ScheduleID)
	if err != nil {
		return err
	}
	if err := s.coverPresence(ctx, repos, a, sched, req.SubscriptionID); err != nil {
		return err
	}
	a.Remark(next, req.Notes, req.ActingUserID)
	return repos.AttendanceRepo().Save(ctx, a)
}

// Remove deletes a mark and gives its visit back when it consumed one.
// The mark row is locked first, then the subscription row, as in UpdateStatus.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		a, err := repos.AttendanceRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		wasDeducted := a.IsDeductedPresence()

		if err := repos.AttendanceRepo().Delete(ctx, id); err != nil {
			return err
		}
		if !wasDeducted {
			return nil
		}
		return s.giveBack(ctx, repos, *a.SubscriptionID)
	})
}

// GetAvailableBases lists subscriptions that could cover a presence on the
// schedule. A class without a group has none.
func (s *Service) GetAvailableBases(ctx context.Context, scheduleID uuid.UUID) ([]SubscriptionBaseResponse, error) {
	result := make([]SubscriptionBaseResponse, 0)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		sched, err := repos.ScheduleRepo().FindByIDWithGroup(ctx, scheduleID)
		if err != nil {
			return err
		}
		if !sched.HasGroup() {
			return nil
		}
		subs, err := repos.SubscriptionRepo().FindEligible(ctx, subscription.EligibilityFilter{
			GroupID: *sched.GroupID,
			Date:    sched.Date,
		})
		if err != nil {
			return fmt.Errorf("failed to find eligible subscriptions: %w", err)
		}
		for i := range subs {
			result = append(result, ToSubscriptionBaseResponse(&subs[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetClientStats counts a client's marks per status over classes in the range
func (s *Service) GetClientStats(ctx context.Context, clientID uuid.UUID, req StatsRequest) (*ClientStatsResponse, error) {
	period := shared.DateRange{From: req.From, To: req.To}
	if !period.Valid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "from must not be after to")
	}

	exists, err := s.clients.ExistsByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return nil, shared.NotFound("Client")
	}

	var counts attendance.StatusCounts
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		counts, err = repos.AttendanceRepo().CountByStatusForClient(ctx, clientID, period)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := ToClientStatsResponse(attendance.NewClientStats(counts))
	return &resp, nil
}

// ListBySchedule returns all marks of a class
func (s *Service) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]AttendanceResponse, error) {
	result := make([]AttendanceResponse, 0)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ScheduleRepo().FindByIDWithGroup(ctx, scheduleID); err != nil {
			return err
		}
		marks, err := repos.AttendanceRepo().ListBySchedule(ctx, scheduleID)
		if err != nil {
			return err
		}
		for i := range marks {
			result = append(result, ToAttendanceResponse(&marks[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// coverPresence charges a PRESENT mark to a subscription. Classes without a
// group cannot be charged; asking for a specific subscription there is an error.
func (s *Service) coverPresence(
	ctx context.Context,
	repos TransactionalRepositories,
	a *attendance.Attendance,
	sched *schedule.Schedule,
	preferred *uuid.UUID,
) error {
	if !sched.HasGroup() {
		if preferred != nil {
			return subscription.ErrWithoutGroup
		}
		return nil
	}

	// findValidSubscription returns the subscription row locked
	l := newLedger(repos)
	sub, err := l.findValidSubscription(ctx, a.ClientID, *sched.GroupID, sched.Date, preferred)
	if err != nil {
		return err
	}
	if sub == nil {
		s.logger.Debug("No subscription covers presence, recording unbilled",
			zap.String("client_id", a.ClientID.String()),
			zap.String("schedule_id", sched.ID.String()),
		)
		return nil
	}

	if err := l.deduct(ctx, sub); err != nil {
		return err
	}
	if err := newWriteOff(repos).advance(ctx, sub.ID, sched.Date); err != nil {
		return err
	}
	a.LinkBasis(sub.ID)
	return nil
}

// giveBack restores a visit and then reverts write-off progress, in that order,
// since revert reads the restored counter. restore locks the subscription row,
// so revert counts deducted presences only after concurrent marks committed.
func (s *Service) giveBack(ctx context.Context, repos TransactionalRepositories, subscriptionID uuid.UUID) error {
	if err := newLedger(repos).restore(ctx, subscriptionID); err != nil {
		return err
	}
	return newWriteOff(repos).revert(ctx, subscriptionID)
}

func (s *Service) publishDomainEvents(ctx context.Context, a *attendance.Attendance) {
	if s.eventPublisher == nil {
		return
	}
	events := a.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish attendance events",
			zap.String("attendance_id", a.ID.String()),
			zap.Error(err),
		)
	}
	a.ClearDomainEvents()
}

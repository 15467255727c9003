package attendance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/schedule"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/google/uuid"
)

// store is an in-memory stand-in for the reconciliation tables
type store struct {
	mu            sync.Mutex
	schedules     map[uuid.UUID]schedule.Schedule
	subscriptions map[uuid.UUID]subscription.Subscription
	attendances   map[uuid.UUID]attendance.Attendance
	invoiceSubs   map[uuid.UUID]uuid.UUID // invoice id -> subscription id
	items         map[uuid.UUID]finance.InvoiceItem
	clients       map[uuid.UUID]bool
	locked        []uuid.UUID // subscription ids passed to FindByIDForUpdate
	afterLoad     func(id uuid.UUID)
}

func newStore() *store {
	return &store{
		schedules:     make(map[uuid.UUID]schedule.Schedule),
		subscriptions: make(map[uuid.UUID]subscription.Subscription),
		attendances:   make(map[uuid.UUID]attendance.Attendance),
		invoiceSubs:   make(map[uuid.UUID]uuid.UUID),
		items:         make(map[uuid.UUID]finance.InvoiceItem),
		clients:       make(map[uuid.UUID]bool),
	}
}

func (s *store) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(
		&fakeAttendanceRepo{s},
		&fakeScheduleRepo{s},
		&fakeSubscriptionRepo{s},
		&fakeInvoiceRepo{s},
	)
}

func (s *store) subscription(id uuid.UUID) subscription.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscriptions[id]
}

func (s *store) lockedSubscriptions() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.locked...)
}

func (s *store) item(id uuid.UUID) finance.InvoiceItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

func (s *store) attendance(id uuid.UUID) (attendance.Attendance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attendances[id]
	return a, ok
}

type fakeScheduleRepo struct{ s *store }

func (r *fakeScheduleRepo) FindByIDWithGroup(_ context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sched, ok := r.s.schedules[id]
	if !ok {
		return nil, shared.NotFound("Schedule")
	}
	return &sched, nil
}

type fakeSubscriptionRepo struct{ s *store }

func (r *fakeSubscriptionRepo) FindByID(_ context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.subscriptions[id]
	if !ok {
		return nil, subscription.ErrNotFound
	}
	if sub.RemainingVisits != nil {
		v := *sub.RemainingVisits
		sub.RemainingVisits = &v
	}
	return &sub, nil
}

func (r *fakeSubscriptionRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	r.s.mu.Lock()
	r.s.locked = append(r.s.locked, id)
	r.s.mu.Unlock()
	return r.FindByID(ctx, id)
}

func (r *fakeSubscriptionRepo) FindEligible(_ context.Context, f subscription.EligibilityFilter) ([]subscription.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []subscription.Subscription
	for _, sub := range r.s.subscriptions {
		if sub.GroupID != f.GroupID || sub.Status != subscription.StatusActive || !sub.CoversDate(f.Date) {
			continue
		}
		if f.ClientID != nil && sub.ClientID != *f.ClientID {
			continue
		}
		if sub.RemainingVisits != nil && *sub.RemainingVisits <= 0 {
			continue
		}
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSubscriptionRepo) DecrementVisits(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub := r.s.subscriptions[id]
	if sub.RemainingVisits == nil || *sub.RemainingVisits <= 0 {
		return false, nil
	}
	v := *sub.RemainingVisits - 1
	sub.RemainingVisits = &v
	r.s.subscriptions[id] = sub
	return true, nil
}

func (r *fakeSubscriptionRepo) IncrementVisits(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub := r.s.subscriptions[id]
	if sub.RemainingVisits == nil {
		return nil
	}
	v := *sub.RemainingVisits + 1
	sub.RemainingVisits = &v
	r.s.subscriptions[id] = sub
	return nil
}

type fakeAttendanceRepo struct{ s *store }

func (r *fakeAttendanceRepo) FindByID(_ context.Context, id uuid.UUID) (*attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.attendances[id]
	if !ok {
		return nil, shared.NotFound("Attendance")
	}
	return &a, nil
}

func (r *fakeAttendanceRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*attendance.Attendance, error) {
	a, err := r.FindByID(ctx, id)
	if err == nil && r.s.afterLoad != nil {
		r.s.afterLoad(id)
	}
	return a, err
}

func (r *fakeAttendanceRepo) ExistsForScheduleAndClient(_ context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.attendances {
		if a.ScheduleID == scheduleID && a.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a *attendance.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.attendances[a.ID] = *a
	return nil
}

func (r *fakeAttendanceRepo) Save(_ context.Context, a *attendance.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.attendances[a.ID]
	if !ok || stored.Version != a.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	r.s.attendances[a.ID] = *a
	return nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.attendances, id)
	return nil
}

func (r *fakeAttendanceRepo) CountDeductedPresent(_ context.Context, subscriptionID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, a := range r.s.attendances {
		if a.IsDeductedPresence() && *a.SubscriptionID == subscriptionID {
			n++
		}
	}
	return n, nil
}

func (r *fakeAttendanceRepo) CountByStatusForClient(_ context.Context, clientID uuid.UUID, period shared.DateRange) (attendance.StatusCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := attendance.StatusCounts{}
	for _, a := range r.s.attendances {
		if a.ClientID != clientID {
			continue
		}
		if !period.Contains(r.s.schedules[a.ScheduleID].Date) {
			continue
		}
		counts[a.Status]++
	}
	return counts, nil
}

func (r *fakeAttendanceRepo) ListBySchedule(_ context.Context, scheduleID uuid.UUID) ([]attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range r.s.attendances {
		if a.ScheduleID == scheduleID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct{ s *store }

func (r *fakeInvoiceRepo) FindByID(context.Context, uuid.UUID) (*finance.Invoice, error) {
	return nil, finance.ErrInvoiceNotFound
}

func (r *fakeInvoiceRepo) FindByIDForUpdate(context.Context, uuid.UUID) (*finance.Invoice, error) {
	return nil, finance.ErrInvoiceNotFound
}

func (r *fakeInvoiceRepo) SaveWithLock(context.Context, *finance.Invoice) error {
	return nil
}

func (r *fakeInvoiceRepo) FindUsageItemsBySubscription(_ context.Context, subscriptionID uuid.UUID) ([]finance.InvoiceItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []finance.InvoiceItem
	for _, it := range r.s.items {
		if r.s.invoiceSubs[it.InvoiceID] == subscriptionID && it.IsWrittenOffOnUse() {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) SaveItemWriteOff(_ context.Context, item *finance.InvoiceItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[item.ID] = *item
	return nil
}

type fakeClientRepo struct{ s *store }

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	if !r.s.clients[id] {
		return nil, shared.NotFound("Client")
	}
	return &client.Client{BaseEntity: shared.BaseEntity{ID: id}, Status: client.StatusActive}, nil
}

func (r *fakeClientRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return r.s.clients[id], nil
}

func (r *fakeClientRepo) UpdateActivity(context.Context, *client.Client) error { return nil }

func (r *fakeClientRepo) DeactivateDormant(context.Context, time.Time) (int64, error) { return 0, nil }

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Events() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.DomainEvent(nil), p.events...)
}

package finance

import (
	"context"
	"sync"
	"time"

	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ledgerStore struct {
	mu       sync.Mutex
	invoices map[uuid.UUID]finance.Invoice
	payments map[uuid.UUID]finance.Payment
	clients  map[uuid.UUID]bool
	saves    int
}

func newLedgerStore() *ledgerStore {
	return &ledgerStore{
		invoices: make(map[uuid.UUID]finance.Invoice),
		payments: make(map[uuid.UUID]finance.Payment),
		clients:  make(map[uuid.UUID]bool),
	}
}

func (s *ledgerStore) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(&fakeInvoiceRepo{s}, &fakePaymentRepo{s})
}

func (s *ledgerStore) invoice(id uuid.UUID) finance.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoices[id]
}

type fakeInvoiceRepo struct{ s *ledgerStore }

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, finance.ErrInvoiceNotFound
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	inv, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = nil
	return inv, nil
}

func (r *fakeInvoiceRepo) SaveWithLock(_ context.Context, inv *finance.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.invoices[inv.ID]
	if !ok || stored.Version != inv.Version-1 {
		return shared.ErrConcurrencyConflict
	}
	items := stored.Items
	stored = *inv
	stored.Items = items
	r.s.invoices[inv.ID] = stored
	r.s.saves++
	return nil
}

func (r *fakeInvoiceRepo) FindUsageItemsBySubscription(context.Context, uuid.UUID) ([]finance.InvoiceItem, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) SaveItemWriteOff(context.Context, *finance.InvoiceItem) error {
	return nil
}

type fakePaymentRepo struct{ s *ledgerStore }

func (r *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*finance.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok {
		return nil, finance.ErrPaymentNotFound
	}
	return &p, nil
}

func (r *fakePaymentRepo) Create(_ context.Context, p *finance.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) Save(_ context.Context, p *finance.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.payments, id)
	return nil
}

func (r *fakePaymentRepo) SumCompletedByInvoice(_ context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sum := decimal.Zero
	for _, p := range r.s.payments {
		if p.InvoiceID != nil && *p.InvoiceID == invoiceID && p.IsCompleted() {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

func (r *fakePaymentRepo) ListByInvoice(_ context.Context, invoiceID uuid.UUID) ([]finance.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []finance.Payment
	for _, p := range r.s.payments {
		if p.InvoiceID != nil && *p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeClientRepo struct{ s *ledgerStore }

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

func (p *recordingPublisher) ofType(eventType string) []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []shared.DomainEvent
	for _, e := range p.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

package telemetry

import (
	"context"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
)

// ReconciliationMetrics counts attendance marks, payments and invoice status
// changes as they come off the event bus.
type ReconciliationMetrics struct {
	attendanceMarked *Counter
	paymentReceived  *Counter
	invoiceStatus    *Counter
}

// NewReconciliationMetrics creates the business counters on meter
func NewReconciliationMetrics(meter metric.Meter) (*ReconciliationMetrics, error) {
	m := &ReconciliationMetrics{}
	var err error
	if m.attendanceMarked, err = NewCounter(meter, "attendance_marked_total", "Attendance marks by status", "{mark}"); err != nil {
		return nil, err
	}
	if m.paymentReceived, err = NewCounter(meter, "payment_received_total", "Recorded payments by method and status", "{payment}"); err != nil {
		return nil, err
	}
	if m.invoiceStatus, err = NewCounter(meter, "invoice_status_changed_total", "Invoice status transitions by target status", "{transition}"); err != nil {
		return nil, err
	}
	return m, nil
}

// EventTypes implements shared.EventHandler
func (m *ReconciliationMetrics) EventTypes() []string {
	return []string{
		attendance.EventTypeMarked,
		finance.EventTypePaymentReceived,
		finance.EventTypeInvoiceStatusChanged,
	}
}

// Handle implements shared.EventHandler
func (m *ReconciliationMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *attendance.AttendanceMarkedEvent:
		m.attendanceMarked.Inc(ctx,
			AttrStatus.String(string(e.Status)),
			AttrDeducted.Bool(e.SubscriptionDeducted),
		)
	case *finance.PaymentReceivedEvent:
		m.paymentReceived.Inc(ctx,
			AttrMethod.String(string(e.Method)),
			AttrStatus.String(string(e.Status)),
		)
	case *finance.InvoiceStatusChangedEvent:
		m.invoiceStatus.Inc(ctx, AttrStatus.String(string(e.NewStatus)))
	}
	return nil
}

var _ shared.EventHandler = (*ReconciliationMetrics)(nil)

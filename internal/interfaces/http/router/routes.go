package router

import "github.com/culturehub/backend/internal/interfaces/http/handler"

// AttendanceRoutes mounts attendance marking and its queries
func AttendanceRoutes(h *handler.AttendanceHandler) *DomainGroup {
	return NewDomainGroup("attendance", "/attendance").
		POST("", h.Mark).
		GET("", h.List).
		PATCH("/:id", h.Update).
		DELETE("/:id", h.Remove).
		GET("/bases/:scheduleId", h.AvailableBases).
		GET("/stats/:clientId", h.ClientStats)
}

// PaymentRoutes mounts payment recording
func PaymentRoutes(h *handler.FinanceHandler) *DomainGroup {
	return NewDomainGroup("payments", "/payments").
		POST("", h.CreatePayment).
		GET("/:id", h.GetPayment).
		PATCH("/:id", h.UpdatePayment).
		DELETE("/:id", h.RemovePayment)
}

// InvoiceRoutes mounts invoice lookup and manual status edits
func InvoiceRoutes(h *handler.FinanceHandler) *DomainGroup {
	return NewDomainGroup("invoices", "/invoices").
		GET("/:id", h.GetInvoice).
		PATCH("/:id/status", h.UpdateInvoiceStatus)
}

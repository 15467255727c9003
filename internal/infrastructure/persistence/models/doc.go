// Package models contains GORM persistence models for the reconciliation tables.
// Domain types stay free of ORM tags; each model converts with ToDomain/FromDomain.
//
// Tables:
//   - clients
//   - groups, schedules
//   - subscription_types, subscriptions
//   - attendances (unique per schedule and client)
//   - invoices, invoice_items, payments
package models

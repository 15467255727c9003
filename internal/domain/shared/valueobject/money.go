package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// DefaultCurrency is the currency all invoices and payments are issued in
const DefaultCurrency = RUB

// DisplayPlaces is the number of decimal places amounts are shown with.
// Comparisons always use the exact amount.
const DisplayPlaces int32 = 2

// Money is an immutable decimal amount in a currency
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates Money in the given currency
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amount: amount, currency: currency}
}

// RUBs creates Money in the default currency
func RUBs(amount decimal.Decimal) Money {
	return NewMoney(amount, DefaultCurrency)
}

// Amount returns the exact decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsPositive returns true if the amount is greater than zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns the sum of both amounts
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m minus other
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// GreaterThan compares exact amounts
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// Display formats the amount with two decimals
func (m Money) Display() string {
	return m.amount.StringFixed(DisplayPlaces)
}

// String returns "<amount> <currency>"
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Display(), m.currency)
}

// MarshalJSON encodes Money as {"amount": "...", "currency": "..."}
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.amount.String(),
		Currency: m.currency,
	})
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("currency mismatch: %s and %s", m.currency, other.currency)
	}
	return nil
}

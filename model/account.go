package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	AccountID   string          `json:"account_id"`
	Name        string          `json:"name"`
	IBAN        string          `json:"iban"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	LastUpdated time.Time       `json:"last_updated"`
}

// CanDebit reports whether the account balance covers the given amount.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Debit subtracts the amount from the balance, rounded to two decimal
// places, and touches the last-updated timestamp.
func (a *Account) Debit(amount decimal.Decimal, at time.Time) {
	a.Balance = a.Balance.Sub(amount).Round(2)
	a.LastUpdated = at
}

// Credit adds the amount to the balance, rounded to two decimal places, and
// touches the last-updated timestamp.
func (a *Account) Credit(amount decimal.Decimal, at time.Time) {
	a.Balance = a.Balance.Add(amount).Round(2)
	a.LastUpdated = at
}

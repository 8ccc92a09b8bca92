package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// Transaction is one immutable ledger entry. Amount is always unsigned; the
// direction field carries the sign.
type Transaction struct {
	TransactionID    string          `json:"transaction_id"`
	AccountID        string          `json:"account_id"`
	Amount           decimal.Decimal `json:"amount"`
	Direction        string          `json:"direction"`
	Counterparty     string          `json:"counterparty"`
	CounterpartyIBAN string          `json:"counterparty_iban,omitempty"`
	Description      string          `json:"description"`
	Fast             bool            `json:"fast"`
	CreatedAt        time.Time       `json:"created_at"`
}

// SignedAmount returns the amount with the direction applied: debits
// negative, credits positive.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionOutgoing {
		return t.Amount.Neg()
	}
	return t.Amount
}

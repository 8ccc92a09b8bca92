package model

import "github.com/shopspring/decimal"

// Biller is a bill-payment institution. Amount is the fixed invoice amount
// shown as a default; only the autopay flag is mutable.
type Biller struct {
	BillerID     string          `json:"biller_id"`
	Name         string          `json:"name"`
	AccountLabel string          `json:"account_label"`
	Amount       decimal.Decimal `json:"amount"`
	Autopay      bool            `json:"autopay"`
}

package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	CardTypeDebit  = "debit"
	CardTypeCredit = "credit"
)

// Card control keys accepted by SetControl.
const (
	CardControlContactless   = "contactless"
	CardControlECommerce     = "ecommerce"
	CardControlInternational = "international"
)

type CardControls struct {
	Contactless   bool `json:"contactless"`
	ECommerce     bool `json:"ecommerce"`
	International bool `json:"international"`
}

// Card models a payment card. Spend and Limit are display-only in this core;
// no operation mutates them.
type Card struct {
	CardID       string          `json:"card_id"`
	Label        string          `json:"label"`
	MaskedNumber string          `json:"masked_number"`
	Type         string          `json:"type"`
	Spend        decimal.Decimal `json:"spend"`
	Limit        decimal.Decimal `json:"limit"`
	Frozen       bool            `json:"frozen"`
	Controls     CardControls    `json:"controls"`
}

// SetControl flips one feature toggle by key. Unknown keys are rejected so a
// typo never silently drops a control change.
func (c *Card) SetControl(key string, value bool) error {
	switch key {
	case CardControlContactless:
		c.Controls.Contactless = value
	case CardControlECommerce:
		c.Controls.ECommerce = value
	case CardControlInternational:
		c.Controls.International = value
	default:
		return fmt.Errorf("unknown card control %q", key)
	}
	return nil
}

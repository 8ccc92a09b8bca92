package model

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entity id prefixes. Every id carries the module it belongs to so a bare id
// in a log line or a payload is self-describing.
const (
	PrefixUser         = "usr"
	PrefixAccount      = "acc"
	PrefixTransaction  = "txn"
	PrefixCard         = "crd"
	PrefixBiller       = "blr"
	PrefixNotification = "ntf"
	PrefixMessage      = "msg"
	PrefixRecipient    = "rcp"
)

// bankCode is the synthetic branch code embedded in every generated IBAN.
const bankCode = "0018"

// GenerateIDWithPrefix generates a UUID prefixed with the owning module name,
// e.g. "txn_9f2c...".
func GenerateIDWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}

// GenerateIBAN produces a synthetic Turkish IBAN: "TR", two check digits,
// the bank code and sixteen random digits. Only the structural shape is
// meaningful; no check-digit algorithm is applied.
func GenerateIBAN() string {
	var sb strings.Builder
	sb.WriteString("TR")
	sb.WriteString(fmt.Sprintf("%02d", rand.Intn(90)+10))
	sb.WriteString(bankCode)
	for i := 0; i < 16; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}

// NormalizeIBAN strips all whitespace from an IBAN and upper-cases it.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// ParseAmount parses a user-supplied amount string into a positive decimal.
// A comma decimal separator is accepted since it is the common Turkish input
// form. The boolean result reports whether the amount is a valid positive
// number.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, false
	}
	if !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount.Round(2), true
}

package vadi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QRPrefill is the normalized transfer prefill extracted from a Karekod
// payload. Nothing here is validated; the transfer engine is the gate.
type QRPrefill struct {
	IBAN          string `json:"iban"`
	Amount        string `json:"amount"`
	RecipientName string `json:"recipient_name"`
}

// ApplyQRPayload parses a Karekod payload: either a JSON object with
// iban/amount/name fields or a pipe-delimited "IBAN|AMOUNT|NAME" string.
// Returns nil on empty or unparsable input; parse failures are swallowed by
// contract since this is best-effort prefill, not validation.
func ApplyQRPayload(payload string) *QRPrefill {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var doc map[string]interface{}
		if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
			return nil
		}
		return &QRPrefill{
			IBAN:          stringField(doc, "iban"),
			Amount:        stringField(doc, "amount"),
			RecipientName: stringField(doc, "name"),
		}
	}

	parts := strings.SplitN(trimmed, "|", 3)
	prefill := &QRPrefill{IBAN: parts[0]}
	if len(parts) > 1 {
		prefill.Amount = parts[1]
	}
	if len(parts) > 2 {
		prefill.RecipientName = parts[2]
	}
	return prefill
}

// stringField coerces a JSON field to string; QR producers encode amounts
// both as numbers and as strings.
func stringField(doc map[string]interface{}, key string) string {
	switch value := doc[key].(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%v", value)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}

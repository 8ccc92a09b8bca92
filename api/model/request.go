package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required),
	); err != nil {
		return err
	}
	if strings.TrimSpace(r.Phone) == "" && strings.TrimSpace(r.Email) == "" {
		return validation.NewError("validation_contact_required", "phone or email is required")
	}
	return nil
}

type VerifyOTPRequest struct {
	OTP string `json:"otp"`
}

func (r VerifyOTPRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OTP, validation.Required, validation.Length(6, 6)),
	)
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identifier, validation.Required),
	)
}

type TransferRequest struct {
	FromAccountID string `json:"from_account_id"`
	IBAN          string `json:"iban"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Fast          bool   `json:"fast"`
	RecipientName string `json:"recipient_name"`
}

func (r TransferRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FromAccountID, validation.Required),
		validation.Field(&r.IBAN, validation.Required),
		validation.Field(&r.Amount, validation.Required),
	)
}

type BillPaymentRequest struct {
	BillerID      string `json:"biller_id"`
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
	Autopay       bool   `json:"autopay"`
}

func (r BillPaymentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BillerID, validation.Required),
		validation.Field(&r.Amount, validation.Required),
	)
}

type CardFreezeRequest struct {
	Frozen bool `json:"frozen"`
}

type CardControlRequest struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}

func (r CardControlRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key, validation.Required),
	)
}

type BiometricRequest struct {
	Enabled bool `json:"enabled"`
}

type QRPrefillRequest struct {
	Payload string `json:"payload"`
}

type SupportMessageRequest struct {
	Message string `json:"message"`
}

type SettingsRequest struct {
	Language      string `json:"language"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

func (r SettingsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Language, validation.Required),
		validation.Field(&r.Theme, validation.Required),
	)
}

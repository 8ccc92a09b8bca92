package vadi

import (
	"strings"

	"github.com/vadibank/vadi/internal/apierror"
	"github.com/vadibank/vadi/model"
)

// RegistrationForm carries the onboarding inputs. Field validation (name
// present, at least one contact channel) is the caller's job; the engine only
// models the OTP flow shape.
type RegistrationForm struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// IssueOTP stores the pending registration together with the issued code and
// returns the code. In this simulation the code is always OTPCode; no expiry
// is tracked.
func (v *Vadi) IssueOTP(form RegistrationForm) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.PendingUser = &model.PendingUser{
		FullName: form.FullName,
		Phone:    form.Phone,
		Email:    form.Email,
		OTP:      OTPCode,
		IssuedAt: v.clock(),
	}
	v.commit("registration.otp_issued", nil)
	return OTPCode
}

// VerifyOTP consumes the pending registration. On a matching code it
// synthesizes the fully hydrated default state for the new user; the pending
// artifact does not survive, so a second verification fails.
func (v *Vadi) VerifyOTP(code string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	pending := v.state.PendingUser
	if pending == nil || code != pending.OTP {
		return apierror.NewAPIError(apierror.ErrOTPMismatch, "Geçersiz doğrulama kodu", nil)
	}

	state := model.NewHydratedState(*pending, v.clock())
	state.Ready = v.state.Ready
	v.state = state
	v.commit("registration.completed", v.state.User)
	return nil
}

// RequestLoginOTP issues a login challenge when the identifier matches the
// registered phone or email.
func (v *Vadi) RequestLoginOTP(identifier string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.User == nil {
		return apierror.NewAPIError(apierror.ErrNotFound, "Kayıtlı kullanıcı bulunamadı", nil)
	}
	trimmed := strings.TrimSpace(identifier)
	matches := (v.state.User.Phone != "" && trimmed == v.state.User.Phone) ||
		(v.state.User.Email != "" && trimmed == v.state.User.Email)
	if !matches {
		return apierror.NewAPIError(apierror.ErrInvalidInput, "Kayıtlı kullanıcı bulunamadı", nil)
	}

	v.state.LoginChallenge = &model.LoginChallenge{
		Identifier: trimmed,
		OTP:        OTPCode,
		IssuedAt:   v.clock(),
	}
	v.commit("login.otp_issued", nil)
	return nil
}

// VerifyLoginOTP consumes the login challenge and authenticates the session.
func (v *Vadi) VerifyLoginOTP(code string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	challenge := v.state.LoginChallenge
	if challenge == nil || code != challenge.OTP {
		return apierror.NewAPIError(apierror.ErrOTPMismatch, "Geçersiz doğrulama kodu", nil)
	}

	v.state.LoginChallenge = nil
	v.state.IsAuthenticated = true
	v.commit("login.completed", nil)
	return nil
}

// Logout drops the authenticated flag. The ledger itself is untouched.
func (v *Vadi) Logout() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.IsAuthenticated = false
	v.commit("session.logged_out", nil)
}

// ApproveKYC marks the user verified and authenticates the session.
func (v *Vadi) ApproveKYC() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.User == nil {
		return apierror.NewAPIError(apierror.ErrNotFound, "Kayıtlı kullanıcı bulunamadı", nil)
	}
	v.state.User.KYCApproved = true
	v.state.IsAuthenticated = true
	v.commit("kyc.approved", v.state.User)
	return nil
}

// ToggleBiometric records the biometric-lock preference. Any device-level
// prompt happens before this call; the engine trusts the reported result.
func (v *Vadi) ToggleBiometric(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.HasBiometricLock = enabled
	v.commit("settings.biometric_toggled", nil)
}

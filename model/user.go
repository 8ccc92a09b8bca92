package model

import "time"

type User struct {
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	KYCApproved bool      `json:"kyc_approved"`
}

// PendingUser is the transient registration artifact held between OTP
// issuance and verification. It never survives a successful verification.
type PendingUser struct {
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
	Email    string    `json:"email,omitempty"`
	OTP      string    `json:"otp"`
	IssuedAt time.Time `json:"issued_at"`
}

// LoginChallenge is the transient login artifact, cleared on successful
// verification. No expiry is enforced.
type LoginChallenge struct {
	Identifier string    `json:"identifier"`
	OTP        string    `json:"otp"`
	IssuedAt   time.Time `json:"issued_at"`
}

const (
	LanguageTurkish = "tr"
	LanguageEnglish = "en"
)

const (
	ThemeCrimson = "crimson"
	ThemeLight   = "light"
	ThemeDark    = "dark"
)

type Settings struct {
	Language      string `json:"language"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

// ValidLanguage reports whether the language code is one the simulator
// ships texts for.
func ValidLanguage(code string) bool {
	return code == LanguageTurkish || code == LanguageEnglish
}

// ValidTheme reports whether the theme name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeCrimson || name == ThemeLight || name == ThemeDark
}

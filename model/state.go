package model

import "encoding/json"

// State is the single authoritative aggregate the engine owns. Everything in
// it is addressed by id from outside; entities never hold live references to
// each other.
//
// Ready is process-local and excluded from serialization: it flips to true
// exactly once, after the first hydration attempt completes.
type State struct {
	Ready bool `json:"-"`

	IsAuthenticated  bool              `json:"is_authenticated"`
	PendingUser      *PendingUser      `json:"pending_user"`
	LoginChallenge   *LoginChallenge   `json:"login_challenge"`
	User             *User             `json:"user"`
	Accounts         []*Account        `json:"accounts"`
	Transactions     []*Transaction    `json:"transactions"`
	Cards            []*Card           `json:"cards"`
	Billers          []*Biller         `json:"billers"`
	Notifications    []*Notification   `json:"notifications"`
	FAQs             []FAQ             `json:"faqs"`
	SupportChat      []*SupportMessage `json:"support_chat"`
	KnownRecipients  []*KnownRecipient `json:"known_recipients"`
	HasBiometricLock bool              `json:"has_biometric_lock"`
	Settings         Settings          `json:"settings"`
}

// NewInitialState returns the pristine pre-registration shape: no user, empty
// collections, default settings.
func NewInitialState() *State {
	return &State{
		Accounts:        []*Account{},
		Transactions:    []*Transaction{},
		Cards:           []*Card{},
		Billers:         []*Biller{},
		Notifications:   []*Notification{},
		FAQs:            []FAQ{},
		SupportChat:     []*SupportMessage{},
		KnownRecipients: []*KnownRecipient{},
		Settings: Settings{
			Language:      LanguageTurkish,
			Theme:         ThemeCrimson,
			Notifications: true,
		},
	}
}

// MergeSnapshot unmarshals a persisted blob over a structural default. Keys
// absent from the blob keep their default values, so a snapshot written by an
// older schema hydrates safely.
func MergeSnapshot(blob []byte) (*State, error) {
	state := NewInitialState()
	if err := json.Unmarshal(blob, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Clone returns an independent deep copy of the state via a serialization
// round trip. Callers are free to mutate the copy.
func (s *State) Clone() (*State, error) {
	blob, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	clone, err := MergeSnapshot(blob)
	if err != nil {
		return nil, err
	}
	clone.Ready = s.Ready
	return clone, nil
}

// FindAccount looks an account up by id. Returns nil when absent.
func (s *State) FindAccount(accountID string) *Account {
	for _, account := range s.Accounts {
		if account.AccountID == accountID {
			return account
		}
	}
	return nil
}

// FindAccountByIBAN looks an account up by its (normalized) IBAN.
func (s *State) FindAccountByIBAN(iban string) *Account {
	for _, account := range s.Accounts {
		if account.IBAN == iban {
			return account
		}
	}
	return nil
}

// FindCard looks a card up by id. Returns nil when absent.
func (s *State) FindCard(cardID string) *Card {
	for _, card := range s.Cards {
		if card.CardID == cardID {
			return card
		}
	}
	return nil
}

// FindBiller looks a biller up by id. Returns nil when absent.
func (s *State) FindBiller(billerID string) *Biller {
	for _, biller := range s.Billers {
		if biller.BillerID == billerID {
			return biller
		}
	}
	return nil
}

// FindRecipientByIBAN looks a known recipient up by IBAN.
func (s *State) FindRecipientByIBAN(iban string) *KnownRecipient {
	for _, recipient := range s.KnownRecipients {
		if recipient.IBAN == iban {
			return recipient
		}
	}
	return nil
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewHydratedState builds the full post-registration state: default accounts
// with freshly generated IBANs, seed transactions, cards, billers,
// notifications, FAQs and the agent greeting. It is invoked exactly once, on
// successful registration OTP verification.
func NewHydratedState(pending PendingUser, now time.Time) *State {
	state := NewInitialState()
	accounts := defaultAccounts(now)

	state.User = &User{
		UserID:    GenerateIDWithPrefix(PrefixUser),
		FullName:  pending.FullName,
		Phone:     pending.Phone,
		Email:     pending.Email,
		CreatedAt: now,
	}
	state.Accounts = accounts
	state.Transactions = defaultTransactions(accounts[0].AccountID, now)
	state.Cards = defaultCards()
	state.Billers = defaultBillers()
	state.Notifications = defaultNotifications(now)
	state.FAQs = defaultFAQs()
	state.SupportChat = []*SupportMessage{
		{
			MessageID: GenerateIDWithPrefix(PrefixMessage),
			Author:    AuthorAgent,
			Message:   "Merhaba, size nasıl yardımcı olabilirim?",
			CreatedAt: now,
		},
	}
	return state
}

func defaultAccounts(now time.Time) []*Account {
	return []*Account{
		{
			AccountID:   GenerateIDWithPrefix(PrefixAccount),
			Name:        "Vadesiz TRY",
			IBAN:        GenerateIBAN(),
			Balance:     decimal.RequireFromString("12850.75"),
			Currency:    "TRY",
			LastUpdated: now,
		},
		{
			AccountID:   GenerateIDWithPrefix(PrefixAccount),
			Name:        "Birikim TRY",
			IBAN:        GenerateIBAN(),
			Balance:     decimal.RequireFromString("3250.00"),
			Currency:    "TRY",
			LastUpdated: now,
		},
	}
}

func defaultTransactions(accountID string, now time.Time) []*Transaction {
	return []*Transaction{
		{
			TransactionID: GenerateIDWithPrefix(PrefixTransaction),
			AccountID:     accountID,
			Amount:        decimal.RequireFromString("352.40"),
			Direction:     DirectionOutgoing,
			Counterparty:  "CK Boğaziçi",
			Description:   "Elektrik Faturası",
			CreatedAt:     now.Add(-7 * 24 * time.Hour),
		},
		{
			TransactionID: GenerateIDWithPrefix(PrefixTransaction),
			AccountID:     accountID,
			Amount:        decimal.RequireFromString("189.90"),
			Direction:     DirectionOutgoing,
			Counterparty:  "Migros",
			Description:   "Market harcaması",
			CreatedAt:     now.Add(-10 * 24 * time.Hour),
		},
		{
			TransactionID: GenerateIDWithPrefix(PrefixTransaction),
			AccountID:     accountID,
			Amount:        decimal.RequireFromString("24500.00"),
			Direction:     DirectionIncoming,
			Counterparty:  "Alternatif Teknoloji",
			Description:   "Maaş ödemesi",
			CreatedAt:     now.Add(-11 * 24 * time.Hour),
		},
	}
}

func defaultCards() []*Card {
	return []*Card{
		{
			CardID:       GenerateIDWithPrefix(PrefixCard),
			Label:        "Vadesiz Kart",
			MaskedNumber: "**** **** **** 1234",
			Type:         CardTypeDebit,
			Spend:        decimal.RequireFromString("1250.50"),
			Limit:        decimal.NewFromInt(10000),
			Controls:     CardControls{Contactless: true, ECommerce: true},
		},
		{
			CardID:       GenerateIDWithPrefix(PrefixCard),
			Label:        "Platinum",
			MaskedNumber: "**** **** **** 9876",
			Type:         CardTypeCredit,
			Spend:        decimal.RequireFromString("3250.80"),
			Limit:        decimal.NewFromInt(15000),
			Controls:     CardControls{Contactless: true, ECommerce: true, International: true},
		},
	}
}

func defaultBillers() []*Biller {
	return []*Biller{
		{
			BillerID:     GenerateIDWithPrefix(PrefixBiller),
			Name:         "Elektrik",
			AccountLabel: "Sözleşme No",
			Amount:       decimal.RequireFromString("352.40"),
		},
		{
			BillerID:     GenerateIDWithPrefix(PrefixBiller),
			Name:         "Su",
			AccountLabel: "Abone No",
			Amount:       decimal.RequireFromString("180.25"),
		},
		{
			BillerID:     GenerateIDWithPrefix(PrefixBiller),
			Name:         "GSM",
			AccountLabel: "Telefon No",
			Amount:       decimal.RequireFromString("249.90"),
		},
	}
}

func defaultNotifications(now time.Time) []*Notification {
	return []*Notification{
		{
			NotificationID: GenerateIDWithPrefix(PrefixNotification),
			Title:          "FAST transferiniz onaylandı",
			Body:           "Son transferiniz karşı bankaya ulaştı.",
			CreatedAt:      now.Add(-2 * time.Hour),
		},
		{
			NotificationID: GenerateIDWithPrefix(PrefixNotification),
			Title:          "Yeni kampanya: Dijital kart %10 iade",
			Body:           "Dijital kartınızla yapacağınız alışverişlerde iade fırsatı.",
			CreatedAt:      now.Add(-24 * time.Hour),
		},
	}
}

func defaultFAQs() []FAQ {
	return []FAQ{
		{
			Question: "FAST transferi nedir?",
			Answer:   "FAST, 7/24 anında gerçekleşen para transferi sistemidir.",
		},
		{
			Question: "Kartımı nasıl dondururum?",
			Answer:   "Kart Yönetimi ekranından kartınızı anında dondurabilirsiniz.",
		},
		{
			Question: "Otomatik ödeme talimatı nasıl verilir?",
			Answer:   "Fatura ödemesi sırasında otomatik ödeme seçeneğini işaretlemeniz yeterlidir.",
		},
		{
			Question: "Ekstremi nasıl dışa aktarırım?",
			Answer:   "Hesap detayından ekstrenizi CSV veya PDF olarak indirebilirsiniz.",
		},
	}
}

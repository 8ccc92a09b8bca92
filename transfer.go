package vadi

import (
	"regexp"

	"github.com/vadibank/vadi/internal/apierror"
	"github.com/vadibank/vadi/model"
)

// ibanPattern is the structural check only: country prefix, two check
// digits, twenty-two account digits. No check-digit algorithm.
var ibanPattern = regexp.MustCompile(`^TR\d{24}$`)

type TransferRequest struct {
	FromAccountID string `json:"from_account_id"`
	IBAN          string `json:"iban"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Fast          bool   `json:"fast"`
	RecipientName string `json:"recipient_name"`
}

// TransferByIBAN validates and executes an IBAN transfer. Checks run in a
// fixed order and the first failure wins with no partial effects: source
// account, amount, balance, IBAN shape. When the destination IBAN belongs to
// a different ledger account the credit leg is applied too (double entry);
// otherwise the funds leave the simulated ledger. A notification is always
// emitted and unseen recipients are recorded.
func (v *Vadi) TransferByIBAN(req TransferRequest) (*model.Transaction, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	source := v.state.FindAccount(req.FromAccountID)
	if source == nil {
		return nil, apierror.NewAPIError(apierror.ErrNotFound, "Kaynak hesap seçin", nil)
	}
	amount, ok := model.ParseAmount(req.Amount)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Tutar geçersiz", nil)
	}
	if !source.CanDebit(amount) {
		return nil, apierror.NewAPIError(apierror.ErrInsufficientFunds, "Bakiye yetersiz", nil)
	}
	iban := model.NormalizeIBAN(req.IBAN)
	if !ibanPattern.MatchString(iban) {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "IBAN formatı hatalı", nil)
	}

	now := v.clock()
	target := v.state.FindAccountByIBAN(iban)

	counterparty := req.RecipientName
	if counterparty == "" {
		if target != nil {
			counterparty = target.Name
		} else {
			counterparty = "Harici Hesap"
		}
	}

	outgoing := &model.Transaction{
		TransactionID:    model.GenerateIDWithPrefix(model.PrefixTransaction),
		AccountID:        source.AccountID,
		Amount:           amount,
		Direction:        model.DirectionOutgoing,
		Counterparty:     counterparty,
		CounterpartyIBAN: iban,
		Description:      req.Description,
		Fast:             req.Fast,
		CreatedAt:        now,
	}

	source.Debit(amount, now)
	v.state.Transactions = append([]*model.Transaction{outgoing}, v.state.Transactions...)

	if target != nil && target.AccountID != source.AccountID {
		incoming := &model.Transaction{
			TransactionID:    model.GenerateIDWithPrefix(model.PrefixTransaction),
			AccountID:        target.AccountID,
			Amount:           amount,
			Direction:        model.DirectionIncoming,
			Counterparty:     source.Name,
			CounterpartyIBAN: source.IBAN,
			Description:      req.Description,
			Fast:             req.Fast,
			CreatedAt:        now,
		}
		target.Credit(amount, now)
		v.state.Transactions = append([]*model.Transaction{incoming}, v.state.Transactions...)
	}

	title := "EFT talimatınız alındı"
	if req.Fast {
		title = "FAST transferiniz gönderildi"
	}
	v.pushNotification(title, formatTRY(amount)+" tutarında transfer oluşturuldu.")

	if v.state.FindRecipientByIBAN(iban) == nil {
		name := req.RecipientName
		if name == "" {
			name = "Yeni Alıcı"
		}
		v.state.KnownRecipients = append(v.state.KnownRecipients, &model.KnownRecipient{
			RecipientID: model.GenerateIDWithPrefix(model.PrefixRecipient),
			Name:        name,
			IBAN:        iban,
		})
	}

	v.commit("transfer.applied", outgoing)
	return outgoing, nil
}

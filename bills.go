package vadi

import (
	"fmt"

	"github.com/vadibank/vadi/internal/apierror"
	"github.com/vadibank/vadi/model"
)

type BillPaymentRequest struct {
	BillerID      string `json:"biller_id"`
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
	Autopay       bool   `json:"autopay"`
}

// PayBill validates and executes a biller payment against the primary
// account. Unlike transfers there is no credit leg inside the ledger. The
// biller's autopay flag is set to the requested value on success.
func (v *Vadi) PayBill(req BillPaymentRequest) (*model.Transaction, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	biller := v.state.FindBiller(req.BillerID)
	if biller == nil {
		return nil, apierror.NewAPIError(apierror.ErrNotFound, "Kuruluş bulunamadı", nil)
	}
	amount, ok := model.ParseAmount(req.Amount)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Tutar geçersiz", nil)
	}
	if len(v.state.Accounts) == 0 {
		return nil, apierror.NewAPIError(apierror.ErrNotFound, "Hesap bulunamadı", nil)
	}
	debitAccount := v.state.Accounts[0]
	if !debitAccount.CanDebit(amount) {
		return nil, apierror.NewAPIError(apierror.ErrInsufficientFunds, "Bakiye yetersiz", nil)
	}

	now := v.clock()
	payment := &model.Transaction{
		TransactionID: model.GenerateIDWithPrefix(model.PrefixTransaction),
		AccountID:     debitAccount.AccountID,
		Amount:        amount,
		Direction:     model.DirectionOutgoing,
		Counterparty:  biller.Name,
		Description:   fmt.Sprintf("%s ödemesi (%s)", biller.Name, req.AccountNumber),
		CreatedAt:     now,
	}

	debitAccount.Debit(amount, now)
	v.state.Transactions = append([]*model.Transaction{payment}, v.state.Transactions...)
	biller.Autopay = req.Autopay

	v.pushNotification(
		fmt.Sprintf("%s ödemesi yapıldı", biller.Name),
		formatTRY(amount)+" tutarındaki ödemeniz alınmıştır.",
	)

	v.commit("bill_payment.applied", payment)
	return payment, nil
}

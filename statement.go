package vadi

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vadibank/vadi/internal/apierror"
	"github.com/vadibank/vadi/model"
)

// statementLimit caps exports at the most recent transactions of an account.
const statementLimit = 20

const statementDateLayout = "02.01.2006 15:04"

// StatementRow is one export line: date, description, counterparty and the
// signed amount (debits negative).
type StatementRow struct {
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Counterparty string          `json:"counterparty"`
	Amount       decimal.Decimal `json:"amount"`
}

// StatementRows extracts up to the 20 most recent transactions of an account
// as export rows. The transaction log is newest-first, so the slice keeps
// that order.
func (v *Vadi) StatementRows(accountID string) (*model.Account, []StatementRow, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	account := v.state.FindAccount(accountID)
	if account == nil {
		return nil, nil, apierror.NewAPIError(apierror.ErrNotFound, "Hesap bulunamadı", nil)
	}

	rows := make([]StatementRow, 0, statementLimit)
	for _, txn := range v.state.Transactions {
		if txn.AccountID != account.AccountID {
			continue
		}
		rows = append(rows, StatementRow{
			Date:         txn.CreatedAt,
			Description:  txn.Description,
			Counterparty: txn.Counterparty,
			Amount:       txn.SignedAmount(),
		})
		if len(rows) == statementLimit {
			break
		}
	}

	copied := *account
	return &copied, rows, nil
}

// ExportStatementCSV renders the account statement as CSV bytes.
func (v *Vadi) ExportStatementCSV(accountID string) ([]byte, error) {
	_, rows, err := v.StatementRows(accountID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"Tarih", "İşlem", "Karşı Hesap", "Tutar"}); err != nil {
		return nil, errors.Wrap(err, "writing csv header")
	}
	for _, row := range rows {
		record := []string{
			row.Date.Format(statementDateLayout),
			row.Description,
			row.Counterparty,
			signedFixed(row.Amount),
		}
		if err := writer.Write(record); err != nil {
			return nil, errors.Wrap(err, "writing csv row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "flushing csv")
	}
	return buf.Bytes(), nil
}

// ExportStatementPDF renders the account statement as PDF bytes.
func (v *Vadi) ExportStatementPDF(accountID string) ([]byte, error) {
	account, rows, err := v.StatementRows(accountID)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, account.Name+" - "+account.IBAN, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "Bakiye: "+formatTRY(account.Balance), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		line := row.Date.Format(statementDateLayout) + " | " + row.Description + " | " +
			row.Counterparty + " | " + signedFixed(row.Amount)
		pdf.MultiCell(0, 7, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering pdf")
	}
	return buf.Bytes(), nil
}

// signedFixed renders a signed amount with an explicit plus on credits.
func signedFixed(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	if amount.Sign() >= 0 {
		return "+" + fixed
	}
	return fixed
}

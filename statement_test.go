package vadi

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadibank/vadi/internal/apierror"
	"github.com/vadibank/vadi/model"
)

func settingsFixture(language, theme string, notifications bool) model.Settings {
	return model.Settings{Language: language, Theme: theme, Notifications: notifications}
}

func TestStatementRows(t *testing.T) {
	v, _ := registeredVadi(t)
	state, err := v.Snapshot()
	require.NoError(t, err)
	primary := state.Accounts[0]

	account, rows, err := v.StatementRows(primary.AccountID)
	require.NoError(t, err)
	assert.Equal(t, primary.AccountID, account.AccountID)
	require.Len(t, rows, 3) // the seed transactions

	// Debits carry a negative signed amount.
	assert.True(t, rows[0].Amount.Equal(dec(t, "-352.40")))
	assert.Equal(t, "CK Boğaziçi", rows[0].Counterparty)
	assert.True(t, rows[2].Amount.Equal(dec(t, "24500.00")))
}

func TestStatementRowsCappedAtTwenty(t *testing.T) {
	v, _ := registeredVadi(t)
	state, err := v.Snapshot()
	require.NoError(t, err)
	primary := state.Accounts[0]

	for i := 0; i < 25; i++ {
		_, err := v.TransferByIBAN(TransferRequest{
			FromAccountID: primary.AccountID,
			IBAN:          externalIBAN,
			Amount:        "1",
			Description:   fmt.Sprintf("seed %d", i),
		})
		require.NoError(t, err)
	}

	_, rows, err := v.StatementRows(primary.AccountID)
	require.NoError(t, err)
	assert.Len(t, rows, 20)
	// Newest first.
	assert.Equal(t, "seed 24", rows[0].Description)
}

func TestStatementRowsUnknownAccount(t *testing.T) {
	v, _ := registeredVadi(t)

	_, _, err := v.StatementRows("acc_missing")
	require.Error(t, err)
	assert.Equal(t, apierror.ErrNotFound, apierror.CodeOf(err))
}

func TestExportStatementCSV(t *testing.T) {
	v, _ := registeredVadi(t)
	state, err := v.Snapshot()
	require.NoError(t, err)

	data, err := v.ExportStatementCSV(state.Accounts[0].AccountID)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Tarih,İşlem,Karşı Hesap,Tutar", lines[0])
	assert.Contains(t, lines[1], "-352.40")
	assert.Contains(t, lines[3], "+24500.00")
}

func TestExportStatementPDF(t *testing.T) {
	v, _ := registeredVadi(t)
	state, err := v.Snapshot()
	require.NoError(t, err)

	data, err := v.ExportStatementPDF(state.Accounts[0].AccountID)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestUpdateSettings(t *testing.T) {
	v, _ := registeredVadi(t)

	require.NoError(t, v.UpdateSettings(settingsFixture("en", "light", false)))
	state, err := v.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "en", state.Settings.Language)
	assert.Equal(t, "light", state.Settings.Theme)
	assert.False(t, state.Settings.Notifications)

	err = v.UpdateSettings(settingsFixture("de", "light", true))
	require.Error(t, err)
	assert.Equal(t, apierror.ErrInvalidInput, apierror.CodeOf(err))

	err = v.UpdateSettings(settingsFixture("tr", "neon", true))
	require.Error(t, err)
	assert.Equal(t, apierror.ErrInvalidInput, apierror.CodeOf(err))
}

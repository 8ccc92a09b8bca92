package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadibank/vadi"
	"github.com/vadibank/vadi/config"
	"github.com/vadibank/vadi/model"
	"github.com/vadibank/vadi/store"
)

func setupRouter(t *testing.T) (*gin.Engine, *vadi.Vadi) {
	t.Helper()
	config.MockConfig(&config.Configuration{
		Storage: config.StorageConfig{Backend: config.BackendMemory},
	})
	engine := vadi.NewVadi(store.NewMemoryStore())
	require.NoError(t, engine.Hydrate(context.Background()))
	return NewAPI(engine).Router(), engine
}

func doJSON(t *testing.T, router *gin.Engine, method, route string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, route, &body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func registerUser(t *testing.T, router *gin.Engine) {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/auth/register", gin.H{
		"full_name": "Ada Lovelace",
		"phone":     "+905551112233",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var issued struct {
		OTP string `json:"otp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&issued))
	require.Equal(t, vadi.OTPCode, issued.OTP)

	resp = doJSON(t, router, http.MethodPost, "/auth/register/verify", gin.H{"otp": issued.OTP})
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestRegistrationFlow(t *testing.T) {
	router, engine := setupRouter(t)
	registerUser(t, router)

	state, err := engine.Snapshot()
	require.NoError(t, err)
	require.NotNil(t, state.User)
	assert.Equal(t, "Ada Lovelace", state.User.FullName)
	assert.Len(t, state.Accounts, 2)
}

func TestRegisterRejectsMissingContact(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/auth/register", gin.H{"full_name": "Ada"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestVerifyRegistrationWrongOTP(t *testing.T) {
	router, _ := setupRouter(t)
	resp := doJSON(t, router, http.MethodPost, "/auth/register", gin.H{
		"full_name": "Ada",
		"email":     "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/auth/register/verify", gin.H{"otp": "000000"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLoginFlow(t *testing.T) {
	router, _ := setupRouter(t)
	registerUser(t, router)

	resp := doJSON(t, router, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/auth/login", gin.H{"identifier": "+905551112233"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/auth/login/verify", gin.H{"otp": vadi.OTPCode})
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestTransferEndpoint(t *testing.T) {
	router, engine := setupRouter(t)
	registerUser(t, router)

	state, err := engine.Snapshot()
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodPost, "/transfers", gin.H{
		"from_account_id": state.Accounts[0].AccountID,
		"iban":            state.Accounts[1].IBAN,
		"amount":          "100",
		"description":     "Birikim",
		"fast":            true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var txn model.Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&txn))
	assert.Equal(t, model.DirectionOutgoing, txn.Direction)

	resp = doJSON(t, router, http.MethodPost, "/transfers", gin.H{
		"from_account_id": state.Accounts[0].AccountID,
		"iban":            "TR00",
		"amount":          "100",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/transfers", gin.H{
		"from_account_id": state.Accounts[0].AccountID,
		"iban":            state.Accounts[1].IBAN,
		"amount":          "9999999",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestPayBillEndpoint(t *testing.T) {
	router, engine := setupRouter(t)
	registerUser(t, router)

	state, err := engine.Snapshot()
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodPost, "/payments", gin.H{
		"biller_id":      state.Billers[0].BillerID,
		"account_number": "21900345",
		"amount":         "352.40",
		"autopay":        true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/payments", gin.H{
		"biller_id": "blr_missing",
		"amount":    "10",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestQRPrefillEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/qr/prefill", gin.H{
		"payload": "TR330006100519786457841326|99.90|Mehmet",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Prefill *vadi.QRPrefill `json:"prefill"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Prefill)
	assert.Equal(t, "99.90", body.Prefill.Amount)

	resp = doJSON(t, router, http.MethodPost, "/qr/prefill", gin.H{"payload": "{broken"})
	require.Equal(t, http.StatusOK, resp.Code)
	body.Prefill = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Prefill)
}

func TestCardEndpoints(t *testing.T) {
	router, engine := setupRouter(t)
	registerUser(t, router)

	state, err := engine.Snapshot()
	require.NoError(t, err)
	cardID := state.Cards[0].CardID

	resp := doJSON(t, router, http.MethodPost, "/cards/"+cardID+"/freeze", gin.H{"frozen": true})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/cards/"+cardID+"/controls", gin.H{
		"key":   model.CardControlInternational,
		"value": true,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/cards/crd_missing/freeze", gin.H{"frozen": true})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	after, err := engine.Snapshot()
	require.NoError(t, err)
	assert.True(t, after.Cards[0].Frozen)
	assert.True(t, after.Cards[0].Controls.International)
}

func TestNotificationAndSupportEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	registerUser(t, router)

	resp := doJSON(t, router, http.MethodPost, "/support/messages", gin.H{"message": "Merhaba"})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/support/messages", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var chat []model.SupportMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&chat))
	assert.Len(t, chat, 3) // greeting + user + scripted reply

	resp = doJSON(t, router, http.MethodPost, "/notifications/read", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/notifications", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var notifications []model.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notifications))
	for _, item := range notifications {
		assert.True(t, item.Read)
	}
}

func TestSettingsAndResetEndpoints(t *testing.T) {
	router, engine := setupRouter(t)
	registerUser(t, router)

	resp := doJSON(t, router, http.MethodPost, "/settings", gin.H{
		"language":      "en",
		"theme":         "light",
		"notifications": false,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/settings", gin.H{
		"language": "de",
		"theme":    "light",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/reset", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	state, err := engine.Snapshot()
	require.NoError(t, err)
	assert.Nil(t, state.User)
}

func TestExportStatementEndpoint(t *testing.T) {
	router, engine := setupRouter(t)
	registerUser(t, router)

	state, err := engine.Snapshot()
	require.NoError(t, err)
	accountID := state.Accounts[0].AccountID

	resp := doJSON(t, router, http.MethodGet, "/statements/"+accountID+"/export?format=csv", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Body.String(), "Tarih,İşlem,Karşı Hesap,Tutar")

	resp = doJSON(t, router, http.MethodGet, "/statements/"+accountID+"/export?format=pdf", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/pdf", resp.Header().Get("Content-Type"))

	resp = doJSON(t, router, http.MethodGet, "/statements/"+accountID+"/export?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSecretKeyMiddleware(t *testing.T) {
	config.MockConfig(&config.Configuration{
		Server:  config.ServerConfig{Secure: true, SecretKey: "top-secret"},
		Storage: config.StorageConfig{Backend: config.BackendMemory},
	})
	engine := vadi.NewVadi(store.NewMemoryStore())
	require.NoError(t, engine.Hydrate(context.Background()))
	router := NewAPI(engine).Router()

	req := httptest.NewRequest(http.MethodGet, "/state", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/state", nil)
	req.Header.Set("X-Vadi-Key", "top-secret")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

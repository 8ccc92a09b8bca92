package vadi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyQRPayloadJSON(t *testing.T) {
	prefill := ApplyQRPayload(`{"iban":"TR330006100519786457841326","amount":"250.75","name":"Ayşe"}`)
	require.NotNil(t, prefill)
	assert.Equal(t, "TR330006100519786457841326", prefill.IBAN)
	assert.Equal(t, "250.75", prefill.Amount)
	assert.Equal(t, "Ayşe", prefill.RecipientName)
}

func TestApplyQRPayloadJSONNumericAmount(t *testing.T) {
	prefill := ApplyQRPayload(`{"iban":"TR330006100519786457841326","amount":250}`)
	require.NotNil(t, prefill)
	assert.Equal(t, "250", prefill.Amount)
	assert.Empty(t, prefill.RecipientName)
}

func TestApplyQRPayloadPipeDelimited(t *testing.T) {
	prefill := ApplyQRPayload("TR330006100519786457841326|99.90|Mehmet")
	require.NotNil(t, prefill)
	assert.Equal(t, "TR330006100519786457841326", prefill.IBAN)
	assert.Equal(t, "99.90", prefill.Amount)
	assert.Equal(t, "Mehmet", prefill.RecipientName)
}

func TestApplyQRPayloadPartialPipe(t *testing.T) {
	prefill := ApplyQRPayload("TR330006100519786457841326")
	require.NotNil(t, prefill)
	assert.Equal(t, "TR330006100519786457841326", prefill.IBAN)
	assert.Empty(t, prefill.Amount)
	assert.Empty(t, prefill.RecipientName)
}

func TestApplyQRPayloadSwallowsFailures(t *testing.T) {
	assert.Nil(t, ApplyQRPayload(""))
	assert.Nil(t, ApplyQRPayload("   "))
	assert.Nil(t, ApplyQRPayload("{broken json"))
}

package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeModelJSON(t *testing.T) {
	raw := []byte("```json\n" + `{
		"invoice_number": "INV-1",
		"supplier_name": null,
		"tax_id": "   ",
		"customer_reference": "CR-9",
		"entities": {"client": {"name": ""}},
		"total_amount": 2500.0
	}` + "\n```")

	out, dropped, err := SanitizeModelJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	assert.Equal(t, "INV-1", m["invoice_number"])
	assert.Equal(t, 2500.0, m["total_amount"])
	assert.Equal(t, "CR-9", m["customer_reference"], "unknown keys must survive sanitization")
	assert.NotContains(t, m, "supplier_name")
	assert.NotContains(t, m, "tax_id")
	assert.NotContains(t, m, "entities", "section emptied by cleaning is dropped whole")
	assert.NotEmpty(t, dropped)
}

func TestSanitizeModelJSONLiteralNullString(t *testing.T) {
	out, _, err := SanitizeModelJSON([]byte(`{"tax_id": "null", "invoice_number": "INV-2"}`), nil)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "tax_id")
	assert.Equal(t, "INV-2", m["invoice_number"])
}

func TestSanitizeModelJSONInvalidInput(t *testing.T) {
	_, _, err := SanitizeModelJSON([]byte("not json at all"), nil)
	assert.Error(t, err)
}

func TestSanitizeModelJSONNoFence(t *testing.T) {
	out, dropped, err := SanitizeModelJSON([]byte(`{"invoice_number": "INV-3"}`), nil)
	require.NoError(t, err)
	assert.Empty(t, dropped)
	assert.JSONEq(t, `{"invoice_number": "INV-3"}`, string(out))
}

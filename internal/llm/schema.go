package llm

import "github.com/yasboop/docextract/constants"

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for the given document type. The schema is deliberately loose:
// nothing is required (model output may be partial) and additionalProperties
// stays open so unknown keys survive to the extras passthrough. What it does
// pin down is the shape of the keys we understand, so a structurally bogus
// response is rejected before the merge sees it.
func BuildDocumentJSONSchema(dt constants.DocumentType) map[string]any {
	switch dt {
	case constants.Contract:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": true,
			"properties": map[string]any{
				"contract_number":      stringProp(),
				"effective_date":       stringProp(),
				"expiration_date":      stringProp(),
				"entities":             objectProp(),
				"terms_and_conditions": objectProp(),
				"signatures":           objectProp(),
				"summary":              stringProp(),
			},
		}
	default: // invoice
		return map[string]any{
			"type":                 "object",
			"additionalProperties": true,
			"properties": map[string]any{
				"invoice_number":   stringProp(),
				"supplier_name":    stringProp(),
				"invoice_date":     stringProp(),
				"total_amount":     moneyProp(),
				"subtotal_amount":  moneyProp(),
				"vat_amount":       moneyProp(),
				"tax_rate":         moneyProp(),
				"payment_due_date": stringProp(),
				"purchase_order":   stringProp(),
				"tax_id":           stringProp(),
				"billing_address":  stringProp(),
				"payment_terms":    stringProp(),
				"currency":         stringProp(),
				"line_items":       map[string]any{"type": "array"},
			},
		}
	}
}

func stringProp() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

// moneyProp accepts either a decimal string or a bare number; the normalizer
// settles on the two-decimal string form later.
func moneyProp() map[string]any {
	return map[string]any{"type": []string{"string", "number", "null"}}
}

func objectProp() map[string]any {
	return map[string]any{"type": []string{"object", "null"}}
}

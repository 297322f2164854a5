package llm

import (
	"strings"

	"github.com/yasboop/docextract/constants"
)

// maxPromptText caps how much document text gets sent to the model; headers
// and totals live near the edges of a document, so we keep the head and tail
// when forced to cut.
const maxPromptText = 8000

// BuildSystemPrompt composes the system message for a document type.
func BuildSystemPrompt(dt constants.DocumentType) string {
	return "You are an expert document analysis system specialized in extracting structured information from " +
		string(dt) + "s. Return ONLY a JSON object. Use ISO-8601 dates (YYYY-MM-DD) where possible. " +
		"If a field is not present in the document, omit it rather than outputting null."
}

// BuildExtractionPrompt returns the per-type field instructions.
func BuildExtractionPrompt(dt constants.DocumentType) string {
	switch dt {
	case constants.Contract:
		return strings.Join([]string{
			"Extract the following from this contract document and return a JSON object:",
			"- contract_number: the unique identifier for this contract",
			"- effective_date: the date the contract begins",
			"- expiration_date: the date the contract ends or expires",
			"- entities: {service_provider: {name}, client: {name}}",
			"- terms_and_conditions: {payment_terms: {amount, schedule, methods}, renewal_clause, termination_conditions, legal_obligations: {client: [], service_provider: []}}",
			"- signatures: {service_provider: {name, date}, client: {name, date}, signing_date}",
			"Pay special attention to the contract details at the start of the document,",
			"sections labeled with terms, payment, renewal or termination, and the signature block.",
			"Return ONLY the JSON object and nothing else.",
		}, "\n")
	default: // invoice
		return strings.Join([]string{
			"Extract the following from this invoice document and return a JSON object:",
			"- invoice_number: the unique identifier for this invoice",
			"- supplier_name: the company or person who issued the invoice",
			"- invoice_date: the date the invoice was issued",
			"- total_amount: the final amount due including taxes",
			"- subtotal_amount: the subtotal before taxes/VAT (if present)",
			"- vat_amount: the VAT or tax amount (if present)",
			"- tax_rate: the tax rate percentage (if present)",
			"- payment_due_date: the date by which payment should be made",
			"- purchase_order: purchase order reference (if present)",
			"- tax_id: VAT number, Tax ID, or business registration number (if present)",
			"- billing_address: the billing address (if present)",
			"- payment_terms: payment terms such as \"Net 30\" (if present)",
			"- currency: the currency used in the invoice",
			"- line_items: an array of {description, quantity, unit_price, amount}",
			"Pay special attention to company names at the top of the document,",
			"line items in tabular format, and tax information near the total.",
			"Return ONLY the JSON object and nothing else.",
		}, "\n")
	}
}

// BuildUserPrompt packages the document text, truncating long documents
// while keeping the head and the tail.
func BuildUserPrompt(dt constants.DocumentType, text string) string {
	body := strings.TrimSpace(text)
	if len(body) > maxPromptText {
		head := maxPromptText / 3
		tail := maxPromptText - head
		body = body[:head] + "\n...[content truncated]...\n" + body[len(body)-tail:]
	}
	return BuildExtractionPrompt(dt) + "\n\nText extracted from document:\n" + body
}

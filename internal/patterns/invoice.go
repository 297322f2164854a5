package patterns

import "github.com/yasboop/docextract/constants"

// Field names of the flat invoice schema.
const (
	FieldInvoiceNumber  = "invoice_number"
	FieldSupplierName   = "supplier_name"
	FieldInvoiceDate    = "invoice_date"
	FieldTotalAmount    = "total_amount"
	FieldSubtotalAmount = "subtotal_amount"
	FieldVATAmount      = "vat_amount"
	FieldTaxRate        = "tax_rate"
	FieldPaymentDueDate = "payment_due_date"
	FieldPurchaseOrder  = "purchase_order"
	FieldTaxID          = "tax_id"
	FieldBillingAddress = "billing_address"
	FieldPaymentTerms   = "payment_terms"
	FieldCurrency       = "currency"
	FieldLineItems      = "line_items"
)

var invoiceLibrary = Library{
	Type: constants.Invoice,
	Flat: []FieldPattern{
		{
			Field: FieldInvoiceNumber,
			Kind:  KindIdentifier,
			Candidates: []Candidate{
				{Expr: `(?i)invoice\s*(?:#|number|no)?[:.\s]*\s*(INV[A-Za-z0-9-]+)`, Group: 1},
				{Expr: `(?i)\b(INV-\d+(?:-\d+)+)\b`, Group: 1},
				{Expr: `(?i)(?:INV|INVOICE)[:\-\s]*(\d+(?:[-/]\d+)*)`, Group: 1},
			},
		},
		{
			Field: FieldSupplierName,
			Kind:  KindText,
			Candidates: []Candidate{
				{Expr: `(?i)(?:==+|--+)\s*([\w ]+(?:INC|LLC|LTD|CORP|CO)\.?)\s*(?:==+|--+)`, Group: 1},
				{Expr: `(?im)^\s*([A-Z][\w ]+(?:INC|LLC|LTD|CORP|CO)\.?,?\s*(?:INC|LLC|LTD|CORP|CO)?\.?)\s*$`, Group: 1},
				{Expr: `(?i)BILL\s+FROM:?[ \t]*([^\r\n]+)`, Group: 1},
				{Expr: `(?i)\bFROM:?[ \t]*([^\r\n]+)`, Group: 1},
			},
		},
		{
			Field: FieldInvoiceDate,
			Kind:  KindDate,
			Candidates: []Candidate{
				{Expr: `(?i)(?:invoice|issue)\s*date[:.\s]\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`, Group: 1},
				{Expr: `(?i)\bdate:\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`, Group: 1},
			},
		},
		{
			Field: FieldTotalAmount,
			Kind:  KindCurrency,
			Candidates: []Candidate{
				{Expr: `(?i)total\s+due[:.\s]*[$€£¥]?\s*([\d,]+\.\d{2})`, Group: 1},
				{Expr: `(?i)(?:total|amount\s+due|balance\s+due|sum)[:.\s]+[$€£¥]?\s*([\d,]+\.\d{2})`, Group: 1},
			},
		},
		{
			Field: FieldSubtotalAmount,
			Kind:  KindCurrency,
			Candidates: []Candidate{
				{Expr: `(?i)(?:sub-?total|sub\s+total)[:.\s]*[$€£¥]?\s*([\d,]+\.\d{2})`, Group: 1},
			},
		},
		{
			Field: FieldVATAmount,
			Kind:  KindCurrency,
			Candidates: []Candidate{
				{Expr: `(?i)(?:Tax|VAT)\s+\(\d+(?:\.\d+)?%\)[:.\s]*\$?\s*([\d,]+\.\d{2})`, Group: 1},
				{Expr: `(?i)(?:vat|tax|gst|hst)[:.\s]+[$€£¥]?\s*([\d,]+\.\d{2})`, Group: 1},
			},
		},
		{
			Field: FieldTaxRate,
			Kind:  KindText,
			Candidates: []Candidate{
				{Expr: `(?i)(?:Tax|VAT)\s+\((\d+(?:\.\d+)?)%\)`, Group: 1},
				{Expr: `(?i)(?:Tax|VAT)\s+rate:?\s*(\d+(?:\.\d+)?)%`, Group: 1},
			},
		},
		{
			Field: FieldPaymentDueDate,
			Kind:  KindDate,
			Candidates: []Candidate{
				{Expr: `(?i)(?:payment\s+)?due\s+date[:.\s]\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`, Group: 1},
			},
		},
		{
			Field: FieldPurchaseOrder,
			Kind:  KindIdentifier,
			Candidates: []Candidate{
				{Expr: `(?i)(?:P\.?O\.?|Purchase\s+Order)(?:\s*(?:#|No\.?|Number))?:?\s*([A-Za-z0-9-]+)`, Group: 1},
			},
		},
		{
			Field: FieldTaxID,
			Kind:  KindIdentifier,
			Candidates: []Candidate{
				{Expr: `(?i)(?:Tax|VAT)\s+(?:ID|Number):?\s*([A-Za-z0-9-]+)`, Group: 1},
				{Expr: `(?i)(?:EIN|FEIN|Federal\s+ID):?\s*([A-Za-z0-9-]+)`, Group: 1},
			},
		},
		{
			Field: FieldBillingAddress,
			Kind:  KindText,
			Candidates: []Candidate{
				{Expr: `(?i)(?:BILL\s+TO|BILLING\s+ADDRESS):?[ \t]*\r?\n((?:[^\r\n]+\r?\n?){1,3})`, Group: 1},
				{Expr: `(?i)(?:BILL\s+TO|BILLING\s+ADDRESS):?[ \t]*([^\r\n]+)`, Group: 1},
			},
		},
		{
			Field: FieldPaymentTerms,
			Kind:  KindText,
			Candidates: []Candidate{
				{Expr: `(?i)Payment\s+Terms:?\s*(Net\s+\d+|Due\s+on\s+Receipt)`, Group: 1},
				{Expr: `(?i)\bTerms:?\s*(Net\s+\d+)`, Group: 1},
				{Expr: `(?i)Payment\s+Terms:?[ \t]*([^\r\n,]+)`, Group: 1},
			},
		},
		{
			// the symbol next to the first money mention stands in for the
			// invoice currency
			Field: FieldCurrency,
			Kind:  KindText,
			Candidates: []Candidate{
				{Expr: `(?i)(?:amount|total|price)[^\r\n]*?([$€£¥])`, Group: 1},
			},
		},
	},
}

// Line-item row patterns: description | qty | unit price | amount, first in
// pipe-separated form, then a plain column fallback.
var lineItemExprs = []string{
	`(?i)([A-Za-z0-9][A-Za-z0-9 '"/.,&-]*?)\s*\|\s*(\d+)\s*\|\s*\$?([\d,]+\.\d{2})\s*\|\s*\$?([\d,]+\.\d{2})`,
	`(?m)^\s*([A-Za-z][A-Za-z0-9 '"/.,&-]{2,60}?)\s{2,}(\d+)\s+\$?([\d,]+\.\d{2})\s+\$?([\d,]+\.\d{2})\s*$`,
}

// LineItemRows returns raw [description, quantity, unit_price, amount] rows
// from the first line-item pattern that matches anything.
func LineItemRows(text string) [][4]string {
	for _, expr := range lineItemExprs {
		matches := FindAll(expr, text)
		if len(matches) == 0 {
			continue
		}
		rows := make([][4]string, 0, len(matches))
		for _, m := range matches {
			if len(m) < 5 {
				continue
			}
			rows = append(rows, [4]string{m[1], m[2], m[3], m[4]})
		}
		if len(rows) > 0 {
			return rows
		}
	}
	return nil
}

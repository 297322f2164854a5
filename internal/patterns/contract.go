package patterns

import "github.com/yasboop/docextract/constants"

// Flat contract fields and nested section names.
const (
	FieldContractNumber = "contract_number"
	FieldEffectiveDate  = "effective_date"
	FieldExpirationDate = "expiration_date"

	SectionEntities   = "entities"
	SectionTerms      = "terms_and_conditions"
	SectionSignatures = "signatures"
)

const dateAlt = `[A-Za-z]+\s+\d{1,2},?\s+\d{4}|\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{4}`

var contractLibrary = Library{
	Type: constants.Contract,
	Flat: []FieldPattern{
		{
			Field: FieldContractNumber,
			Kind:  KindIdentifier,
			Candidates: []Candidate{
				{Expr: `(?i)CONTRACT\s+NUMBER:?\s*([A-Z0-9]+-[A-Z0-9]+-[A-Z0-9]+)`, Group: 1},
				{Expr: `(?i)CONTRACT\s+(?:NO|NUMBER|#):?\s*([A-Z0-9-]+)`, Group: 1},
			},
		},
		{
			Field: FieldEffectiveDate,
			Kind:  KindDate,
			Candidates: []Candidate{
				{Expr: `(?i)EFFECTIVE\s+DATE:?\s*(` + dateAlt + `)`, Group: 1},
				{Expr: `(?i)START\s+DATE:?\s*(` + dateAlt + `)`, Group: 1},
				{Expr: `(?i)COMMENCEMENT\s+DATE:?\s*(` + dateAlt + `)`, Group: 1},
			},
		},
		{
			Field: FieldExpirationDate,
			Kind:  KindDate,
			Candidates: []Candidate{
				{Expr: `(?i)EXPIRATION\s+DATE:?\s*(` + dateAlt + `)`, Group: 1},
				{Expr: `(?i)END\s+DATE:?\s*(` + dateAlt + `)`, Group: 1},
				{Expr: `(?i)TERMINATION\s+DATE:?\s*(` + dateAlt + `)`, Group: 1},
			},
		},
	},
	Zones: []ZoneSpec{
		{
			Section: SectionEntities,
			Zone: []Candidate{
				{Expr: `(?is)(Between:[\s\S]{0,400})`, Group: 1},
				{Expr: `(?is)((?:CLIENT|CUSTOMER):[\s\S]{0,400})`, Group: 1},
			},
			Fields: []ZoneField{
				{
					Path: []string{"client", "name"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)Between:\s*\r?\n?\s*([A-Za-z0-9][A-Za-z0-9 ,.&-]*?)\s*(?:\(|\r|\n)`, Group: 1},
						{Expr: `(?i)(?:CLIENT|CUSTOMER):?\s*([A-Za-z0-9][A-Za-z0-9 ,.&-]*?(?:Ltd\.?|LLC|Inc\.?|Corporation|Corp\.?|GmbH)?)\s*(?:\(|\r|\n|$)`, Group: 1},
					},
				},
				{
					Path: []string{"service_provider", "name"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)And:\s*\r?\n?\s*([A-Za-z0-9][A-Za-z0-9 ,.&-]*?)\s*(?:\(|\r|\n)`, Group: 1},
						{Expr: `(?i)(?:SERVICE\s+PROVIDER|VENDOR|SUPPLIER):?\s*([A-Za-z0-9][A-Za-z0-9 ,.&-]*?(?:Ltd\.?|LLC|Inc\.?|Corporation|Corp\.?|GmbH)?)\s*(?:\(|\r|\n|$)`, Group: 1},
					},
				},
			},
		},
		{
			Section: SectionTerms,
			Zone: []Candidate{
				{Expr: `(?is)TERMS\s+AND\s+CONDITIONS\s*:?\s*\n([\s\S]{0,2000})`, Group: 1},
				{Expr: `(?is)(PAYMENT\s+TERMS:[\s\S]{0,2000})`, Group: 1},
			},
			Fields: []ZoneField{
				{
					Path: []string{"payment_terms", "amount"},
					Kind: KindCurrency,
					Candidates: []Candidate{
						{Expr: `(?i)PAYMENT\s+TERMS:[^\n]*?(?:amount|fee|cost|price|total)(?:\s+of)?:?\s*\$?\s*([\d,]+(?:\.\d+)?)`, Group: 1},
						{Expr: `(?i)PAYMENT\s+TERMS:[^\n]*?\$\s*([\d,]+(?:\.\d+)?)`, Group: 1},
					},
				},
				{
					Path: []string{"payment_terms", "schedule"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)paid\s+(monthly|quarterly|annually|weekly|upfront|in\s+advance|in\s+arrears)`, Group: 1},
						{Expr: `(?i)(?:schedule|frequency):?\s*(\w+(?:\s+\w+){0,3})`, Group: 1},
					},
				},
				{
					Path: []string{"payment_terms", "methods"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)(?:by|via)\s+(bank\s+transfer|wire\s+transfer|credit\s+card|direct\s+debit|check|cheque|ACH)`, Group: 1},
						{Expr: `(?i)(?:method|payment\s+method|payable\s+by):?\s*(\w+(?:\s+\w+){0,3})`, Group: 1},
					},
				},
				{
					Path: []string{"renewal_clause"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)RENEWAL(?:\s+CLAUSE)?:?\s*([^\n.]+)`, Group: 1},
						{Expr: `(?i)CONTRACT\s+RENEWAL:?\s*([^\n.]+)`, Group: 1},
					},
				},
				{
					Path: []string{"termination_conditions"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)TERMINATION(?:\s+CONDITIONS)?:?\s*([^\n.]+)`, Group: 1},
					},
				},
				{
					Path: []string{"legal_obligations", "client"},
					Kind: KindList,
					Candidates: []Candidate{
						{Expr: `(?i)CLIENT\s+OBLIGATIONS:?\s*([^\n]+)`, Group: 1},
						{Expr: `(?i)OBLIGATIONS\s+OF\s+(?:THE\s+)?CLIENT:?\s*([^\n]+)`, Group: 1},
					},
				},
				{
					Path: []string{"legal_obligations", "service_provider"},
					Kind: KindList,
					Candidates: []Candidate{
						{Expr: `(?i)(?:SERVICE\s+PROVIDER|SUPPLIER|VENDOR)\s+OBLIGATIONS:?\s*([^\n]+)`, Group: 1},
						{Expr: `(?i)OBLIGATIONS\s+OF\s+(?:THE\s+)?(?:SERVICE\s+PROVIDER|SUPPLIER|VENDOR):?\s*([^\n]+)`, Group: 1},
					},
				},
			},
		},
		{
			Section: SectionSignatures,
			Zone: []Candidate{
				{Expr: `(?is)SIGNATURES?\s*:?\s*\n([\s\S]{0,800})`, Group: 1},
				{Expr: `(?is)(FOR\s+THE\s+(?:CLIENT|SERVICE\s+PROVIDER)[\s\S]{0,800})`, Group: 1},
			},
			Fields: []ZoneField{
				{
					Path: []string{"service_provider", "name"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)FOR\s+THE\s+(?:SERVICE\s+PROVIDER|SUPPLIER|VENDOR):?[ \t]*([^\r\n(]+)`, Group: 1},
						{Expr: `(?i)(?:SERVICE\s+PROVIDER|SUPPLIER|VENDOR)\s+SIGNATURE:?[ \t]*([^\r\n(]+)`, Group: 1},
					},
				},
				{
					Path: []string{"service_provider", "date"},
					Kind: KindDate,
					Candidates: []Candidate{
						{Expr: `(?is)FOR\s+THE\s+(?:SERVICE\s+PROVIDER|SUPPLIER|VENDOR):?[^\n]*\n\s*DATE:?\s*(` + dateAlt + `)`, Group: 1},
					},
				},
				{
					Path: []string{"client", "name"},
					Kind: KindText,
					Candidates: []Candidate{
						{Expr: `(?i)FOR\s+THE\s+(?:CLIENT|CUSTOMER):?[ \t]*([^\r\n(]+)`, Group: 1},
						{Expr: `(?i)(?:CLIENT|CUSTOMER)\s+SIGNATURE:?[ \t]*([^\r\n(]+)`, Group: 1},
					},
				},
				{
					Path: []string{"client", "date"},
					Kind: KindDate,
					Candidates: []Candidate{
						{Expr: `(?is)FOR\s+THE\s+(?:CLIENT|CUSTOMER):?[^\n]*\n\s*DATE:?\s*(` + dateAlt + `)`, Group: 1},
					},
				},
				{
					Path: []string{"signing_date"},
					Kind: KindDate,
					Candidates: []Candidate{
						{Expr: `(?i)(?:SIGNING|SIGNATURE)\s+DATE:?\s*(` + dateAlt + `)`, Group: 1},
						{Expr: `(?i)\bDATE:?\s*(` + dateAlt + `)`, Group: 1},
					},
				},
			},
		},
	},
}

// partyFallbackExpr recovers both party names from a "Between: X ... And: Y"
// preamble when the entities zone came up empty. Only the document head is
// scanned.
const partyFallbackExpr = `(?is)Between:\s*([A-Za-z0-9][A-Za-z0-9 ,.&-]*?)\s*(?:\(|\r|\n)[\s\S]*?And:\s*([A-Za-z0-9][A-Za-z0-9 ,.&-]*?)\s*(?:\(|\r|\n)`

// PartyFallback returns (client, serviceProvider) scanned from the first 500
// characters of the document.
func PartyFallback(text string) (Result, Result) {
	head := text
	if len(head) > 500 {
		head = head[:500]
	}
	rs := SearchGroups(partyFallbackExpr, head, 1, 2)
	return rs[0], rs[1]
}

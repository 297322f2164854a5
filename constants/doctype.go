package constants

import "strings"

// DocumentType selects the pattern set and canonical schema for an extraction.
type DocumentType string

// Stable values (these exact strings appear in canonical records).
const (
	Invoice  DocumentType = "invoice"
	Contract DocumentType = "contract"
)

var allDocumentTypes = []DocumentType{
	Invoice,
	Contract,
}

// documentTypeSynonyms maps common aliases onto the supported types.
var documentTypeSynonyms = map[string]DocumentType{
	"invoices":          Invoice,
	"bill":              Invoice,
	"contracts":         Contract,
	"agreement":         Contract,
	"service agreement": Contract,
}

func DocumentTypes() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

// ParseDocumentType maps free-form input onto the closed set of supported
// types. The bool reports whether the input named a supported type.
func ParseDocumentType(input string) (DocumentType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	if dt, ok := documentTypeSynonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocumentTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}
	return "", false
}

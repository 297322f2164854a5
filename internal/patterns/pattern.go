package patterns

import (
	"github.com/yasboop/docextract/constants"
)

// NormalizerKind declares the post-processing applied to a matched value.
type NormalizerKind string

const (
	KindText       NormalizerKind = "text"
	KindDate       NormalizerKind = "date"
	KindCurrency   NormalizerKind = "currency"
	KindIdentifier NormalizerKind = "identifier"
	// KindList splits the captured text on commas, semicolons and newlines
	// into a trimmed string list (contract obligations).
	KindList NormalizerKind = "list"
	// KindLines marks the invoice line_items array; rows are carried whole
	// rather than normalized cell by cell.
	KindLines NormalizerKind = "lines"
)

// Candidate pairs a pattern with the capture group carrying the value.
type Candidate struct {
	Expr  string
	Group int
}

// FieldPattern is a priority list for one field: candidates are tried in
// order and the first one producing a non-absent, post-normalization-valid
// value wins. No candidate matching is not an error, only a gap.
type FieldPattern struct {
	Field      string
	Kind       NormalizerKind
	Candidates []Candidate
}

// ZoneField is a leaf extracted from within a zone's text. Path addresses
// the leaf inside the section, e.g. {"client", "name"}.
type ZoneField struct {
	Path       []string
	Kind       NormalizerKind
	Candidates []Candidate
}

// ZoneSpec describes one nested contract section. The zone candidates locate
// the section's text block; if none of them match, the entire section is
// absent. Fields are never extracted against the whole document, so a
// section can not come back half right.
type ZoneSpec struct {
	Section string
	Zone    []Candidate
	Fields  []ZoneField
}

// Library is the fixed pattern set for one document type.
type Library struct {
	Type  constants.DocumentType
	Flat  []FieldPattern
	Zones []ZoneSpec
}

// ForType returns the library for a document type.
func ForType(dt constants.DocumentType) (Library, bool) {
	switch dt {
	case constants.Invoice:
		return invoiceLibrary, true
	case constants.Contract:
		return contractLibrary, true
	}
	return Library{}, false
}

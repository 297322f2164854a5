// Package normalize holds the type-specific post-processing applied to every
// extracted field, regardless of whether the AI path or the pattern path
// produced it. Normalization never fails loudly: anything unparsable degrades
// the field to absent.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yasboop/docextract/internal/patterns"
)

var (
	wsRun     = regexp.MustCompile(`\s+`)
	listSplit = regexp.MustCompile(`[,;\n]`)
)

// Date layouts accepted, in order of likelihood.
var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"02/01/2006", // DD/MM/YYYY
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
}

// Text trims and collapses internal whitespace runs; empty-after-trim is
// absent.
func Text(raw string) patterns.Result {
	s := strings.TrimSpace(wsRun.ReplaceAllString(raw, " "))
	if s == "" {
		return patterns.Absent
	}
	return patterns.Some(s)
}

// Identifier is Text plus stripping of trailing punctuation noise.
func Identifier(raw string) patterns.Result {
	r := Text(raw)
	if !r.Ok() {
		return patterns.Absent
	}
	s := strings.TrimRight(r.Value(), ".,:;")
	if s == "" {
		return patterns.Absent
	}
	return patterns.Some(s)
}

// Date parses the accepted literal formats and returns a canonical ISO date
// string (YYYY-MM-DD), or absent when no layout fits.
func Date(raw string) patterns.Result {
	s := strings.TrimSpace(wsRun.ReplaceAllString(raw, " "))
	if s == "" {
		return patterns.Absent
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return patterns.Some(t.Format("2006-01-02"))
		}
	}
	return patterns.Absent
}

// Currency strips thousands separators and currency symbols, then parses to
// a two-decimal value. Non-numeric residue is absent.
func Currency(raw string) patterns.Result {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "$€£¥ \t")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return patterns.Absent
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return patterns.Absent
	}
	return patterns.Some(fmt.Sprintf("%.2f", f))
}

// List splits raw on commas, semicolons and newlines into trimmed entries,
// dropping empties. A nil return means the whole field is absent.
func List(raw string) []string {
	parts := listSplit.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := Text(p); r.Ok() {
			out = append(out, r.Value())
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Value applies the normalizer for kind to an arbitrary raw value (the AI
// path hands us untyped JSON). The bool reports presence; false means the
// field degrades to absent.
func Value(kind patterns.NormalizerKind, raw any) (any, bool) {
	if raw == nil {
		return nil, false
	}
	switch kind {
	case patterns.KindCurrency:
		switch t := raw.(type) {
		case float64:
			return fmt.Sprintf("%.2f", t), true
		case int:
			return fmt.Sprintf("%d.00", t), true
		case string:
			if r := Currency(t); r.Ok() {
				return r.Value(), true
			}
		}
		return nil, false
	case patterns.KindDate:
		if s, ok := raw.(string); ok {
			if r := Date(s); r.Ok() {
				return r.Value(), true
			}
		}
		return nil, false
	case patterns.KindList:
		switch t := raw.(type) {
		case string:
			if items := List(t); items != nil {
				return items, true
			}
		case []string:
			joined := strings.Join(t, "\n")
			if items := List(joined); items != nil {
				return items, true
			}
		case []any:
			out := make([]string, 0, len(t))
			for _, v := range t {
				if r := Text(fmt.Sprintf("%v", v)); r.Ok() {
					out = append(out, r.Value())
				}
			}
			if len(out) > 0 {
				return out, true
			}
		}
		return nil, false
	case patterns.KindIdentifier:
		if r := Identifier(stringify(raw)); r.Ok() {
			return r.Value(), true
		}
		return nil, false
	default: // KindText
		if r := Text(stringify(raw)); r.Ok() {
			return r.Value(), true
		}
		return nil, false
	}
}

func stringify(raw any) string {
	switch t := raw.(type) {
	case string:
		return t
	case float64, int, bool:
		return fmt.Sprintf("%v", t)
	default:
		// maps and slices have no flat-text rendering; treat as absent
		return ""
	}
}

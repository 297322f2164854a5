// Package merge reconciles the AI partial record with the pattern-based
// partial record into one canonical record. The policy is AI-first,
// regex-augment: a normalized AI value always wins; the pattern result only
// fills gaps. The resolver is a pure function over two already-materialized
// records (no I/O, no clock, no randomness), so re-running it on the same
// inputs yields a byte-identical result.
package merge

import (
	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/extract"
	"github.com/yasboop/docextract/internal/normalize"
	"github.com/yasboop/docextract/internal/patterns"
)

// metadata keys are stamped by the pipeline after the merge; a model that
// echoes them must not smuggle them through the extras passthrough.
var reservedKeys = map[string]struct{}{
	constants.KeyDocumentType:     {},
	constants.KeyExtractionMethod: {},
	constants.KeySummary:          {},
}

// Resolve merges ai and rx under schema. Fields are independent of each
// other, so processing order does not affect the outcome.
func Resolve(schema extract.Schema, ai, rx extract.PartialRecord) extract.CanonicalRecord {
	out := extract.CanonicalRecord{}

	for _, f := range schema.Flat {
		if f.Kind == patterns.KindLines {
			if v, ok := pickLines(ai[f.Name], rx[f.Name]); ok {
				out[f.Name] = v
			}
			continue
		}
		// An AI value that is present but empty or whitespace-only fails
		// normalization here, so the regex value still gets consulted.
		if v, ok := normalize.Value(f.Kind, ai[f.Name]); ok {
			out[f.Name] = v
		} else if v, ok := normalize.Value(f.Kind, rx[f.Name]); ok {
			out[f.Name] = v
		}
	}

	for _, sec := range schema.Sections {
		merged := mergeSection(schema, sec, nil, asMap(ai[sec]), asMap(rx[sec]))
		if len(merged) > 0 {
			out[sec] = merged
		}
	}

	// Forward-compatibility: unknown AI keys ride through unmodified, but a
	// schema field resolved above is never overwritten.
	for k, v := range ai {
		if schema.HasFlat(k) || schema.HasSection(k) {
			continue
		}
		if _, reserved := reservedKeys[k]; reserved {
			continue
		}
		if _, taken := out[k]; taken {
			continue
		}
		out[k] = v
	}

	return out
}

// mergeSection merges one nested level key by key, AI-first per leaf.
// A subtree present in only one source is carried through (normalized, so
// the canonical non-empty invariant holds for it too). An empty result means
// the section is omitted entirely.
func mergeSection(schema extract.Schema, section string, path []string, ai, rx map[string]any) map[string]any {
	if ai == nil && rx == nil {
		return nil
	}
	out := map[string]any{}

	for key := range union(ai, rx) {
		childPath := append(append([]string{}, path...), key)
		aiChild, aiIsMap := ai[key].(map[string]any)
		rxChild, rxIsMap := rx[key].(map[string]any)

		if aiIsMap || rxIsMap {
			if !aiIsMap {
				aiChild = nil
			}
			if !rxIsMap {
				rxChild = nil
			}
			if sub := mergeSection(schema, section, childPath, aiChild, rxChild); len(sub) > 0 {
				out[key] = sub
			}
			continue
		}

		kind := schema.LeafKind(section, childPath)
		if v, ok := normalize.Value(kind, ai[key]); ok {
			out[key] = v
		} else if v, ok := normalize.Value(kind, rx[key]); ok {
			out[key] = v
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// pickLines takes the AI line-item array whole when it is a non-empty array,
// otherwise the regex one. Rows are carried as-is.
func pickLines(ai, rx any) (any, bool) {
	if arr, ok := nonEmptyArray(ai); ok {
		return arr, true
	}
	if arr, ok := nonEmptyArray(rx); ok {
		return arr, true
	}
	return nil, false
}

func nonEmptyArray(v any) (any, bool) {
	switch t := v.(type) {
	case []any:
		if len(t) > 0 {
			return t, true
		}
	case []map[string]string:
		if len(t) > 0 {
			return t, true
		}
	case []map[string]any:
		if len(t) > 0 {
			return t, true
		}
	}
	return nil, false
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func union(a, b map[string]any) map[string]struct{} {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	return keys
}

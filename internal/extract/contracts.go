package extract

import (
	"strings"

	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/patterns"
)

// PartialRecord is a best-effort extraction from one source (AI or pattern
// based). Flat fields map to raw values; contract sections map to nested
// maps. Absent fields are simply missing keys. A PartialRecord is built once
// and never mutated afterwards.
type PartialRecord map[string]any

// CanonicalRecord is the merged, normalized output returned to callers.
// Every field present is non-empty after normalization; absent fields are
// omitted, never null. Shape varies by document type.
type CanonicalRecord map[string]any

// FieldSpec names one flat schema field together with its normalizer.
type FieldSpec struct {
	Name string
	Kind patterns.NormalizerKind
}

// Schema is the canonical shape for one document type: the flat field list
// plus the nested section names (contracts only). Leaf normalizer kinds for
// nested paths are derived from the pattern library so both extraction paths
// normalize identically.
type Schema struct {
	Type      constants.DocumentType
	Flat      []FieldSpec
	Sections  []string
	leafKinds map[string]patterns.NormalizerKind
}

// SchemaFor builds the schema for a document type from its pattern library.
func SchemaFor(dt constants.DocumentType) (Schema, bool) {
	lib, ok := patterns.ForType(dt)
	if !ok {
		return Schema{}, false
	}
	s := Schema{Type: dt, leafKinds: make(map[string]patterns.NormalizerKind)}
	for _, fp := range lib.Flat {
		s.Flat = append(s.Flat, FieldSpec{Name: fp.Field, Kind: fp.Kind})
	}
	if dt == constants.Invoice {
		s.Flat = append(s.Flat, FieldSpec{Name: patterns.FieldLineItems, Kind: patterns.KindLines})
	}
	for _, z := range lib.Zones {
		s.Sections = append(s.Sections, z.Section)
		for _, f := range z.Fields {
			s.leafKinds[leafKey(z.Section, f.Path)] = f.Kind
		}
	}
	return s, true
}

// HasFlat reports whether name is a declared flat field.
func (s Schema) HasFlat(name string) bool {
	for _, f := range s.Flat {
		if f.Name == name {
			return true
		}
	}
	return false
}

// HasSection reports whether name is a declared nested section.
func (s Schema) HasSection(name string) bool {
	for _, sec := range s.Sections {
		if sec == name {
			return true
		}
	}
	return false
}

// LeafKind returns the normalizer for a nested leaf; unknown leaves (model
// supplied keys outside the library) normalize as text.
func (s Schema) LeafKind(section string, path []string) patterns.NormalizerKind {
	if k, ok := s.leafKinds[leafKey(section, path)]; ok {
		return k
	}
	return patterns.KindText
}

func leafKey(section string, path []string) string {
	return section + "." + strings.Join(path, ".")
}

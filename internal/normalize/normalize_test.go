package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yasboop/docextract/internal/patterns"
)

func TestText(t *testing.T) {
	assert.Equal(t, "Acme Corp", Text("  Acme   Corp  ").Value())
	assert.Equal(t, "one two three", Text("one\ttwo\n three").Value())
	assert.False(t, Text("").Ok())
	assert.False(t, Text("   \t\n ").Ok())
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "INV-42", Identifier(" INV-42. ").Value())
	assert.Equal(t, "PO-88421", Identifier("PO-88421,").Value())
	assert.False(t, Identifier("...").Ok())
	assert.False(t, Identifier("  ").Ok())
}

func TestDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"2024-04-01", "2024-04-01", true},
		{"April 1, 2024", "2024-04-01", true},
		{"April 1 2024", "2024-04-01", true},
		{"Apr 1, 2024", "2024-04-01", true},
		{"15/03/2024", "2024-03-15", true},
		{"15-03-2024", "2024-03-15", true},
		{"  January  15,  2024 ", "2024-01-15", true},
		{"not a date", "", false},
		{"2024-13-45", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		r := Date(tt.raw)
		assert.Equal(t, tt.ok, r.Ok(), "raw %q", tt.raw)
		assert.Equal(t, tt.want, r.Value(), "raw %q", tt.raw)
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"2,500.00", "2500.00", true},
		{"$2,500.00", "2500.00", true},
		{"€1,234.5", "1234.50", true},
		{"£999", "999.00", true},
		{"14560.789", "14560.79", true},
		{"abc", "", false},
		{"$", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		r := Currency(tt.raw)
		assert.Equal(t, tt.ok, r.Ok(), "raw %q", tt.raw)
		assert.Equal(t, tt.want, r.Value(), "raw %q", tt.raw)
	}
}

func TestList(t *testing.T) {
	assert.Equal(t,
		[]string{"provide access", "designate a manager", "pay on time"},
		List("provide access, designate a manager; pay on time"))
	assert.Equal(t,
		[]string{"a", "b"},
		List("a\nb"))
	assert.Nil(t, List(" , ; "))
	assert.Nil(t, List(""))
}

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		kind patterns.NormalizerKind
		raw  any
		want any
		ok   bool
	}{
		{"nil is absent", patterns.KindText, nil, nil, false},
		{"text string", patterns.KindText, "  hello  world ", "hello world", true},
		{"text whitespace only", patterns.KindText, "   ", nil, false},
		{"text map is absent", patterns.KindText, map[string]any{"x": 1}, nil, false},
		{"identifier", patterns.KindIdentifier, "INV-1.", "INV-1", true},
		{"date string", patterns.KindDate, "March 3, 2024", "2024-03-03", true},
		{"date garbage", patterns.KindDate, "soonish", nil, false},
		{"date non-string", patterns.KindDate, 20240303.0, nil, false},
		{"currency float", patterns.KindCurrency, 1250.5, "1250.50", true},
		{"currency int", patterns.KindCurrency, 99, "99.00", true},
		{"currency string", patterns.KindCurrency, "$2,500.00", "2500.00", true},
		{"currency garbage", patterns.KindCurrency, "a lot", nil, false},
		{"list string", patterns.KindList, "a, b", []string{"a", "b"}, true},
		{"list any slice", patterns.KindList, []any{"x", " y "}, []string{"x", "y"}, true},
		{"list empty", patterns.KindList, "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Value(tt.kind, tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

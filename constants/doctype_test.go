package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		input string
		want  DocumentType
		ok    bool
	}{
		{"invoice", Invoice, true},
		{"Invoice", Invoice, true},
		{"  INVOICE  ", Invoice, true},
		{"invoices", Invoice, true},
		{"bill", Invoice, true},
		{"contract", Contract, true},
		{"agreement", Contract, true},
		{"service agreement", Contract, true},
		{"contracts", Contract, true},
		{"receipt", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDocumentType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestDocumentTypes(t *testing.T) {
	assert.Equal(t, []string{"invoice", "contract"}, DocumentTypes())
}

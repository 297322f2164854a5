// Package summary derives a human-readable synopsis from a merged contract
// record. It is a light post-step over the canonical record: AI-backed when
// a summarizer is wired, with a deterministic template fallback so a summary
// is always produced.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yasboop/docextract/internal/extract"
	"github.com/yasboop/docextract/internal/llm"
	"github.com/yasboop/docextract/internal/patterns"
)

type Generator struct {
	logger  *slog.Logger
	ai      llm.Summarizer // optional
	timeout time.Duration
}

func NewGenerator(ai llm.Summarizer, timeout time.Duration, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Generator{logger: logger, ai: ai, timeout: timeout}
}

// Generate returns the synopsis for a merged contract record. An AI failure
// is logged and absorbed; the template fallback keeps the result non-empty.
func (g *Generator) Generate(ctx context.Context, text string, record extract.CanonicalRecord) string {
	if g.ai != nil {
		sctx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()
		s, err := g.ai.Summarize(sctx, text, record)
		if err == nil && s != "" {
			return s
		}
		g.logger.Warn("summary.ai_failed", "error", err)
	}
	return Fallback(record)
}

// Fallback builds a one-paragraph synopsis from whatever the merge resolved.
func Fallback(record extract.CanonicalRecord) string {
	number := flatOr(record, patterns.FieldContractNumber, "unknown")
	provider := entityName(record, "service_provider")
	client := entityName(record, "client")
	from := flatOr(record, patterns.FieldEffectiveDate, "unknown")
	to := flatOr(record, patterns.FieldExpirationDate, "unknown")
	return fmt.Sprintf("Contract %s between %s and %s. Valid from %s to %s.",
		number, provider, client, from, to)
}

func flatOr(record extract.CanonicalRecord, key, def string) string {
	if s, ok := record[key].(string); ok && s != "" {
		return s
	}
	return def
}

func entityName(record extract.CanonicalRecord, party string) string {
	entities, _ := record[patterns.SectionEntities].(map[string]any)
	p, _ := entities[party].(map[string]any)
	if s, ok := p["name"].(string); ok && s != "" {
		return s
	}
	return "unknown"
}

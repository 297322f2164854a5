package extract

import (
	"log/slog"

	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/normalize"
	"github.com/yasboop/docextract/internal/patterns"
)

// RegexExtractor runs the pattern library over raw document text and
// produces a normalized best-effort PartialRecord. It is pure CPU work:
// no I/O, no shared state, safe to run concurrently with the AI call.
type RegexExtractor struct {
	logger *slog.Logger
}

func NewRegexExtractor(logger *slog.Logger) *RegexExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegexExtractor{logger: logger}
}

// Extract returns the pattern-based partial record for the document type.
// An unsupported type yields an empty record; validation of the type happens
// upstream, before extraction begins.
func (e *RegexExtractor) Extract(dt constants.DocumentType, text string) PartialRecord {
	lib, ok := patterns.ForType(dt)
	if !ok {
		return PartialRecord{}
	}

	rec := PartialRecord{}
	for _, fp := range lib.Flat {
		if v, ok := firstCandidate(fp.Kind, fp.Candidates, text); ok {
			rec[fp.Field] = v
			e.logger.Debug("regex.extract.field", "field", fp.Field)
		}
	}

	if dt == constants.Invoice {
		if items := lineItems(text); len(items) > 0 {
			rec[patterns.FieldLineItems] = items
		}
	}

	for _, zone := range lib.Zones {
		if sec := e.extractZone(zone, text); len(sec) > 0 {
			rec[zone.Section] = sec
		}
	}

	if dt == constants.Contract {
		e.applyPartyFallback(rec, text)
	}

	e.logger.Info("regex.extract.ok", "document_type", string(dt), "fields", len(rec))
	return rec
}

// extractZone locates the section's text block and extracts its leaves.
// A zone whose block pattern does not match stays entirely absent: leaves
// are never matched against the whole document.
func (e *RegexExtractor) extractZone(zone patterns.ZoneSpec, text string) map[string]any {
	var block string
	for _, c := range zone.Zone {
		if r := patterns.SearchGroup(c.Expr, text, c.Group); r.Ok() {
			block = r.Value()
			break
		}
	}
	if block == "" {
		return nil
	}

	sec := map[string]any{}
	for _, f := range zone.Fields {
		if v, ok := firstCandidate(f.Kind, f.Candidates, block); ok {
			setPath(sec, f.Path, v)
			e.logger.Debug("regex.extract.zone_field", "section", zone.Section, "path", f.Path)
		}
	}
	return sec
}

// applyPartyFallback recovers party names from a Between/And preamble when
// the entities zone missed them.
func (e *RegexExtractor) applyPartyFallback(rec PartialRecord, text string) {
	entities, _ := rec[patterns.SectionEntities].(map[string]any)
	hasLeaf := func(party string) bool {
		p, _ := entities[party].(map[string]any)
		_, ok := p["name"]
		return ok
	}
	if entities != nil && hasLeaf("client") && hasLeaf("service_provider") {
		return
	}

	client, provider := patterns.PartyFallback(text)
	if !client.Ok() && !provider.Ok() {
		return
	}
	if entities == nil {
		entities = map[string]any{}
	}
	if !hasLeaf("client") && client.Ok() {
		if v, ok := normalize.Value(patterns.KindText, client.Value()); ok {
			setPath(entities, []string{"client", "name"}, v)
		}
	}
	if !hasLeaf("service_provider") && provider.Ok() {
		if v, ok := normalize.Value(patterns.KindText, provider.Value()); ok {
			setPath(entities, []string{"service_provider", "name"}, v)
		}
	}
	if len(entities) > 0 {
		rec[patterns.SectionEntities] = entities
	}
}

// firstCandidate tries candidates in priority order and returns the first
// non-absent, post-normalization-valid value.
func firstCandidate(kind patterns.NormalizerKind, cands []patterns.Candidate, text string) (any, bool) {
	for _, c := range cands {
		r := patterns.SearchGroup(c.Expr, text, c.Group)
		if !r.Ok() {
			continue
		}
		if v, ok := normalize.Value(kind, r.Value()); ok {
			return v, true
		}
	}
	return nil, false
}

func lineItems(text string) []map[string]string {
	rows := patterns.LineItemRows(text)
	items := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		desc := normalize.Text(row[0])
		if !desc.Ok() {
			continue
		}
		items = append(items, map[string]string{
			"description": desc.Value(),
			"quantity":    normalize.Text(row[1]).Or(""),
			"unit_price":  normalize.Currency(row[2]).Or(row[2]),
			"amount":      normalize.Currency(row[3]).Or(row[3]),
		})
	}
	return items
}

func setPath(m map[string]any, path []string, v any) {
	for i := 0; i < len(path)-1; i++ {
		child, ok := m[path[i]].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[path[i]] = child
		}
		m = child
	}
	m[path[len(path)-1]] = v
}

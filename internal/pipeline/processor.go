// Package pipeline coordinates one extraction request: the AI call and the
// pattern pass run independently over the same immutable text, their partial
// records meet in the merge resolver, and contracts pick up a generated
// summary. Requests share no state, so the processor is safe for concurrent
// use.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/common"
	"github.com/yasboop/docextract/internal/extract"
	"github.com/yasboop/docextract/internal/llm"
	"github.com/yasboop/docextract/internal/merge"
	"github.com/yasboop/docextract/internal/summary"
)

// Config holds behavior flags for the processor.
type Config struct {
	// AITimeout bounds the AI call; past it the request degrades to a
	// regex-only result instead of failing.
	AITimeout time.Duration
}

// Request is one extraction call. Text must be non-empty and DocumentType
// must name a supported type; both are checked before extraction begins.
type Request struct {
	Text         string
	DocumentType string
	ImagePath    string // optional, enables the multimodal AI path
}

type Processor struct {
	logger    *slog.Logger
	cfg       Config
	extractor llm.FieldExtractor // nil means no AI collaborator configured
	regex     *extract.RegexExtractor
	summary   *summary.Generator // nil skips contract summaries
}

func NewProcessor(cfg Config, extractor llm.FieldExtractor, regex *extract.RegexExtractor, sum *summary.Generator, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = 90 * time.Second
	}
	if regex == nil {
		regex = extract.NewRegexExtractor(logger)
	}
	return &Processor{
		logger:    logger,
		cfg:       cfg,
		extractor: extractor,
		regex:     regex,
		summary:   sum,
	}
}

type aiOutcome struct {
	record extract.PartialRecord
	method constants.ExtractionMethod
	err    error
}

// Extract runs one document through both paths and returns the canonical
// record. The only errors it returns are the two fatal preconditions; AI
// failure or timeout yields a degraded, regex-only record instead.
func (p *Processor) Extract(ctx context.Context, req Request) (extract.CanonicalRecord, error) {
	dt, ok := constants.ParseDocumentType(req.DocumentType)
	if !ok {
		return nil, common.InvalidArgumentErrorf("unsupported document_type %q", req.DocumentType)
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, common.InvalidArgumentError("document text is empty")
	}
	schema, _ := extract.SchemaFor(dt)

	rid := uuid.New().String()
	start := time.Now()
	p.logger.Info("pipeline.extract.start",
		"req_id", rid,
		"document_type", string(dt),
		"text_len", len(req.Text),
		"has_image", req.ImagePath != "",
	)

	// AI call in the background, pattern pass inline; both read the same
	// immutable input.
	aiCh := make(chan aiOutcome, 1)
	aiCtx, cancelAI := context.WithTimeout(ctx, p.cfg.AITimeout)
	defer cancelAI()
	go p.runAI(aiCtx, rid, dt, req, aiCh)

	regexRecord := p.regex.Extract(dt, req.Text)

	ai := <-aiCh
	if ai.err != nil {
		p.logger.Warn("pipeline.extract.ai_degraded",
			"req_id", rid, "error", ai.err,
			"regex_fields", len(regexRecord),
		)
		ai.record = extract.PartialRecord{}
		ai.method = constants.MethodDemo
	}

	record := merge.Resolve(schema, ai.record, regexRecord)
	record[constants.KeyDocumentType] = string(dt)
	record[constants.KeyExtractionMethod] = string(ai.method)

	if dt == constants.Contract && p.summary != nil {
		if s := p.summary.Generate(ctx, req.Text, record); s != "" {
			record[constants.KeySummary] = s
		}
	}

	p.logger.Info("pipeline.extract.ok",
		"req_id", rid,
		"document_type", string(dt),
		"method", string(ai.method),
		"fields", len(record),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return record, nil
}

func (p *Processor) runAI(ctx context.Context, rid string, dt constants.DocumentType, req Request, out chan<- aiOutcome) {
	if p.extractor == nil {
		out <- aiOutcome{record: extract.PartialRecord{}, method: constants.MethodDemo}
		return
	}
	record, method, _, err := p.extractor.ExtractFields(ctx, llm.ExtractRequest{
		Text:         req.Text,
		DocumentType: dt,
		ImagePath:    req.ImagePath,
		RequestID:    rid,
	})
	if err != nil {
		out <- aiOutcome{err: err}
		return
	}
	if record == nil {
		record = extract.PartialRecord{}
	}
	out <- aiOutcome{record: record, method: method}
}

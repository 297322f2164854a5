package mistral

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/extract"
	"github.com/yasboop/docextract/internal/llm"
)

// ExtractFields implements llm.FieldExtractor against the Mistral
// chat/completions API. When an image path is supplied and readable, the
// vision model gets both the image and the text (multimodal); otherwise the
// text model runs alone.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (extract.PartialRecord, constants.ExtractionMethod, []byte, error) {
	rid := req.RequestID
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	if c.cfg.APIKey == "" {
		return nil, constants.MethodDemo, nil, fmt.Errorf("mistral: no API key configured")
	}

	sys := llm.BuildSystemPrompt(req.DocumentType)
	user := llm.BuildUserPrompt(req.DocumentType, req.Text)

	model := c.cfg.Model
	method := constants.MethodTextOnly
	var userContent any = user
	if req.ImagePath != "" {
		if dataURL, _, err := readAsDataURL(req.ImagePath); err == nil {
			model = c.cfg.VisionModel
			method = constants.MethodMultimodal
			userContent = []map[string]any{
				{"type": "image_url", "image_url": dataURL},
				{"type": "text", "text": user},
			}
		} else {
			c.logger.Warn("llm.extract.image_unreadable", "req_id", rid, "path", req.ImagePath, "error", err)
		}
	}

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", model,
		"document_type", string(req.DocumentType),
		"text_len", len(req.Text),
		"multimodal", method == constants.MethodMultimodal,
	)

	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": userContent},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, rid, c.logger)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, method, raw, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, method, raw, fmt.Errorf("decode mistral response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices", "req_id", rid, "raw_bytes", len(raw))
		return nil, method, raw, fmt.Errorf("no choices in mistral response")
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	schema := llm.BuildDocumentJSONSchema(req.DocumentType)
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		cleaned, dropped, sErr := llm.SanitizeModelJSON(rawContent, c.logger)
		if sErr != nil {
			c.logger.Error("llm.extract.sanitize_failed", "req_id", rid, "error", sErr)
			return nil, method, rawContent, fmt.Errorf("sanitize model output: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("llm.extract.schema_validation_failed", "req_id", rid, "error", vErr)
			return nil, method, rawContent, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("llm.extract.lenient_sanitize_applied", "req_id", rid, "dropped", len(dropped))
		rawContent = cleaned
	}

	var out extract.PartialRecord
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.logger.Error("llm.extract.unmarshal_failed", "req_id", rid, "error", err)
		return nil, method, rawContent, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"fields", len(out),
		"method", string(method),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, method, rawContent, nil
}

// Summarize implements llm.Summarizer for contract synopses.
func (c *Client) Summarize(ctx context.Context, text string, record extract.CanonicalRecord) (string, error) {
	rid := uuid.New().String()
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("mistral: no API key configured")
	}

	extracted, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	doc := text
	if len(doc) > 3000 {
		doc = doc[:3000]
	}
	prompt := "Generate a clear, concise executive summary of this contract in 3-5 paragraphs. " +
		"Cover the parties and purpose, key deliverables, financial terms and schedule, the timeframe, " +
		"the main obligations of each party, and termination and renewal conditions. " +
		"Keep it objective and fact-based.\n\n" +
		"Data extracted from the contract:\n" + string(extracted) + "\n\n" +
		"Original contract text:\n" + doc

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": 0.1,
		"max_tokens":  1000,
		"messages": []map[string]any{
			{"role": "system", "content": "You are a legal expert who creates clear, professional contract summaries for business executives."},
			{"role": "user", "content": prompt},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, rid, c.logger)
	if err != nil {
		return "", err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode mistral response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in mistral response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

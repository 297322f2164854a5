package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/llm"
)

func chatResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func newTestServer(t *testing.T, handler func(body map[string]any) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(handler(body)))
	}))
}

func TestExtractFields(t *testing.T) {
	srv := newTestServer(t, func(body map[string]any) any {
		assert.Equal(t, "test-model", body["model"])
		return chatResponse(`{"invoice_number": "INV-1", "total_amount": "2500.00"}`)
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"}, nil)
	rec, method, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		Text:         "Invoice Number: INV-1",
		DocumentType: constants.Invoice,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.MethodTextOnly, method)
	assert.Equal(t, "INV-1", rec["invoice_number"])
	assert.Equal(t, "2500.00", rec["total_amount"])
}

func TestExtractFieldsSanitizesInvalidOutput(t *testing.T) {
	srv := newTestServer(t, func(map[string]any) any {
		// fenced, with a null; passes only after the lenient sanitize pass
		return chatResponse("```json\n{\"invoice_number\": \"INV-2\", \"line_items\": null}\n```")
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	rec, _, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		Text:         "anything",
		DocumentType: constants.Invoice,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2", rec["invoice_number"])
	assert.NotContains(t, rec, "line_items")
}

func TestExtractFieldsStructurallyBogusOutputFails(t *testing.T) {
	srv := newTestServer(t, func(map[string]any) any {
		return chatResponse(`{"invoice_number": {"value": "INV-3"}}`)
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		Text:         "anything",
		DocumentType: constants.Invoice,
	})
	assert.Error(t, err)
}

func TestExtractFieldsNoAPIKey(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "")
	c := NewClient(Config{BaseURL: "http://localhost:1"}, nil)
	_, method, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		Text:         "anything",
		DocumentType: constants.Invoice,
	})
	assert.Error(t, err)
	assert.Equal(t, constants.MethodDemo, method)
}

func TestExtractFieldsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		Text:         "anything",
		DocumentType: constants.Invoice,
	})
	assert.Error(t, err)
}

func TestExtractFieldsUnreadableImageFallsBackToText(t *testing.T) {
	srv := newTestServer(t, func(body map[string]any) any {
		assert.Equal(t, "text-model", body["model"], "unreadable image must not select the vision model")
		return chatResponse(`{"invoice_number": "INV-4"}`)
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "text-model", VisionModel: "vision-model"}, nil)
	_, method, _, err := c.ExtractFields(context.Background(), llm.ExtractRequest{
		Text:         "anything",
		DocumentType: constants.Invoice,
		ImagePath:    "/does/not/exist.png",
	})
	require.NoError(t, err)
	assert.Equal(t, constants.MethodTextOnly, method)
}

func TestSummarize(t *testing.T) {
	srv := newTestServer(t, func(body map[string]any) any {
		return chatResponse("An agreement between DataFlow and CloudServe.")
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	s, err := c.Summarize(context.Background(), "contract text", map[string]any{"contract_number": "CTR-1-2-3"})
	require.NoError(t, err)
	assert.Equal(t, "An agreement between DataFlow and CloudServe.", s)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{}, nil)
	require.NotNil(t, c)
	assert.Equal(t, "https://api.mistral.ai/v1", c.cfg.BaseURL)
	assert.Equal(t, "mistral-large-latest", c.cfg.Model)
	assert.NotNil(t, c.http)
}

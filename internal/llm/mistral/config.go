package mistral

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Mistral client.
type Config struct {
	APIKey      string        // if empty, falls back to env MISTRAL_API_KEY
	BaseURL     string        // default https://api.mistral.ai/v1
	Model       string        // text model, e.g. "mistral-large-latest"
	VisionModel string        // multimodal model, e.g. "pixtral-12b"
	Temperature float32       // 0..1; extraction wants 0
	MaxTokens   int           // response budget
	Timeout     time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("MISTRAL_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mistral.ai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "mistral-large-latest"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = "pixtral-12b"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Package openai provides an embedding service adapter using the OpenAI
// API. The model variant is chosen per call from the requested
// dimensionality, so one client serves any target vector length.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driven/embedding/ratelimit"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultTimeout    = 60 * time.Second
	DefaultDimensions = 768
)

// Model variants selected by requested dimensionality.
const (
	ModelSmall = "text-embedding-3-small"
	ModelLarge = "text-embedding-3-large"

	// smallModelMaxDimensions is the largest vector the small variant can
	// produce; requests above it select the large variant.
	smallModelMaxDimensions = 1536
)

// ModelForDimensions returns the model variant used for a target vector
// length: the small variant up to its 1536 maximum, the large one above.
func ModelForDimensions(dimensions int) string {
	if dimensions <= smallModelMaxDimensions {
		return ModelSmall
	}
	return ModelLarge
}

// Config holds configuration for the OpenAI embedding service.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// Dimensions is the vector length used when Embed is called without
	// an explicit one (default: 768).
	Dimensions int
}

// EmbeddingService generates embeddings using the OpenAI API.
type EmbeddingService struct {
	client     *http.Client
	limiter    *ratelimit.Limiter
	baseURL    string
	apiKey     string
	dimensions int
}

// embeddingRequest is the OpenAI API request format.
type embeddingRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions int      `json:"dimensions,omitempty"`
}

// embeddingResponse is the OpenAI API response format.
type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewEmbeddingService creates a new OpenAI embedding service.
func NewEmbeddingService(cfg Config) (*EmbeddingService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = DefaultDimensions
	}

	return &EmbeddingService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:    ratelimit.New(ratelimit.DefaultConfig),
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		dimensions: cfg.Dimensions,
	}, nil
}

// Embed generates a vector embedding at the service's default length.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	return s.EmbedWithDimensions(ctx, text, s.dimensions)
}

// EmbedWithDimensions generates a vector embedding of the requested
// length. The model variant follows the requested length, and the API
// shortens its output server-side to match, so no client-side padding is
// needed on this path.
func (s *EmbeddingService) EmbedWithDimensions(ctx context.Context, text string, dimensions int) ([]float32, error) {
	if dimensions <= 0 {
		dimensions = s.dimensions
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqBody := embeddingRequest{
		Model:      ModelForDimensions(dimensions),
		Input:      []string{text},
		Dimensions: dimensions,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/embeddings",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		s.limiter.RecordRateLimitError(retryAfterSeconds(resp))
	}

	var embedResp embeddingResponse
	if err := json.Unmarshal(body, &embedResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if embedResp.Error != nil {
		return nil, fmt.Errorf("openai error: %s", embedResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(embedResp.Data) == 0 {
		return nil, fmt.Errorf("openai: no embedding returned")
	}

	embedding := make([]float32, len(embedResp.Data[0].Embedding))
	for i, v := range embedResp.Data[0].Embedding {
		embedding[i] = float32(v)
	}
	return embedding, nil
}

// Dimensions returns the default vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the model variant for the default dimensions.
func (s *EmbeddingService) ModelName() string {
	return ModelForDimensions(s.dimensions)
}

// Ping checks the API key against the /models endpoint, which answers
// without running inference.
func (s *EmbeddingService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("openai: build ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("openai: ping returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// Close is a no-op; the HTTP client holds no persistent resources.
func (s *EmbeddingService) Close() error {
	return nil
}

// retryAfterSeconds reads the Retry-After header from a 429 response.
func retryAfterSeconds(resp *http.Response) int {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil {
		return 0
	}
	return seconds
}

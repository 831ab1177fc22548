package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"receipt-ledger/internal/config"
	"receipt-ledger/internal/dto"
	"receipt-ledger/internal/models"

	"golang.org/x/time/rate"
)

// DefaultImageMimeType is assumed for bare base64 payloads
const DefaultImageMimeType = "image/jpeg"

var (
	ErrInvalidImage     = errors.New("invalid receipt image")
	ErrEmptyVisionReply = errors.New("vision model returned no text")
	ErrVisionThrottled  = errors.New("vision request budget exhausted")
)

// ParseReceiptImage accepts bare base64 or a data URL ("data:image/png;base64,...").
// The mime type of a data URL is kept; bare payloads are treated as JPEG.
func ParseReceiptImage(payload string) (models.ReceiptImage, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return models.ReceiptImage{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}

	image := models.ReceiptImage{MimeType: DefaultImageMimeType, Data: payload}
	if strings.HasPrefix(payload, "data:") {
		header, data, found := strings.Cut(payload, ",")
		if !found {
			return models.ReceiptImage{}, fmt.Errorf("%w: malformed data URL", ErrInvalidImage)
		}
		meta := strings.TrimPrefix(header, "data:")
		if !strings.HasSuffix(meta, ";base64") {
			return models.ReceiptImage{}, fmt.Errorf("%w: data URL is not base64", ErrInvalidImage)
		}
		if mime := strings.TrimSuffix(meta, ";base64"); mime != "" {
			image.MimeType = mime
		}
		image.Data = data
	}

	if _, err := base64.StdEncoding.DecodeString(image.Data); err != nil {
		return models.ReceiptImage{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	return image, nil
}

// APIKeyTransport signs every vision request with the API key
type APIKeyTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *APIKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("x-goog-api-key", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

// VisionClient calls the generateContent endpoint of the hosted vision model
type VisionClient struct {
	config  *config.VisionConfig
	client  *http.Client
	limiter *rate.Limiter
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewVisionClient creates a new vision model client
func NewVisionClient(
	cfg *config.VisionConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) VisionClientInterface {

	transport := &APIKeyTransport{
		apiKey: cfg.APIKey,
		base:   http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &VisionClient{
		config:  cfg,
		client:  client,
		limiter: newVisionLimiter(cfg.RequestsPerMinute),
		metrics: metrics,
		logger:  logger,
	}
}

// newVisionLimiter allows bursts of ten seconds' worth of requests; nil when unlimited
func newVisionLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), max(1, requestsPerMinute/6))
}

func (c *VisionClient) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *VisionClient) do(req *http.Request) (*http.Response, []byte, error) {
	start := time.Now()
	resp, err := c.client.Do(req)
	c.metrics.RecordProcessingTime("vision.request", time.Since(start))
	if err != nil {
		c.logger.ErrorContext(req.Context(),
			"vision request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

// GenerateContent sends the prompt and image in a single user turn and returns the joined text parts.
// Calls over the per-minute budget fail fast with ErrVisionThrottled and count as a failed attempt.
func (c *VisionClient) GenerateContent(ctx context.Context, prompt string, image models.ReceiptImage) (string, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return "", ErrVisionThrottled
	}

	payload := dto.VisionGenerateRequest{
		Contents: []dto.VisionContent{{
			Role: "user",
			Parts: []dto.VisionPart{
				{Text: prompt},
				{InlineData: &dto.VisionInlineData{MimeType: image.MimeType, Data: image.Data}},
			},
		}},
		GenerationConfig: dto.VisionGenerationConfig{
			Temperature: c.config.Temperature,
			TopP:        c.config.TopP,
			TopK:        c.config.TopK,
		},
	}

	req, err := c.buildRequest(ctx, http.MethodPost, "/v1beta/models/"+c.config.Model+":generateContent", payload)
	if err != nil {
		return "", err
	}

	resp, body, err := c.do(req)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var errResp dto.VisionErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("vision api error (%d %s): %s", resp.StatusCode, errResp.Error.Status, errResp.Error.Message)
		}
		return "", fmt.Errorf("unexpected vision response (%d): %s", resp.StatusCode, truncate(string(body), 256))
	}

	var success dto.VisionGenerateResponse
	if err := json.Unmarshal(body, &success); err != nil {
		return "", fmt.Errorf("decode vision response: %w", err)
	}

	if len(success.Candidates) == 0 {
		if success.PromptFeedback != nil && success.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked (%s)", ErrEmptyVisionReply, success.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyVisionReply
	}

	var text strings.Builder
	for _, part := range success.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: finish reason %s", ErrEmptyVisionReply, success.Candidates[0].FinishReason)
	}

	return text.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

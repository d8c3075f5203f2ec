// Package backend talks to the curriculum generation service. Every call is a
// JSON POST; non-2xx answers come back as *HTTPError and payloads missing the
// fields a caller needs come back as curriculum.ErrMalformed.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/currhub/currhub/internal/curriculum"
)

// Endpoint paths on the backend.
const (
	PathGenerate  = "/generate"
	PathSyllabus  = "/generate-syllabus"
	PathResources = "/get-resources"
	PathChat      = "/chat"
)

// Config holds the client settings.
type Config struct {
	BaseURL string
	// Timeout bounds each attempt. Zero means no limit.
	Timeout time.Duration
	// RetryMax is the number of retries after the first attempt.
	RetryMax  int
	UserAgent string
	// MaxBodyBytes caps a response body. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// DefaultMaxBodyBytes is far above any curriculum the backend produces.
const DefaultMaxBodyBytes = 8 << 20

// SyllabusRequest asks for a syllabus of one course.
type SyllabusRequest struct {
	CourseName string `json:"course_name"`
	Program    string `json:"program"`
	Domain     string `json:"domain"`
}

// ResourcesRequest asks for learning resources of one course.
type ResourcesRequest struct {
	CourseName string `json:"course_name"`
	Domain     string `json:"domain"`
}

type chatRequest struct {
	Message string `json:"message"`
}

// Client is a backend client. It is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *retryablehttp.Client
	maxBody   int64
	logger    *zap.Logger
}

// New creates a Client.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = leveledLogger{logger.Sugar()}
	// Hand the final response back so non-2xx bodies reach HTTPError.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = "currhub"
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: ua,
		http:      rc,
		maxBody:   maxBody,
		logger:    logger,
	}, nil
}

// Generate requests a curriculum for the submitted form.
func (c *Client) Generate(ctx context.Context, req curriculum.GenerateRequest) (*curriculum.Document, error) {
	body, err := c.post(ctx, PathGenerate, req)
	if err != nil {
		return nil, err
	}
	return curriculum.Parse(body)
}

// Syllabus requests the syllabus text of one course.
func (c *Client) Syllabus(ctx context.Context, req SyllabusRequest) (string, error) {
	body, err := c.post(ctx, PathSyllabus, req)
	if err != nil {
		return "", err
	}
	return stringField(body, "syllabus")
}

// Resources requests the resource bundle of one course. A bundle carrying an
// error field is returned without error.
func (c *Client) Resources(ctx context.Context, req ResourcesRequest) (*curriculum.ResourceBundle, error) {
	body, err := c.post(ctx, PathResources, req)
	if err != nil {
		return nil, err
	}
	return curriculum.ParseResources(body)
}

// Chat sends one message to the assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	body, err := c.post(ctx, PathChat, chatRequest{Message: message})
	if err != nil {
		return "", err
	}
	return stringField(body, "response")
}

// Reply implements chat.Responder.
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	return c.Chat(ctx, message)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", path, err)
	}

	url := c.baseURL + path
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("reading %s response: %w: %w", path, ErrBodyTooLarge, curriculum.ErrMalformed)
	}

	c.logger.Debug("backend call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Method:     http.MethodPost,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}
	return body, nil
}

func stringField(body []byte, field string) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: invalid JSON", curriculum.ErrMalformed)
	}
	v := gjson.GetBytes(body, field)
	if v.Type != gjson.String {
		return "", fmt.Errorf("%w: missing %q", curriculum.ErrMalformed, field)
	}
	return v.String(), nil
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger.
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...any)  { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }

package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"google.golang.org/genai"
)

// JSONGenerator produces a JSON document constrained by a response schema.
// This interface is implemented by *Client and can be replaced in tests.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *openapi3.Schema) (string, error)
}

// Ensure Client implements JSONGenerator at compile time.
var _ JSONGenerator = (*Client)(nil)

const (
	DefaultModel     = "gemini-3-flash-preview"
	defaultUserAgent = "exhibit/0.1"
	jsonMIMEType     = "application/json"
)

// Options configures a Client.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client talks to the Gemini generative-language API.
//
// The underlying SDK client is built on first use so that a missing key only
// surfaces when a request is actually made.
type Client struct {
	opts Options

	mu    sync.Mutex
	inner *genai.Client
}

// NewClient builds a Client from opts, filling in the default model and
// user agent.
func NewClient(opts Options) (*Client, error) {
	opts.APIKey = strings.TrimSpace(opts.APIKey)
	opts.Model = strings.TrimSpace(opts.Model)
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if strings.TrimSpace(opts.UserAgent) == "" {
		opts.UserAgent = defaultUserAgent
	}
	base := strings.TrimSpace(opts.BaseURL)
	if base != "" {
		if !strings.Contains(base, "://") {
			return nil, fmt.Errorf("parse base_url %q: missing scheme", opts.BaseURL)
		}
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
	}
	opts.BaseURL = base
	return &Client{opts: opts}, nil
}

// Model reports the model name requests are sent to.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.opts.Model
}

// GenerateJSON sends prompt with a structured-output schema and returns the
// raw response text. The text is not parsed or validated here.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *openapi3.Schema) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	inner, err := c.sdk(ctx)
	if err != nil {
		return "", err
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		ResponseSchema:   ConvertSchema(schema),
	}
	resp, err := inner.Models.GenerateContent(ctx, c.opts.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", translateError(err))
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}

func (c *Client) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inner != nil {
		return c.inner, nil
	}
	headers := http.Header{}
	headers.Set("User-Agent", c.opts.UserAgent)
	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     c.opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.opts.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: c.opts.BaseURL,
			Headers: headers,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.inner = inner
	return inner, nil
}

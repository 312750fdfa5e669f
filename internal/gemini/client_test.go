package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

func testSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithRequired([]string{"name"})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{APIKey: "test-key", BaseURL: server.URL, UserAgent: "exhibit-test"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func writeCandidate(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	})
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Options{APIKey: " key "})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.Model() != DefaultModel {
		t.Fatalf("Model = %q, want %q", c.Model(), DefaultModel)
	}
	if c.opts.UserAgent != defaultUserAgent {
		t.Fatalf("UserAgent = %q, want %q", c.opts.UserAgent, defaultUserAgent)
	}
	if c.opts.APIKey != "key" {
		t.Fatalf("APIKey = %q, want trimmed key", c.opts.APIKey)
	}
}

func TestNewClient_RejectsBaseURLWithoutScheme(t *testing.T) {
	if _, err := NewClient(Options{BaseURL: "localhost:9999"}); err == nil {
		t.Fatalf("NewClient returned nil error, want base_url error")
	}
}

func TestClient_GenerateJSONSendsSchemaAndReturnsText(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotAgents []string
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgents = r.Header.Values("User-Agent")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeCandidate(w, `{"name":"ok"}`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	text, err := c.GenerateJSON(ctx, "hello", testSchema())
	if err != nil {
		t.Fatalf("GenerateJSON returned error: %v", err)
	}
	if text != `{"name":"ok"}` {
		t.Fatalf("text = %q, want %q", text, `{"name":"ok"}`)
	}
	if !strings.HasSuffix(gotPath, "models/"+DefaultModel+":generateContent") {
		t.Fatalf("path = %q, want generateContent for %s", gotPath, DefaultModel)
	}
	if !slices.ContainsFunc(gotAgents, func(v string) bool { return strings.Contains(v, "exhibit-test") }) {
		t.Fatalf("User-Agent = %v, want it to include exhibit-test", gotAgents)
	}

	genConfig, _ := gotBody["generationConfig"].(map[string]any)
	if genConfig == nil {
		t.Fatalf("request body missing generationConfig: %#v", gotBody)
	}
	if genConfig["responseMimeType"] != jsonMIMEType {
		t.Fatalf("responseMimeType = %v, want %s", genConfig["responseMimeType"], jsonMIMEType)
	}
	schema, _ := genConfig["responseSchema"].(map[string]any)
	if schema == nil || schema["type"] != "OBJECT" {
		t.Fatalf("responseSchema = %#v, want OBJECT schema", genConfig["responseSchema"])
	}
}

func TestClient_GenerateJSONMapsPermissionDenied(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := c.GenerateJSON(context.Background(), "hello", testSchema())
	if err == nil {
		t.Fatalf("GenerateJSON returned nil error, want permission error")
	}
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("errors.Is(err, ErrPermissionDenied) = false for %v", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %T does not wrap *StatusError", err)
	}
	if statusErr.Code != http.StatusForbidden || statusErr.Message != "API key not valid" {
		t.Fatalf("StatusError = %#v, want 403 with API message", statusErr)
	}
}

func TestClient_GenerateJSONServerErrorIsNotPermission(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
	})

	_, err := c.GenerateJSON(context.Background(), "hello", testSchema())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("500 reported as permission denied")
	}
	if statusErr.Message != "internal" {
		t.Fatalf("Message = %q, want %q", statusErr.Message, "internal")
	}
}

func TestClient_GenerateJSONEmptyCandidates(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := c.GenerateJSON(context.Background(), "hello", testSchema())
	if err != nil {
		t.Fatalf("GenerateJSON returned error: %v", err)
	}
	if text != "" {
		t.Fatalf("text = %q, want empty", text)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.GenerateJSON(context.Background(), "x", nil); err == nil {
		t.Fatalf("GenerateJSON on nil client returned nil error")
	}
}

func TestStatusError_UnwrapByCode(t *testing.T) {
	tests := []struct {
		name string
		err  *StatusError
		want bool
	}{
		{name: "unauthorized", err: &StatusError{Code: 401}, want: true},
		{name: "forbidden", err: &StatusError{Code: 403}, want: true},
		{name: "status text", err: &StatusError{Code: 400, Status: "permission_denied"}, want: true},
		{name: "quota", err: &StatusError{Code: 429, Status: "RESOURCE_EXHAUSTED"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, ErrPermissionDenied); got != tt.want {
				t.Fatalf("errors.Is = %v, want %v", got, tt.want)
			}
		})
	}
}

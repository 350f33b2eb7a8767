package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// TestContext holds state between the steps of one scenario.
type TestContext struct {
	BaseURL          string
	HTTPClient       *http.Client
	LastResponse     *http.Response
	LastResponseBody []byte
	AccessToken      string
	ids              map[string]string
}

func NewTestContext() *TestContext {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &TestContext{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		ids:        make(map[string]string),
	}
}

// Reset clears everything a previous scenario left behind.
func (tc *TestContext) Reset() {
	tc.LastResponse = nil
	tc.LastResponseBody = nil
	tc.AccessToken = ""
	tc.ids = make(map[string]string)
}

func (tc *TestContext) Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Do sends body as JSON (nil sends no body) with the saved access token and
// records the response.
func (tc *TestContext) Do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return tc.send(method, path, reader, tc.AccessToken)
}

// DoRaw sends a literal JSON document.
func (tc *TestContext) DoRaw(method, path, body string) error {
	return tc.send(method, path, strings.NewReader(body), tc.AccessToken)
}

// GET sends an unauthenticated request.
func (tc *TestContext) GET(path string) error {
	return tc.send(http.MethodGet, path, nil, "")
}

func (tc *TestContext) send(method, path string, body io.Reader, token string) error {
	req, err := http.NewRequestWithContext(context.Background(), method, tc.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	tc.LastResponse = resp
	tc.LastResponseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// GetResponseField extracts a top-level field from the JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var data map[string]any
	if err := json.Unmarshal(tc.LastResponseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	value, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field %s not found in response", field)
	}
	return value, nil
}

func (tc *TestContext) ResponseContains(text string) bool {
	return strings.Contains(string(tc.LastResponseBody), text)
}

func (tc *TestContext) GetLastResponseStatus() int {
	if tc.LastResponse == nil {
		return 0
	}
	return tc.LastResponse.StatusCode
}

func (tc *TestContext) GetLastResponseBody() []byte { return tc.LastResponseBody }

func (tc *TestContext) SetAccessToken(token string) { tc.AccessToken = token }

func (tc *TestContext) GetAccessToken() string { return tc.AccessToken }

// SaveID remembers the "id" of the last response under alias.
func (tc *TestContext) SaveID(alias string) error {
	v, err := tc.GetResponseField("id")
	if err != nil {
		return fmt.Errorf("save %s: %w\nResponse: %s", alias, err, string(tc.LastResponseBody))
	}
	tc.ids[alias] = fmt.Sprint(v)
	return nil
}

func (tc *TestContext) ID(alias string) (string, error) {
	v, ok := tc.ids[alias]
	if !ok {
		return "", fmt.Errorf("nothing saved as %q", alias)
	}
	return v, nil
}

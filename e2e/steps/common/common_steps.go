package common

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext is the part of the scenario state the common steps need.
type TestContext interface {
	GET(path string) error
	Do(method, path string, body any) error
	ResponseContains(text string) bool
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
}

// RegisterSteps registers step definitions shared by every feature.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^the Aquaria API is running$`, steps.apiIsRunning)
	ctx.Step(`^I GET "([^"]*)" without authorization$`, steps.getWithoutAuth)
	ctx.Step(`^I GET "([^"]*)"$`, steps.get)
	ctx.Step(`^the response status should be (\d+)$`, steps.responseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, steps.responseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, steps.responseFieldShouldEqual)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) apiIsRunning(_ context.Context) error {
	if err := s.tc.GET("/health/live"); err != nil {
		return err
	}
	return s.responseStatusShouldBe(context.Background(), http.StatusOK)
}

func (s *commonSteps) getWithoutAuth(_ context.Context, path string) error {
	return s.tc.GET(path)
}

func (s *commonSteps) get(_ context.Context, path string) error {
	return s.tc.Do(http.MethodGet, path, nil)
}

func (s *commonSteps) responseStatusShouldBe(_ context.Context, expected int) error {
	if actual := s.tc.GetLastResponseStatus(); actual != expected {
		return fmt.Errorf("expected status %d but got %d\nResponse: %s", expected, actual, string(s.tc.GetLastResponseBody()))
	}
	return nil
}

func (s *commonSteps) responseShouldContain(_ context.Context, text string) error {
	if !s.tc.ResponseContains(text) {
		return fmt.Errorf("response does not contain %q\nResponse: %s", text, string(s.tc.GetLastResponseBody()))
	}
	return nil
}

// responseFieldShouldEqual accepts dotted paths such as "owner.email".
func (s *commonSteps) responseFieldShouldEqual(_ context.Context, field, expected string) error {
	var data any
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), &data); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	for _, part := range strings.Split(field, ".") {
		obj, ok := data.(map[string]any)
		if !ok {
			return fmt.Errorf("field %s not found in response", field)
		}
		if data, ok = obj[part]; !ok {
			return fmt.Errorf("field %s not found in response", field)
		}
	}
	if fmt.Sprint(data) != expected {
		return fmt.Errorf("field %s: expected %s but got %v", field, expected, data)
	}
	return nil
}

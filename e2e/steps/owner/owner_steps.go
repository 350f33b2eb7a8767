package owner

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

const password = "correct horse battery"

// TestContext is the part of the scenario state the owner steps need.
type TestContext interface {
	Do(method, path string, body any) error
	GetResponseField(field string) (any, error)
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	SetAccessToken(token string)
}

// RegisterSteps registers registration, login, and logout steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &ownerSteps{tc: tc, emails: make(map[string]string)}

	ctx.Step(`^I am a registered owner "([^"]*)"$`, steps.registeredOwner)
	ctx.Step(`^I register as "([^"]*)"$`, steps.register)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, steps.loginWithPassword)
	ctx.Step(`^I log in as "([^"]*)"$`, steps.login)
	ctx.Step(`^I log out$`, steps.logout)
}

type ownerSteps struct {
	tc     TestContext
	emails map[string]string
}

// email keeps scenarios repeatable against a long-running server.
func (s *ownerSteps) email(name string) string {
	if e, ok := s.emails[name]; ok {
		return e
	}
	e := fmt.Sprintf("%s+%s@example.com", strings.ToLower(name), uuid.NewString()[:8])
	s.emails[name] = e
	return e
}

func (s *ownerSteps) register(_ context.Context, name string) error {
	return s.tc.Do(http.MethodPost, "/api/auth/register", map[string]any{
		"first_name": name,
		"last_name":  "Tester",
		"email":      s.email(name),
		"password":   password,
	})
}

func (s *ownerSteps) registeredOwner(ctx context.Context, name string) error {
	s.tc.SetAccessToken("")
	if err := s.register(ctx, name); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != http.StatusCreated {
		return fmt.Errorf("register %s: status %d\nResponse: %s", name, status, string(s.tc.GetLastResponseBody()))
	}
	if err := s.login(ctx, name); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != http.StatusOK {
		return fmt.Errorf("login %s: status %d\nResponse: %s", name, status, string(s.tc.GetLastResponseBody()))
	}
	return nil
}

func (s *ownerSteps) login(ctx context.Context, name string) error {
	return s.loginWithPassword(ctx, name, password)
}

func (s *ownerSteps) loginWithPassword(_ context.Context, name, pw string) error {
	s.tc.SetAccessToken("")
	if err := s.tc.Do(http.MethodPost, "/api/auth/login", map[string]any{
		"email":    s.email(name),
		"password": pw,
	}); err != nil {
		return err
	}
	if s.tc.GetLastResponseStatus() != http.StatusOK {
		return nil
	}
	token, err := s.tc.GetResponseField("access_token")
	if err != nil {
		return err
	}
	s.tc.SetAccessToken(fmt.Sprint(token))
	return nil
}

// logout keeps the revoked token so later steps can prove it no longer works.
func (s *ownerSteps) logout(_ context.Context) error {
	return s.tc.Do(http.MethodPost, "/api/auth/logout", nil)
}

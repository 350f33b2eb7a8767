package aquarium

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext is the part of the scenario state the aquarium steps need.
type TestContext interface {
	Do(method, path string, body any) error
	DoRaw(method, path, body string) error
	GetLastResponseStatus() int
	GetLastResponseBody() []byte
	SaveID(alias string) error
	ID(alias string) (string, error)
}

// RegisterSteps registers steps for aquariums and the items kept in them.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &aquariumSteps{tc: tc}

	ctx.Step(`^I create an aquarium "([^"]*)" with:$`, steps.createAquarium)
	ctx.Step(`^I create an? (inhabitant|accessory|ornament) "([^"]*)" with:$`, steps.createItem)
	ctx.Step(`^I (add|remove) inhabitant "([^"]*)" (?:to|from) aquarium "([^"]*)"$`, steps.membership)
	ctx.Step(`^I (attach|detach) (accessory|ornament) "([^"]*)" (?:to|from) aquarium "([^"]*)"$`, steps.attachment)
	ctx.Step(`^I move aquarium "([^"]*)" to state "([^"]*)"$`, steps.transition)
	ctx.Step(`^I (activate|deactivate) aquarium "([^"]*)"$`, steps.shortcut)
	ctx.Step(`^I transfer (inhabitant|accessory|ornament) "([^"]*)" from aquarium "([^"]*)" to aquarium "([^"]*)"$`, steps.transfer)
	ctx.Step(`^I fetch aquarium "([^"]*)"$`, steps.fetchAquarium)
	ctx.Step(`^I fetch the state history of aquarium "([^"]*)"$`, steps.fetchHistory)
}

type aquariumSteps struct {
	tc TestContext
}

var collections = map[string]string{
	"inhabitant": "inhabitants",
	"accessory":  "accessories",
	"ornament":   "ornaments",
}

func (s *aquariumSteps) create(path, alias string, doc *godog.DocString) error {
	if err := s.tc.DoRaw(http.MethodPost, path, doc.Content); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != http.StatusCreated {
		return fmt.Errorf("create %s: status %d\nResponse: %s", alias, status, string(s.tc.GetLastResponseBody()))
	}
	return s.tc.SaveID(alias)
}

func (s *aquariumSteps) createAquarium(_ context.Context, alias string, doc *godog.DocString) error {
	return s.create("/api/aquariums", alias, doc)
}

func (s *aquariumSteps) createItem(_ context.Context, kind, alias string, doc *godog.DocString) error {
	return s.create("/api/"+collections[kind], alias, doc)
}

func (s *aquariumSteps) ids(aliases ...string) ([]string, error) {
	out := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		v, err := s.tc.ID(alias)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *aquariumSteps) membership(_ context.Context, action, item, aquarium string) error {
	ids, err := s.ids(aquarium, item)
	if err != nil {
		return err
	}
	method := http.MethodPost
	if action == "remove" {
		method = http.MethodDelete
	}
	return s.tc.Do(method, "/api/aquariums/"+ids[0]+"/inhabitants/"+ids[1], nil)
}

func (s *aquariumSteps) attachment(_ context.Context, action, kind, item, aquarium string) error {
	ids, err := s.ids(aquarium, item)
	if err != nil {
		return err
	}
	method := http.MethodPost
	if action == "detach" {
		method = http.MethodDelete
	}
	return s.tc.Do(method, "/api/aquariums/"+ids[0]+"/"+collections[kind]+"/"+ids[1], nil)
}

func (s *aquariumSteps) transition(_ context.Context, aquarium, state string) error {
	ids, err := s.ids(aquarium)
	if err != nil {
		return err
	}
	return s.tc.Do(http.MethodPost, "/api/aquariums/"+ids[0]+"/state", map[string]string{"state": state})
}

func (s *aquariumSteps) shortcut(_ context.Context, action, aquarium string) error {
	ids, err := s.ids(aquarium)
	if err != nil {
		return err
	}
	return s.tc.Do(http.MethodPost, "/api/aquariums/"+ids[0]+"/"+action, nil)
}

func (s *aquariumSteps) transfer(_ context.Context, kind, item, source, target string) error {
	ids, err := s.ids(source, item, target)
	if err != nil {
		return err
	}
	return s.tc.Do(http.MethodPost, "/api/aquariums/"+ids[0]+"/transfer/"+kind+"/"+ids[1],
		map[string]string{"target_aquarium_id": ids[2]})
}

func (s *aquariumSteps) fetchAquarium(_ context.Context, aquarium string) error {
	ids, err := s.ids(aquarium)
	if err != nil {
		return err
	}
	return s.tc.Do(http.MethodGet, "/api/aquariums/"+ids[0], nil)
}

func (s *aquariumSteps) fetchHistory(_ context.Context, aquarium string) error {
	ids, err := s.ids(aquarium)
	if err != nil {
		return err
	}
	return s.tc.Do(http.MethodGet, "/api/aquariums/"+ids[0]+"/history", nil)
}

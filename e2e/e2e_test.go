//go:build e2e

// Feature tests run against a live server:
//
//	BASE_URL=http://localhost:8080 go test -tags e2e ./e2e -godog.tags=~@wip
package e2e

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
)

var godogOpts = godog.Options{
	Output: colors.Colored(os.Stdout),
	Format: "pretty",
	Paths:  []string{"features"},
	Strict: true,
}

func TestMain(m *testing.M) {
	godog.BindCommandLineFlags("godog.", &godogOpts)
	flag.Parse()
	os.Exit(m.Run())
}

func TestFeatures(t *testing.T) {
	godogOpts.TestingT = t
	status := godog.TestSuite{
		Name:                "aquaria",
		ScenarioInitializer: initializeScenario,
		Options:             &godogOpts,
	}.Run()
	if status != 0 {
		t.Fatalf("feature suite exited with status %d", status)
	}
}

func initializeScenario(sc *godog.ScenarioContext) {
	tc := NewTestContext()

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.Reset()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, scenario *godog.Scenario, err error) (context.Context, error) {
		if err != nil {
			tc.Logf("scenario %q failed; last response: %s", scenario.Name, tc.LastResponseBody)
		}
		return ctx, nil
	})

	RegisterSteps(sc, tc)
}

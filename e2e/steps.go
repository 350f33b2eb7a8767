package e2e

import (
	"github.com/cucumber/godog"

	"aquaria/e2e/steps/aquarium"
	"aquaria/e2e/steps/common"
	"aquaria/e2e/steps/owner"
)

// RegisterSteps registers all step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	owner.RegisterSteps(ctx, tc)
	aquarium.RegisterSteps(ctx, tc)
}

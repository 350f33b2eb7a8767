package models

import "aquaria/pkg/validation"

type WaterType string

const (
	WaterTypeFreshwater WaterType = "FRESHWATER"
	WaterTypeSaltwater  WaterType = "SALTWATER"
)

// ParseWaterType accepts any casing of a known water type.
func ParseWaterType(s string) (WaterType, error) {
	return validation.OneOf("Water type", s, WaterTypeFreshwater, WaterTypeSaltwater)
}

type Substrate string

const (
	SubstrateSand   Substrate = "SAND"
	SubstrateGravel Substrate = "GRAVEL"
	SubstrateSoil   Substrate = "SOIL"
)

func ParseSubstrate(s string) (Substrate, error) {
	return validation.OneOf("Substrate", s, SubstrateSand, SubstrateGravel, SubstrateSoil)
}

type State string

const (
	StateSetup       State = "SETUP"
	StateRunning     State = "RUNNING"
	StateMaintenance State = "MAINTENANCE"
	StateInactive    State = "INACTIVE"
)

func ParseState(s string) (State, error) {
	return validation.OneOf("State", s, StateSetup, StateRunning, StateMaintenance, StateInactive)
}

func (s State) String() string { return string(s) }

// Defaults applied by the creation path.
const (
	DefaultTemperature        = 24.0
	DefaultFilterCapacity     = 100
	DefaultMinTemperature     = 20.0
	DefaultMaxTemperature     = 30.0
	DefaultCurrentTemperature = 25.0

	// MaxWaterTemperature bounds aquarium and thermostat readings in °C.
	MaxWaterTemperature = 40.0

	// LitersPerInhabitant drives RecommendedInhabitantCapacity.
	LitersPerInhabitant = 10.0
)

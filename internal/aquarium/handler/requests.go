package handler

import (
	"strings"

	"aquaria/internal/aquarium/models"
	"aquaria/internal/aquarium/service"
	"aquaria/pkg/validation"
)

type CreateAquariumRequest struct {
	Name        string   `json:"name" validate:"required,notblank,max=50"`
	Length      float64  `json:"length" validate:"gt=0"`
	Width       float64  `json:"width" validate:"gt=0"`
	Height      float64  `json:"height" validate:"gt=0"`
	Substrate   string   `json:"substrate" validate:"required"`
	WaterType   string   `json:"water_type" validate:"required"`
	Temperature *float64 `json:"temperature"`
	State       string   `json:"state"`
	Color       string   `json:"color" validate:"max=50"`
	Description string   `json:"description" validate:"max=500"`
}

func (r *CreateAquariumRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Substrate = strings.ToUpper(strings.TrimSpace(r.Substrate))
	r.WaterType = strings.ToUpper(strings.TrimSpace(r.WaterType))
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
	r.Color = strings.TrimSpace(r.Color)
}

func (r *CreateAquariumRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreateAquariumRequest) command() service.CreateAquariumCommand {
	return service.CreateAquariumCommand{
		Name:        r.Name,
		Length:      r.Length,
		Width:       r.Width,
		Height:      r.Height,
		Substrate:   r.Substrate,
		WaterType:   r.WaterType,
		Temperature: r.Temperature,
		State:       r.State,
		Color:       r.Color,
		Description: r.Description,
	}
}

type UpdateAquariumRequest struct {
	Name        *string  `json:"name" validate:"omitnil,notblank,max=50"`
	Length      *float64 `json:"length" validate:"omitnil,gt=0"`
	Width       *float64 `json:"width" validate:"omitnil,gt=0"`
	Height      *float64 `json:"height" validate:"omitnil,gt=0"`
	Substrate   *string  `json:"substrate"`
	WaterType   *string  `json:"water_type"`
	Temperature *float64 `json:"temperature"`
	Color       *string  `json:"color" validate:"omitnil,max=50"`
	Description *string  `json:"description" validate:"omitnil,max=500"`
}

func (r *UpdateAquariumRequest) Validate() error {
	return validation.Validate(r)
}

func (r *UpdateAquariumRequest) update() models.AquariumUpdate {
	u := models.AquariumUpdate{
		Name:        r.Name,
		Length:      r.Length,
		Width:       r.Width,
		Height:      r.Height,
		Temperature: r.Temperature,
		Color:       r.Color,
		Description: r.Description,
	}
	if r.Substrate != nil {
		s := models.Substrate(*r.Substrate)
		u.Substrate = &s
	}
	if r.WaterType != nil {
		w := models.WaterType(*r.WaterType)
		u.WaterType = &w
	}
	return u
}

type StateRequest struct {
	State string `json:"state" validate:"required,notblank"`
}

func (r *StateRequest) Normalize() {
	r.State = strings.ToUpper(strings.TrimSpace(r.State))
}

func (r *StateRequest) Validate() error {
	return validation.Validate(r)
}

type TransferRequest struct {
	TargetAquariumID string `json:"target_aquarium_id" validate:"required,uuid"`
}

func (r *TransferRequest) Normalize() {
	r.TargetAquariumID = strings.TrimSpace(r.TargetAquariumID)
}

func (r *TransferRequest) Validate() error {
	return validation.Validate(r)
}

type CreateInhabitantRequest struct {
	Kind                string `json:"kind" validate:"required,notblank"`
	Species             string `json:"species" validate:"required,notblank,max=100"`
	Name                string `json:"name" validate:"max=50"`
	Color               string `json:"color" validate:"max=50"`
	Count               int    `json:"count" validate:"gt=0"`
	Schooling           bool   `json:"schooling"`
	WaterType           string `json:"water_type" validate:"required"`
	AggressiveEater     bool   `json:"aggressive_eater"`
	RequiresSpecialFood bool   `json:"requires_special_food"`
	SnailEater          bool   `json:"snail_eater"`
	Description         string `json:"description" validate:"max=500"`
}

func (r *CreateInhabitantRequest) Normalize() {
	r.Kind = strings.TrimSpace(r.Kind)
	r.Species = strings.TrimSpace(r.Species)
	r.Name = strings.TrimSpace(r.Name)
	r.WaterType = strings.ToUpper(strings.TrimSpace(r.WaterType))
}

func (r *CreateInhabitantRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreateInhabitantRequest) command() service.CreateInhabitantCommand {
	return service.CreateInhabitantCommand{
		Kind:                r.Kind,
		Species:             r.Species,
		Name:                r.Name,
		Color:               r.Color,
		Count:               r.Count,
		Schooling:           r.Schooling,
		WaterType:           r.WaterType,
		AggressiveEater:     r.AggressiveEater,
		RequiresSpecialFood: r.RequiresSpecialFood,
		SnailEater:          r.SnailEater,
		Description:         r.Description,
	}
}

type UpdateInhabitantRequest struct {
	Species             *string `json:"species" validate:"omitnil,notblank,max=100"`
	Name                *string `json:"name" validate:"omitnil,max=50"`
	Color               *string `json:"color" validate:"omitnil,max=50"`
	Count               *int    `json:"count" validate:"omitnil,gt=0"`
	Schooling           *bool   `json:"schooling"`
	WaterType           *string `json:"water_type"`
	AggressiveEater     *bool   `json:"aggressive_eater"`
	RequiresSpecialFood *bool   `json:"requires_special_food"`
	SnailEater          *bool   `json:"snail_eater"`
	Description         *string `json:"description" validate:"omitnil,max=500"`
}

func (r *UpdateInhabitantRequest) Validate() error {
	return validation.Validate(r)
}

// update merges trait flags onto current so unspecified flags keep their value.
func (r *UpdateInhabitantRequest) update(current models.Traits) models.InhabitantUpdate {
	u := models.InhabitantUpdate{
		Species:     r.Species,
		Name:        r.Name,
		Color:       r.Color,
		Count:       r.Count,
		Schooling:   r.Schooling,
		Description: r.Description,
	}
	if r.WaterType != nil {
		w := models.WaterType(*r.WaterType)
		u.WaterType = &w
	}
	if r.AggressiveEater != nil || r.RequiresSpecialFood != nil || r.SnailEater != nil {
		t := current
		if r.AggressiveEater != nil {
			t.AggressiveEater = *r.AggressiveEater
		}
		if r.RequiresSpecialFood != nil {
			t.RequiresSpecialFood = *r.RequiresSpecialFood
		}
		if r.SnailEater != nil {
			t.SnailEater = *r.SnailEater
		}
		u.Traits = &t
	}
	return u
}

type CreateAccessoryRequest struct {
	Kind         string `json:"kind" validate:"required,notblank"`
	Model        string `json:"model" validate:"required,notblank,max=50"`
	SerialNumber string `json:"serial_number" validate:"required,notblank,max=50"`
	Color        string `json:"color" validate:"max=50"`
	Description  string `json:"description" validate:"max=500"`

	External       bool `json:"external"`
	CapacityLiters int  `json:"capacity_liters" validate:"gte=0"`

	LED         bool   `json:"led"`
	TurnOnTime  string `json:"turn_on_time"`
	TurnOffTime string `json:"turn_off_time"`

	MinTemperature     *float64 `json:"min_temperature"`
	MaxTemperature     *float64 `json:"max_temperature"`
	CurrentTemperature *float64 `json:"current_temperature"`
}

func (r *CreateAccessoryRequest) Normalize() {
	r.Kind = strings.TrimSpace(r.Kind)
	r.Model = strings.TrimSpace(r.Model)
	r.SerialNumber = strings.TrimSpace(r.SerialNumber)
	r.TurnOnTime = strings.TrimSpace(r.TurnOnTime)
	r.TurnOffTime = strings.TrimSpace(r.TurnOffTime)
}

func (r *CreateAccessoryRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreateAccessoryRequest) command() service.CreateAccessoryCommand {
	return service.CreateAccessoryCommand{
		Kind:               r.Kind,
		Model:              r.Model,
		SerialNumber:       r.SerialNumber,
		Color:              r.Color,
		Description:        r.Description,
		External:           r.External,
		CapacityLiters:     r.CapacityLiters,
		LED:                r.LED,
		TurnOnTime:         r.TurnOnTime,
		TurnOffTime:        r.TurnOffTime,
		MinTemperature:     r.MinTemperature,
		MaxTemperature:     r.MaxTemperature,
		CurrentTemperature: r.CurrentTemperature,
	}
}

type UpdateAccessoryRequest struct {
	Model        *string `json:"model" validate:"omitnil,notblank,max=50"`
	SerialNumber *string `json:"serial_number" validate:"omitnil,notblank,max=50"`
	Color        *string `json:"color" validate:"omitnil,max=50"`
	Description  *string `json:"description" validate:"omitnil,max=500"`

	External       *bool `json:"external"`
	CapacityLiters *int  `json:"capacity_liters"`

	LED         *bool   `json:"led"`
	TurnOnTime  *string `json:"turn_on_time"`
	TurnOffTime *string `json:"turn_off_time"`

	MinTemperature     *float64 `json:"min_temperature"`
	MaxTemperature     *float64 `json:"max_temperature"`
	CurrentTemperature *float64 `json:"current_temperature"`
}

func (r *UpdateAccessoryRequest) Validate() error {
	return validation.Validate(r)
}

func (r *UpdateAccessoryRequest) update() models.AccessoryUpdate {
	return models.AccessoryUpdate{
		Model:              r.Model,
		SerialNumber:       r.SerialNumber,
		Color:              r.Color,
		Description:        r.Description,
		External:           r.External,
		CapacityLiters:     r.CapacityLiters,
		LED:                r.LED,
		TurnOnTime:         r.TurnOnTime,
		TurnOffTime:        r.TurnOffTime,
		MinTemperature:     r.MinTemperature,
		MaxTemperature:     r.MaxTemperature,
		CurrentTemperature: r.CurrentTemperature,
	}
}

type CreateOrnamentRequest struct {
	Name              string `json:"name" validate:"required,notblank,max=50"`
	Description       string `json:"description" validate:"max=500"`
	Color             string `json:"color" validate:"required,notblank,max=50"`
	Material          string `json:"material" validate:"max=50"`
	AirPumpCompatible bool   `json:"air_pump_compatible"`
}

func (r *CreateOrnamentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Color = strings.TrimSpace(r.Color)
	r.Material = strings.TrimSpace(r.Material)
}

func (r *CreateOrnamentRequest) Validate() error {
	return validation.Validate(r)
}

func (r *CreateOrnamentRequest) command() service.CreateOrnamentCommand {
	return service.CreateOrnamentCommand{
		Name:              r.Name,
		Description:       r.Description,
		Color:             r.Color,
		Material:          r.Material,
		AirPumpCompatible: r.AirPumpCompatible,
	}
}

type UpdateOrnamentRequest struct {
	Name              *string `json:"name" validate:"omitnil,notblank,max=50"`
	Description       *string `json:"description" validate:"omitnil,max=500"`
	Color             *string `json:"color" validate:"omitnil,notblank,max=50"`
	Material          *string `json:"material" validate:"omitnil,max=50"`
	AirPumpCompatible *bool   `json:"air_pump_compatible"`
}

func (r *UpdateOrnamentRequest) Validate() error {
	return validation.Validate(r)
}

func (r *UpdateOrnamentRequest) update() models.OrnamentUpdate {
	return models.OrnamentUpdate{
		Name:              r.Name,
		Description:       r.Description,
		Color:             r.Color,
		Material:          r.Material,
		AirPumpCompatible: r.AirPumpCompatible,
	}
}

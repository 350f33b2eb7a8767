package models

import (
	"fmt"
	"strings"
	"time"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/validation"
)

type AccessoryKind string

const (
	KindFilter     AccessoryKind = "FILTER"
	KindLighting   AccessoryKind = "LIGHTING"
	KindThermostat AccessoryKind = "THERMOSTAT"
)

// accessoryKindAliases maps the accepted spellings onto kinds.
var accessoryKindAliases = map[string]AccessoryKind{
	"filter":     KindFilter,
	"light":      KindLighting,
	"lighting":   KindLighting,
	"heater":     KindThermostat,
	"thermostat": KindThermostat,
}

// ParseAccessoryKind accepts any casing of a known kind or alias.
func ParseAccessoryKind(s string) (AccessoryKind, error) {
	if k, ok := accessoryKindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "Unsupported accessory type: "+s)
}

type ThermostatStatus string

const (
	ThermostatTooCold ThermostatStatus = "TOO_COLD"
	ThermostatTooHot  ThermostatStatus = "TOO_HOT"
	ThermostatOptimal ThermostatStatus = "OPTIMAL"
)

type FilterSpec struct {
	External       bool
	CapacityLiters int
}

// SuitableFor reports whether the filter turns the tank over at least twice.
func (f FilterSpec) SuitableFor(volumeLiters float64) bool {
	return float64(f.CapacityLiters) >= volumeLiters*2
}

type LightingSpec struct {
	LED         bool
	TurnOnTime  ClockTime
	TurnOffTime ClockTime
}

// IsOnAt reports whether the light is on at the given time of day.
// Schedules that switch off after midnight wrap around.
func (l LightingSpec) IsOnAt(c ClockTime) bool {
	on, off, now := l.TurnOnTime.minutes(), l.TurnOffTime.minutes(), c.minutes()
	if on < off {
		return now >= on && now < off
	}
	return now >= on || now < off
}

// DailyLightDuration is how long the light stays on per day.
func (l LightingSpec) DailyLightDuration() time.Duration {
	on, off := l.TurnOnTime.minutes(), l.TurnOffTime.minutes()
	minutes := off - on
	if on >= off {
		minutes = minutesPerDay - on + off
	}
	return time.Duration(minutes) * time.Minute
}

type ThermostatSpec struct {
	MinTemperature     float64
	MaxTemperature     float64
	CurrentTemperature float64
}

func (t ThermostatSpec) IsWithinRange() bool {
	return t.CurrentTemperature >= t.MinTemperature && t.CurrentTemperature <= t.MaxTemperature
}

func (t ThermostatSpec) RequiresHeating() bool { return t.CurrentTemperature < t.MinTemperature }
func (t ThermostatSpec) RequiresCooling() bool { return t.CurrentTemperature > t.MaxTemperature }
func (t ThermostatSpec) Variance() float64     { return t.MaxTemperature - t.MinTemperature }

func (t ThermostatSpec) Status() ThermostatStatus {
	switch {
	case t.RequiresHeating():
		return ThermostatTooCold
	case t.RequiresCooling():
		return ThermostatTooHot
	default:
		return ThermostatOptimal
	}
}

func (t ThermostatSpec) validate() error {
	if err := validation.First(
		validation.Positive("Minimum temperature", t.MinTemperature),
		validation.Positive("Maximum temperature", t.MaxTemperature),
		validation.NonNegative("Current temperature", t.CurrentTemperature),
	); err != nil {
		return err
	}
	if t.MinTemperature >= t.MaxTemperature {
		return dErrors.New(dErrors.CodeValidation, "Minimum temperature must be less than maximum temperature")
	}
	return nil
}

// Accessory is a tagged union: exactly one of Filter, Lighting, or
// Thermostat is set, matching Kind.
type Accessory struct {
	ID           id.AccessoryID
	Kind         AccessoryKind
	Model        string
	SerialNumber string
	Color        string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Filter     *FilterSpec
	Lighting   *LightingSpec
	Thermostat *ThermostatSpec

	ownerID    id.OwnerID
	aquariumID id.AquariumID
}

// NewAccessoryParams carries caller intent for every kind. Fields that do not
// belong to the requested kind are ignored.
type NewAccessoryParams struct {
	Model        string
	SerialNumber string
	Color        string
	Description  string
	OwnerID      id.OwnerID

	External       bool
	CapacityLiters int

	LED         bool
	TurnOnTime  string
	TurnOffTime string

	MinTemperature     *float64
	MaxTemperature     *float64
	CurrentTemperature *float64
}

// NewAccessoryFromKind parses kind (including the "light" and "heater" aliases)
// and creates the accessory.
func NewAccessoryFromKind(kind string, accessoryID id.AccessoryID, p NewAccessoryParams, now time.Time) (*Accessory, error) {
	k, err := ParseAccessoryKind(kind)
	if err != nil {
		return nil, err
	}
	return NewAccessory(k, accessoryID, p, now)
}

// NewAccessory validates the shared fields and the kind payload.
func NewAccessory(kind AccessoryKind, accessoryID id.AccessoryID, p NewAccessoryParams, now time.Time) (*Accessory, error) {
	if err := validation.First(
		validation.Required("Model", p.Model, validation.MaxModelLength),
		validation.Required("Serial number", p.SerialNumber, validation.MaxModelLength),
		validation.MaxLength("Color", p.Color, validation.MaxColorLength),
		validation.MaxLength("Description", p.Description, validation.MaxDescriptionLength),
	); err != nil {
		return nil, err
	}
	if p.OwnerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "Owner ID cannot be null")
	}

	a := &Accessory{
		ID:           accessoryID,
		Kind:         kind,
		Model:        p.Model,
		SerialNumber: p.SerialNumber,
		Color:        p.Color,
		Description:  p.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
		ownerID:      p.OwnerID,
	}

	switch kind {
	case KindFilter:
		capacity := p.CapacityLiters
		if capacity == 0 {
			capacity = DefaultFilterCapacity
		}
		if err := validation.Positive("Capacity", capacity); err != nil {
			return nil, err
		}
		a.Filter = &FilterSpec{External: p.External, CapacityLiters: capacity}
	case KindLighting:
		if err := validation.First(
			validation.NotEmpty("Turn on time", p.TurnOnTime),
			validation.NotEmpty("Turn off time", p.TurnOffTime),
		); err != nil {
			return nil, err
		}
		on, err := ParseClockTime("Turn on time", p.TurnOnTime)
		if err != nil {
			return nil, err
		}
		off, err := ParseClockTime("Turn off time", p.TurnOffTime)
		if err != nil {
			return nil, err
		}
		a.Lighting = &LightingSpec{LED: p.LED, TurnOnTime: on, TurnOffTime: off}
	case KindThermostat:
		spec := ThermostatSpec{
			MinTemperature:     valueOr(p.MinTemperature, DefaultMinTemperature),
			MaxTemperature:     valueOr(p.MaxTemperature, DefaultMaxTemperature),
			CurrentTemperature: valueOr(p.CurrentTemperature, DefaultCurrentTemperature),
		}
		if err := spec.validate(); err != nil {
			return nil, err
		}
		a.Thermostat = &spec
	default:
		return nil, dErrors.New(dErrors.CodeValidation, "Unsupported accessory type: "+string(kind))
	}
	return a, nil
}

// AccessoryRecord is the storage shape of an accessory.
type AccessoryRecord struct {
	ID           id.AccessoryID
	Kind         AccessoryKind
	Model        string
	SerialNumber string
	Color        string
	Description  string
	OwnerID      id.OwnerID
	AquariumID   id.AquariumID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Filter       *FilterSpec
	Lighting     *LightingSpec
	Thermostat   *ThermostatSpec
}

// ReconstructAccessory rebuilds an accessory from storage without validation.
func ReconstructAccessory(r AccessoryRecord) *Accessory {
	return &Accessory{
		ID:           r.ID,
		Kind:         r.Kind,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		Color:        r.Color,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		Filter:       r.Filter,
		Lighting:     r.Lighting,
		Thermostat:   r.Thermostat,
		ownerID:      r.OwnerID,
		aquariumID:   r.AquariumID,
	}
}

func (a *Accessory) Record() AccessoryRecord {
	return AccessoryRecord{
		ID:           a.ID,
		Kind:         a.Kind,
		Model:        a.Model,
		SerialNumber: a.SerialNumber,
		Color:        a.Color,
		Description:  a.Description,
		OwnerID:      a.ownerID,
		AquariumID:   a.aquariumID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		Filter:       a.Filter,
		Lighting:     a.Lighting,
		Thermostat:   a.Thermostat,
	}
}

func (a *Accessory) OwnerID() id.OwnerID       { return a.ownerID }
func (a *Accessory) AquariumID() id.AquariumID { return a.aquariumID }
func (a *Accessory) IsAssigned() bool          { return !a.aquariumID.IsNil() }

func (a *Accessory) ValidateOwnership(requestingOwnerID id.OwnerID) error {
	return id.ValidateOwnership(a.ownerID, requestingOwnerID)
}

// AccessoryUpdate holds the optional fields of a partial update. Kind
// fields that do not match the accessory's kind are rejected.
type AccessoryUpdate struct {
	Model        *string
	SerialNumber *string
	Color        *string
	Description  *string

	External       *bool
	CapacityLiters *int

	LED         *bool
	TurnOnTime  *string
	TurnOffTime *string

	MinTemperature     *float64
	MaxTemperature     *float64
	CurrentTemperature *float64
}

func (u AccessoryUpdate) hasFilterFields() bool {
	return u.External != nil || u.CapacityLiters != nil
}

func (u AccessoryUpdate) hasLightingFields() bool {
	return u.LED != nil || u.TurnOnTime != nil || u.TurnOffTime != nil
}

func (u AccessoryUpdate) hasThermostatFields() bool {
	return u.MinTemperature != nil || u.MaxTemperature != nil || u.CurrentTemperature != nil
}

// Update validates every supplied field and applies them together.
func (a *Accessory) Update(u AccessoryUpdate, requestingOwnerID id.OwnerID, now time.Time) error {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}
	if err := a.checkKindFields(u); err != nil {
		return err
	}

	next := *a
	if u.Model != nil {
		if err := validation.Required("Model", *u.Model, validation.MaxModelLength); err != nil {
			return err
		}
		next.Model = *u.Model
	}
	if u.SerialNumber != nil {
		if err := validation.Required("Serial number", *u.SerialNumber, validation.MaxModelLength); err != nil {
			return err
		}
		next.SerialNumber = *u.SerialNumber
	}
	if u.Color != nil {
		if err := validation.MaxLength("Color", *u.Color, validation.MaxColorLength); err != nil {
			return err
		}
		next.Color = *u.Color
	}
	if u.Description != nil {
		if err := validation.MaxLength("Description", *u.Description, validation.MaxDescriptionLength); err != nil {
			return err
		}
		next.Description = *u.Description
	}

	switch a.Kind {
	case KindFilter:
		spec := *a.Filter
		if u.External != nil {
			spec.External = *u.External
		}
		if u.CapacityLiters != nil {
			if err := validation.Positive("Capacity", *u.CapacityLiters); err != nil {
				return err
			}
			spec.CapacityLiters = *u.CapacityLiters
		}
		next.Filter = &spec
	case KindLighting:
		spec := *a.Lighting
		if u.LED != nil {
			spec.LED = *u.LED
		}
		if u.TurnOnTime != nil {
			on, err := ParseClockTime("Turn on time", *u.TurnOnTime)
			if err != nil {
				return err
			}
			spec.TurnOnTime = on
		}
		if u.TurnOffTime != nil {
			off, err := ParseClockTime("Turn off time", *u.TurnOffTime)
			if err != nil {
				return err
			}
			spec.TurnOffTime = off
		}
		next.Lighting = &spec
	case KindThermostat:
		spec := ThermostatSpec{
			MinTemperature:     valueOr(u.MinTemperature, a.Thermostat.MinTemperature),
			MaxTemperature:     valueOr(u.MaxTemperature, a.Thermostat.MaxTemperature),
			CurrentTemperature: valueOr(u.CurrentTemperature, a.Thermostat.CurrentTemperature),
		}
		if err := spec.validate(); err != nil {
			return err
		}
		next.Thermostat = &spec
	}

	next.UpdatedAt = now
	*a = next
	return nil
}

// UpdateCapacity changes a filter's rated capacity.
func (a *Accessory) UpdateCapacity(liters int, requestingOwnerID id.OwnerID, now time.Time) error {
	return a.Update(AccessoryUpdate{CapacityLiters: &liters}, requestingOwnerID, now)
}

// UpdateCurrentTemperature records a new thermostat reading.
func (a *Accessory) UpdateCurrentTemperature(celsius float64, requestingOwnerID id.OwnerID, now time.Time) error {
	return a.Update(AccessoryUpdate{CurrentTemperature: &celsius}, requestingOwnerID, now)
}

func (a *Accessory) checkKindFields(u AccessoryUpdate) error {
	wrong := func(group string) error {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("%s fields do not apply to %s accessories", group, a.Kind))
	}
	if u.hasFilterFields() && a.Kind != KindFilter {
		return wrong("filter")
	}
	if u.hasLightingFields() && a.Kind != KindLighting {
		return wrong("lighting")
	}
	if u.hasThermostatFields() && a.Kind != KindThermostat {
		return wrong("thermostat")
	}
	return nil
}

func (a *Accessory) key() id.AccessoryID { return a.ID }

func (a *Accessory) label() string {
	return fmt.Sprintf("accessory %s %q", a.Kind, a.SerialNumber)
}

func (a *Accessory) assignTo(aquariumID id.AquariumID, now time.Time) {
	a.aquariumID = aquariumID
	a.UpdatedAt = now
}

func (a *Accessory) unassign(now time.Time) {
	a.aquariumID = id.AquariumID{}
	a.UpdatedAt = now
}

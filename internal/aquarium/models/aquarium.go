package models

import (
	"fmt"
	"math"
	"sort"
	"time"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/validation"
)

// Aquarium is the aggregate root. It owns the inhabitant, accessory, and
// ornament collections and is the only code that changes an item's
// aquarium reference, so both sides of every membership stay in agreement.
type Aquarium struct {
	ID          id.AquariumID
	Name        string
	Dimensions  Dimensions
	Substrate   Substrate
	WaterType   WaterType
	Temperature float64
	Color       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ownerID        id.OwnerID
	state          State
	stateStartedAt time.Time

	inhabitants map[id.InhabitantID]*Inhabitant
	accessories map[id.AccessoryID]*Accessory
	ornaments   map[id.OrnamentID]*Ornament
}

// NewAquariumParams carries caller intent for the creation path.
type NewAquariumParams struct {
	Name        string
	Length      float64
	Width       float64
	Height      float64
	Substrate   Substrate
	WaterType   WaterType
	Temperature *float64
	State       State
	Color       string
	Description string
	OwnerID     id.OwnerID
}

// NewAquarium validates params and builds a fresh aquarium. Temperature
// defaults to DefaultTemperature and state defaults to SETUP.
func NewAquarium(aquariumID id.AquariumID, p NewAquariumParams, now time.Time) (*Aquarium, error) {
	dims, err := NewDimensions(p.Length, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	temperature := DefaultTemperature
	if p.Temperature != nil {
		temperature = *p.Temperature
	}
	state := p.State
	if state == "" {
		state = StateSetup
	}
	if err := validation.First(
		validation.Required("Name", p.Name, validation.MaxNameLength),
		validateTemperature(temperature),
		validation.MaxLength("Color", p.Color, validation.MaxColorLength),
		validation.MaxLength("Description", p.Description, validation.MaxDescriptionLength),
	); err != nil {
		return nil, err
	}
	substrate, err := ParseSubstrate(string(p.Substrate))
	if err != nil {
		return nil, err
	}
	waterType, err := ParseWaterType(string(p.WaterType))
	if err != nil {
		return nil, err
	}
	if state, err = ParseState(string(state)); err != nil {
		return nil, err
	}

	return &Aquarium{
		ID:             aquariumID,
		Name:           p.Name,
		Dimensions:     dims,
		Substrate:      substrate,
		WaterType:      waterType,
		Temperature:    temperature,
		Color:          p.Color,
		Description:    p.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
		ownerID:        p.OwnerID,
		state:          state,
		stateStartedAt: now,
		inhabitants:    make(map[id.InhabitantID]*Inhabitant),
		accessories:    make(map[id.AccessoryID]*Accessory),
		ornaments:      make(map[id.OrnamentID]*Ornament),
	}, nil
}

// AquariumRecord is the storage shape of an aquarium and its members.
type AquariumRecord struct {
	ID                    id.AquariumID
	Name                  string
	Dimensions            Dimensions
	Substrate             Substrate
	WaterType             WaterType
	Temperature           float64
	State                 State
	CurrentStateStartTime time.Time
	Color                 string
	Description           string
	OwnerID               id.OwnerID
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Inhabitants           []*Inhabitant
	Accessories           []*Accessory
	Ornaments             []*Ornament
}

// ReconstructAquarium rebuilds an aquarium from storage without running
// validation. Only persistence code should call it.
func ReconstructAquarium(r AquariumRecord) *Aquarium {
	a := &Aquarium{
		ID:             r.ID,
		Name:           r.Name,
		Dimensions:     r.Dimensions,
		Substrate:      r.Substrate,
		WaterType:      r.WaterType,
		Temperature:    r.Temperature,
		Color:          r.Color,
		Description:    r.Description,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		ownerID:        r.OwnerID,
		state:          r.State,
		stateStartedAt: r.CurrentStateStartTime,
		inhabitants:    make(map[id.InhabitantID]*Inhabitant, len(r.Inhabitants)),
		accessories:    make(map[id.AccessoryID]*Accessory, len(r.Accessories)),
		ornaments:      make(map[id.OrnamentID]*Ornament, len(r.Ornaments)),
	}
	for _, i := range r.Inhabitants {
		a.inhabitants[i.ID] = i
	}
	for _, acc := range r.Accessories {
		a.accessories[acc.ID] = acc
	}
	for _, o := range r.Ornaments {
		a.ornaments[o.ID] = o
	}
	return a
}

// Record returns the storage shape of the aquarium row. Members are included
// so callers can persist every touched item.
func (a *Aquarium) Record() AquariumRecord {
	return AquariumRecord{
		ID:                    a.ID,
		Name:                  a.Name,
		Dimensions:            a.Dimensions,
		Substrate:             a.Substrate,
		WaterType:             a.WaterType,
		Temperature:           a.Temperature,
		State:                 a.state,
		CurrentStateStartTime: a.stateStartedAt,
		Color:                 a.Color,
		Description:           a.Description,
		OwnerID:               a.ownerID,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
		Inhabitants:           a.Inhabitants(),
		Accessories:           a.Accessories(),
		Ornaments:             a.Ornaments(),
	}
}

func (a *Aquarium) OwnerID() id.OwnerID              { return a.ownerID }
func (a *Aquarium) State() State                     { return a.state }
func (a *Aquarium) CurrentStateStartTime() time.Time { return a.stateStartedAt }
func (a *Aquarium) Volume() float64                  { return a.Dimensions.VolumeLiters() }

// ValidateOwnership applies the shared ownership guard to this aquarium.
func (a *Aquarium) ValidateOwnership(requestingOwnerID id.OwnerID) error {
	return id.ValidateOwnership(a.ownerID, requestingOwnerID)
}

// AssignOwner sets the owner of an unowned aquarium. Reassigning to the
// current owner is a no-op; taking over someone else's aquarium is rejected.
func (a *Aquarium) AssignOwner(ownerID id.OwnerID, now time.Time) error {
	if ownerID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "Owner ID cannot be null")
	}
	if a.ownerID == ownerID {
		return nil
	}
	if !a.ownerID.IsNil() {
		return dErrors.New(dErrors.CodeOwnership, "aquarium already has an owner")
	}
	a.ownerID = ownerID
	a.UpdatedAt = now
	return nil
}

// AquariumUpdate holds the optional fields of a partial update.
type AquariumUpdate struct {
	Name        *string
	Length      *float64
	Width       *float64
	Height      *float64
	Substrate   *Substrate
	WaterType   *WaterType
	Temperature *float64
	Color       *string
	Description *string
}

// Update applies the supplied fields after validating all of them.
func (a *Aquarium) Update(u AquariumUpdate, requestingOwnerID id.OwnerID, now time.Time) error {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}

	next := *a
	if u.Name != nil {
		if err := validation.Required("Name", *u.Name, validation.MaxNameLength); err != nil {
			return err
		}
		next.Name = *u.Name
	}
	if u.Length != nil || u.Width != nil || u.Height != nil {
		dims, err := NewDimensions(
			valueOr(u.Length, a.Dimensions.Length),
			valueOr(u.Width, a.Dimensions.Width),
			valueOr(u.Height, a.Dimensions.Height),
		)
		if err != nil {
			return err
		}
		next.Dimensions = dims
	}
	if u.Substrate != nil {
		substrate, err := ParseSubstrate(string(*u.Substrate))
		if err != nil {
			return err
		}
		next.Substrate = substrate
	}
	if u.WaterType != nil {
		waterType, err := ParseWaterType(string(*u.WaterType))
		if err != nil {
			return err
		}
		for _, member := range a.inhabitants {
			if member.WaterType != waterType {
				return dErrors.New(dErrors.CodeConflict, fmt.Sprintf(
					"cannot change water type to %s while %s (%s) lives here", waterType, member.DisplayName(), member.WaterType))
			}
		}
		next.WaterType = waterType
	}
	if u.Temperature != nil {
		if err := validateTemperature(*u.Temperature); err != nil {
			return err
		}
		next.Temperature = *u.Temperature
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

	next.UpdatedAt = now
	*a = next
	return nil
}

// Inhabitants returns members ordered by creation time.
func (a *Aquarium) Inhabitants() []*Inhabitant {
	out := make([]*Inhabitant, 0, len(a.inhabitants))
	for _, i := range a.inhabitants {
		out = append(out, i)
	}
	sort.Slice(out, func(x, y int) bool { return inhabitantLess(out[x], out[y]) })
	return out
}

func (a *Aquarium) Accessories() []*Accessory {
	out := make([]*Accessory, 0, len(a.accessories))
	for _, acc := range a.accessories {
		out = append(out, acc)
	}
	sort.Slice(out, func(x, y int) bool {
		return createdBefore(out[x].CreatedAt, out[y].CreatedAt, out[x].ID.String(), out[y].ID.String())
	})
	return out
}

func (a *Aquarium) Ornaments() []*Ornament {
	out := make([]*Ornament, 0, len(a.ornaments))
	for _, o := range a.ornaments {
		out = append(out, o)
	}
	sort.Slice(out, func(x, y int) bool {
		return createdBefore(out[x].CreatedAt, out[y].CreatedAt, out[x].ID.String(), out[y].ID.String())
	})
	return out
}

func (a *Aquarium) HasInhabitant(inhabitantID id.InhabitantID) bool {
	_, ok := a.inhabitants[inhabitantID]
	return ok
}

func (a *Aquarium) HasAccessory(accessoryID id.AccessoryID) bool {
	_, ok := a.accessories[accessoryID]
	return ok
}

func (a *Aquarium) HasOrnament(ornamentID id.OrnamentID) bool {
	_, ok := a.ornaments[ornamentID]
	return ok
}

// InhabitantsByWaterType filters members by water type.
func (a *Aquarium) InhabitantsByWaterType(waterType WaterType) []*Inhabitant {
	var out []*Inhabitant
	for _, i := range a.Inhabitants() {
		if i.WaterType == waterType {
			out = append(out, i)
		}
	}
	return out
}

// SchoolingInhabitants returns members that live in schools.
func (a *Aquarium) SchoolingInhabitants() []*Inhabitant {
	var out []*Inhabitant
	for _, i := range a.Inhabitants() {
		if i.Schooling {
			out = append(out, i)
		}
	}
	return out
}

// TotalInhabitantCount sums head-counts across members.
func (a *Aquarium) TotalInhabitantCount() int {
	total := 0
	for _, i := range a.inhabitants {
		total += i.Count
	}
	return total
}

// RecommendedInhabitantCapacity is one head per LitersPerInhabitant liters of water.
func (a *Aquarium) RecommendedInhabitantCapacity() int {
	return int(math.Floor(a.Volume() / LitersPerInhabitant))
}

// IsOverstocked reports whether the head-count exceeds the recommended capacity.
func (a *Aquarium) IsOverstocked() bool {
	return a.TotalInhabitantCount() > a.RecommendedInhabitantCapacity()
}

func validateTemperature(t float64) error {
	if err := validation.NonNegative("Temperature", t); err != nil {
		return err
	}
	return validation.InRange("Temperature", t, 0, MaxWaterTemperature)
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func createdBefore(a, b time.Time, aID, bID string) bool {
	if !a.Equal(b) {
		return a.Before(b)
	}
	return aID < bID
}

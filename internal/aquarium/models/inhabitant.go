package models

import (
	"fmt"
	"strings"
	"time"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/validation"
)

type InhabitantKind string

const (
	KindFish     InhabitantKind = "FISH"
	KindSnail    InhabitantKind = "SNAIL"
	KindShrimp   InhabitantKind = "SHRIMP"
	KindCrayfish InhabitantKind = "CRAYFISH"
	KindPlant    InhabitantKind = "PLANT"
	KindCoral    InhabitantKind = "CORAL"
)

// InhabitantKinds lists every supported kind in a stable order.
var InhabitantKinds = []InhabitantKind{KindFish, KindSnail, KindShrimp, KindCrayfish, KindPlant, KindCoral}

// ParseInhabitantKind accepts any casing of a known kind.
func ParseInhabitantKind(s string) (InhabitantKind, error) {
	normalized := InhabitantKind(strings.ToUpper(strings.TrimSpace(s)))
	for _, k := range InhabitantKinds {
		if k == normalized {
			return k, nil
		}
	}
	return "", dErrors.New(dErrors.CodeValidation, "Unsupported inhabitant type: "+s)
}

// Traits are the kind-specific flags. Fish use all three, snails only
// SnailEater, and every other kind keeps them false.
type Traits struct {
	AggressiveEater     bool
	RequiresSpecialFood bool
	SnailEater          bool
}

// forKind zeroes the flags a kind does not carry.
func (t Traits) forKind(kind InhabitantKind) Traits {
	switch kind {
	case KindFish:
		return t
	case KindSnail:
		return Traits{SnailEater: t.SnailEater}
	default:
		return Traits{}
	}
}

type Inhabitant struct {
	ID          id.InhabitantID
	Kind        InhabitantKind
	Species     string
	Name        string
	Color       string
	Count       int
	Schooling   bool
	WaterType   WaterType
	Traits      Traits
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ownerID    id.OwnerID
	aquariumID id.AquariumID
}

// NewInhabitantParams carries caller intent for the creation path.
type NewInhabitantParams struct {
	Species     string
	Name        string
	Color       string
	Count       int
	Schooling   bool
	WaterType   WaterType
	Traits      Traits
	Description string
	OwnerID     id.OwnerID
}

// NewInhabitantFromKind parses kind case-insensitively and creates the inhabitant.
func NewInhabitantFromKind(kind string, inhabitantID id.InhabitantID, p NewInhabitantParams, now time.Time) (*Inhabitant, error) {
	k, err := ParseInhabitantKind(kind)
	if err != nil {
		return nil, err
	}
	return NewInhabitant(k, inhabitantID, p, now)
}

// NewInhabitant validates params and builds a new, unassigned inhabitant.
func NewInhabitant(kind InhabitantKind, inhabitantID id.InhabitantID, p NewInhabitantParams, now time.Time) (*Inhabitant, error) {
	if _, err := ParseInhabitantKind(string(kind)); err != nil {
		return nil, err
	}
	if err := validation.First(
		validation.Required("Species", p.Species, validation.MaxSpeciesLength),
		validation.MaxLength("Name", p.Name, validation.MaxNameLength),
		validation.MaxLength("Color", p.Color, validation.MaxColorLength),
		validation.MaxLength("Description", p.Description, validation.MaxDescriptionLength),
		validation.Positive("Count", p.Count),
	); err != nil {
		return nil, err
	}
	waterType, err := ParseWaterType(string(p.WaterType))
	if err != nil {
		return nil, err
	}
	if p.OwnerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "Owner ID cannot be null")
	}

	return &Inhabitant{
		ID:          inhabitantID,
		Kind:        kind,
		Species:     p.Species,
		Name:        p.Name,
		Color:       p.Color,
		Count:       p.Count,
		Schooling:   p.Schooling,
		WaterType:   waterType,
		Traits:      p.Traits.forKind(kind),
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		ownerID:     p.OwnerID,
	}, nil
}

// InhabitantRecord is the storage shape of an inhabitant.
type InhabitantRecord struct {
	ID          id.InhabitantID
	Kind        InhabitantKind
	Species     string
	Name        string
	Color       string
	Count       int
	Schooling   bool
	WaterType   WaterType
	Traits      Traits
	Description string
	OwnerID     id.OwnerID
	AquariumID  id.AquariumID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReconstructInhabitant rebuilds an inhabitant from storage without validation.
func ReconstructInhabitant(r InhabitantRecord) *Inhabitant {
	return &Inhabitant{
		ID:          r.ID,
		Kind:        r.Kind,
		Species:     r.Species,
		Name:        r.Name,
		Color:       r.Color,
		Count:       r.Count,
		Schooling:   r.Schooling,
		WaterType:   r.WaterType,
		Traits:      r.Traits,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		ownerID:     r.OwnerID,
		aquariumID:  r.AquariumID,
	}
}

func (i *Inhabitant) Record() InhabitantRecord {
	return InhabitantRecord{
		ID:          i.ID,
		Kind:        i.Kind,
		Species:     i.Species,
		Name:        i.Name,
		Color:       i.Color,
		Count:       i.Count,
		Schooling:   i.Schooling,
		WaterType:   i.WaterType,
		Traits:      i.Traits,
		Description: i.Description,
		OwnerID:     i.ownerID,
		AquariumID:  i.aquariumID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (i *Inhabitant) OwnerID() id.OwnerID       { return i.ownerID }
func (i *Inhabitant) AquariumID() id.AquariumID { return i.aquariumID }
func (i *Inhabitant) IsAssigned() bool          { return !i.aquariumID.IsNil() }

// DisplayName prefers the given name and falls back to the species.
func (i *Inhabitant) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Species
}

func (i *Inhabitant) ValidateOwnership(requestingOwnerID id.OwnerID) error {
	return id.ValidateOwnership(i.ownerID, requestingOwnerID)
}

// InhabitantUpdate holds the optional fields of a partial update.
type InhabitantUpdate struct {
	Species     *string
	Name        *string
	Color       *string
	Count       *int
	Schooling   *bool
	WaterType   *WaterType
	Traits      *Traits
	Description *string
}

// Update applies u to an inhabitant that is not in an aquarium. Members
// are updated through Aquarium.UpdateInhabitant so tank rules are re-checked.
func (i *Inhabitant) Update(u InhabitantUpdate, requestingOwnerID id.OwnerID, now time.Time) error {
	if i.IsAssigned() {
		return dErrors.New(dErrors.CodeConflict, "inhabitant is in an aquarium; update it through the aquarium")
	}
	next, err := i.preview(u, requestingOwnerID, now)
	if err != nil {
		return err
	}
	*i = *next
	return nil
}

// preview returns an updated copy after validating every supplied field.
func (i *Inhabitant) preview(u InhabitantUpdate, requestingOwnerID id.OwnerID, now time.Time) (*Inhabitant, error) {
	if err := i.ValidateOwnership(requestingOwnerID); err != nil {
		return nil, err
	}
	next := *i
	if u.Species != nil {
		if err := validation.Required("Species", *u.Species, validation.MaxSpeciesLength); err != nil {
			return nil, err
		}
		next.Species = *u.Species
	}
	if u.Name != nil {
		if err := validation.MaxLength("Name", *u.Name, validation.MaxNameLength); err != nil {
			return nil, err
		}
		next.Name = *u.Name
	}
	if u.Color != nil {
		if err := validation.MaxLength("Color", *u.Color, validation.MaxColorLength); err != nil {
			return nil, err
		}
		next.Color = *u.Color
	}
	if u.Count != nil {
		if err := validation.Positive("Count", *u.Count); err != nil {
			return nil, err
		}
		next.Count = *u.Count
	}
	if u.Schooling != nil {
		next.Schooling = *u.Schooling
	}
	if u.WaterType != nil {
		waterType, err := ParseWaterType(string(*u.WaterType))
		if err != nil {
			return nil, err
		}
		next.WaterType = waterType
	}
	if u.Traits != nil {
		next.Traits = u.Traits.forKind(i.Kind)
	}
	if u.Description != nil {
		if err := validation.MaxLength("Description", *u.Description, validation.MaxDescriptionLength); err != nil {
			return nil, err
		}
		next.Description = *u.Description
	}
	next.UpdatedAt = now
	return &next, nil
}

func (i *Inhabitant) key() id.InhabitantID { return i.ID }

func (i *Inhabitant) label() string {
	return fmt.Sprintf("inhabitant %q", i.DisplayName())
}

func (i *Inhabitant) assignTo(aquariumID id.AquariumID, now time.Time) {
	i.aquariumID = aquariumID
	i.UpdatedAt = now
}

func (i *Inhabitant) unassign(now time.Time) {
	i.aquariumID = id.AquariumID{}
	i.UpdatedAt = now
}

func inhabitantLess(a, b *Inhabitant) bool {
	return createdBefore(a.CreatedAt, b.CreatedAt, a.ID.String(), b.ID.String())
}

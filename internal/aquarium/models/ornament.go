package models

import (
	"fmt"
	"time"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/validation"
)

type Ornament struct {
	ID                id.OrnamentID
	Name              string
	Description       string
	Color             string
	Material          string
	AirPumpCompatible bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	ownerID    id.OwnerID
	aquariumID id.AquariumID
}

type NewOrnamentParams struct {
	Name              string
	Description       string
	Color             string
	Material          string
	AirPumpCompatible bool
	OwnerID           id.OwnerID
}

// NewOrnament requires a name, a color, and an owner.
func NewOrnament(ornamentID id.OrnamentID, p NewOrnamentParams, now time.Time) (*Ornament, error) {
	if err := validation.First(
		validation.Required("Name", p.Name, validation.MaxNameLength),
		validation.Required("Color", p.Color, validation.MaxColorLength),
		validation.MaxLength("Material", p.Material, validation.MaxNameLength),
		validation.MaxLength("Description", p.Description, validation.MaxDescriptionLength),
	); err != nil {
		return nil, err
	}
	if p.OwnerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "Owner ID cannot be null")
	}
	return &Ornament{
		ID:                ornamentID,
		Name:              p.Name,
		Description:       p.Description,
		Color:             p.Color,
		Material:          p.Material,
		AirPumpCompatible: p.AirPumpCompatible,
		CreatedAt:         now,
		UpdatedAt:         now,
		ownerID:           p.OwnerID,
	}, nil
}

type OrnamentRecord struct {
	ID                id.OrnamentID
	Name              string
	Description       string
	Color             string
	Material          string
	AirPumpCompatible bool
	OwnerID           id.OwnerID
	AquariumID        id.AquariumID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func ReconstructOrnament(r OrnamentRecord) *Ornament {
	return &Ornament{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Color:             r.Color,
		Material:          r.Material,
		AirPumpCompatible: r.AirPumpCompatible,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		ownerID:           r.OwnerID,
		aquariumID:        r.AquariumID,
	}
}

func (o *Ornament) Record() OrnamentRecord {
	return OrnamentRecord{
		ID:                o.ID,
		Name:              o.Name,
		Description:       o.Description,
		Color:             o.Color,
		Material:          o.Material,
		AirPumpCompatible: o.AirPumpCompatible,
		OwnerID:           o.ownerID,
		AquariumID:        o.aquariumID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func (o *Ornament) OwnerID() id.OwnerID       { return o.ownerID }
func (o *Ornament) AquariumID() id.AquariumID { return o.aquariumID }
func (o *Ornament) IsAssigned() bool          { return !o.aquariumID.IsNil() }

func (o *Ornament) ValidateOwnership(requestingOwnerID id.OwnerID) error {
	return id.ValidateOwnership(o.ownerID, requestingOwnerID)
}

type OrnamentUpdate struct {
	Name              *string
	Description       *string
	Color             *string
	Material          *string
	AirPumpCompatible *bool
}

func (o *Ornament) Update(u OrnamentUpdate, requestingOwnerID id.OwnerID, now time.Time) error {
	if err := o.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}
	next := *o
	if u.Name != nil {
		if err := validation.Required("Name", *u.Name, validation.MaxNameLength); err != nil {
			return err
		}
		next.Name = *u.Name
	}
	if u.Color != nil {
		if err := validation.Required("Color", *u.Color, validation.MaxColorLength); err != nil {
			return err
		}
		next.Color = *u.Color
	}
	if u.Material != nil {
		if err := validation.MaxLength("Material", *u.Material, validation.MaxNameLength); err != nil {
			return err
		}
		next.Material = *u.Material
	}
	if u.Description != nil {
		if err := validation.MaxLength("Description", *u.Description, validation.MaxDescriptionLength); err != nil {
			return err
		}
		next.Description = *u.Description
	}
	if u.AirPumpCompatible != nil {
		next.AirPumpCompatible = *u.AirPumpCompatible
	}
	next.UpdatedAt = now
	*o = next
	return nil
}

func (o *Ornament) key() id.OrnamentID { return o.ID }

func (o *Ornament) label() string {
	return fmt.Sprintf("ornament %q", o.Name)
}

func (o *Ornament) assignTo(aquariumID id.AquariumID, now time.Time) {
	o.aquariumID = aquariumID
	o.UpdatedAt = now
}

func (o *Ornament) unassign(now time.Time) {
	o.aquariumID = id.AquariumID{}
	o.UpdatedAt = now
}

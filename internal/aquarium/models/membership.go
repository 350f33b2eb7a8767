package models

import (
	"fmt"
	"time"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
)

// member is implemented by every item kind an aquarium can hold.
type member[K comparable] interface {
	comparable
	key() K
	label() string
	AquariumID() id.AquariumID
	ValidateOwnership(requestingOwnerID id.OwnerID) error
	assignTo(aquariumID id.AquariumID, now time.Time)
	unassign(now time.Time)
}

// attach runs every precondition before touching either side, then sets the
// back-reference and the collection entry together.
func attach[K comparable, M member[K]](a *Aquarium, set map[K]M, item M, requestingOwnerID id.OwnerID, now time.Time, checks ...func() error) error {
	var zero M
	if item == zero {
		return dErrors.New(dErrors.CodeValidation, "item cannot be null")
	}
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}
	current := item.AquariumID()
	if !current.IsNil() && current != a.ID {
		return dErrors.New(dErrors.CodeConflict,
			fmt.Sprintf("%s is already assigned to aquarium %s", item.label(), current))
	}
	if existing, ok := set[item.key()]; ok && existing == item && current == a.ID {
		return nil
	}
	if a.state == StateInactive {
		return dErrors.New(dErrors.CodeConflict, "cannot add items to an inactive aquarium")
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	if err := item.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}

	item.assignTo(a.ID, now)
	set[item.key()] = item
	a.UpdatedAt = now
	return nil
}

// detach removes item when present and clears its back-reference in the same step.
// Absent items are left alone.
func detach[K comparable, M member[K]](a *Aquarium, set map[K]M, item M, requestingOwnerID id.OwnerID, now time.Time) error {
	var zero M
	if item == zero {
		return dErrors.New(dErrors.CodeValidation, "item cannot be null")
	}
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}
	stored, ok := set[item.key()]
	if !ok {
		return nil
	}
	if err := item.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}

	delete(set, item.key())
	item.unassign(now)
	if stored != item {
		stored.unassign(now)
	}
	a.UpdatedAt = now
	return nil
}

// AddInhabitant admits candidate after ownership, single-membership, water
// type, and compatibility checks against every current member. On failure the
// member set and the candidate are unchanged.
func (a *Aquarium) AddInhabitant(candidate *Inhabitant, requestingOwnerID id.OwnerID, now time.Time) error {
	return attach(a, a.inhabitants, candidate, requestingOwnerID, now,
		func() error {
			if candidate.WaterType != a.WaterType {
				return dErrors.New(dErrors.CodeConflict, fmt.Sprintf(
					"%s needs %s water but aquarium holds %s", candidate.DisplayName(), candidate.WaterType, a.WaterType))
			}
			return nil
		},
		func() error {
			return CheckCompatibility(candidate, a.Inhabitants())
		},
	)
}

// RemoveInhabitant drops member from the aquarium and clears its reference.
func (a *Aquarium) RemoveInhabitant(member *Inhabitant, requestingOwnerID id.OwnerID, now time.Time) error {
	return detach(a, a.inhabitants, member, requestingOwnerID, now)
}

// UpdateInhabitant applies a partial update to a current member, re-running
// the water type and compatibility checks against the other members first.
func (a *Aquarium) UpdateInhabitant(inhabitantID id.InhabitantID, u InhabitantUpdate, requestingOwnerID id.OwnerID, now time.Time) error {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return err
	}
	current, ok := a.inhabitants[inhabitantID]
	if !ok {
		return dErrors.New(dErrors.CodeConflict, "inhabitant is not in this aquarium")
	}
	next, err := current.preview(u, requestingOwnerID, now)
	if err != nil {
		return err
	}
	if next.WaterType != a.WaterType {
		return dErrors.New(dErrors.CodeConflict, fmt.Sprintf(
			"%s needs %s water but aquarium holds %s", next.DisplayName(), next.WaterType, a.WaterType))
	}
	if err := CheckCompatibility(next, a.Inhabitants()); err != nil {
		return err
	}
	*current = *next
	a.UpdatedAt = now
	return nil
}

// AttachAccessory adds accessory to the aquarium.
func (a *Aquarium) AttachAccessory(accessory *Accessory, requestingOwnerID id.OwnerID, now time.Time) error {
	return attach(a, a.accessories, accessory, requestingOwnerID, now)
}

// DetachAccessory removes accessory from the aquarium.
func (a *Aquarium) DetachAccessory(accessory *Accessory, requestingOwnerID id.OwnerID, now time.Time) error {
	return detach(a, a.accessories, accessory, requestingOwnerID, now)
}

// AttachOrnament adds ornament to the aquarium.
func (a *Aquarium) AttachOrnament(ornament *Ornament, requestingOwnerID id.OwnerID, now time.Time) error {
	return attach(a, a.ornaments, ornament, requestingOwnerID, now)
}

// DetachOrnament removes ornament from the aquarium.
func (a *Aquarium) DetachOrnament(ornament *Ornament, requestingOwnerID id.OwnerID, now time.Time) error {
	return detach(a, a.ornaments, ornament, requestingOwnerID, now)
}

// Detached lists the items released by DetachAll.
type Detached struct {
	Inhabitants []*Inhabitant
	Accessories []*Accessory
	Ornaments   []*Ornament
}

// DetachAll empties every collection ahead of deletion. Ownership of the
// aquarium and of every member is checked before anything is released.
func (a *Aquarium) DetachAll(requestingOwnerID id.OwnerID, now time.Time) (Detached, error) {
	if err := a.ValidateOwnership(requestingOwnerID); err != nil {
		return Detached{}, err
	}
	out := Detached{
		Inhabitants: a.Inhabitants(),
		Accessories: a.Accessories(),
		Ornaments:   a.Ornaments(),
	}
	for _, i := range out.Inhabitants {
		if err := i.ValidateOwnership(requestingOwnerID); err != nil {
			return Detached{}, err
		}
	}
	for _, acc := range out.Accessories {
		if err := acc.ValidateOwnership(requestingOwnerID); err != nil {
			return Detached{}, err
		}
	}
	for _, o := range out.Ornaments {
		if err := o.ValidateOwnership(requestingOwnerID); err != nil {
			return Detached{}, err
		}
	}

	for _, i := range out.Inhabitants {
		delete(a.inhabitants, i.ID)
		i.unassign(now)
	}
	for _, acc := range out.Accessories {
		delete(a.accessories, acc.ID)
		acc.unassign(now)
	}
	for _, o := range out.Ornaments {
		delete(a.ornaments, o.ID)
		o.unassign(now)
	}
	a.UpdatedAt = now
	return out, nil
}

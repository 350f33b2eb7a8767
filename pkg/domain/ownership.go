package domain

import (
	dErrors "aquaria/pkg/domain-errors"
)

// ValidateOwnership compares the owner stored on an entity with the owner
// making the request. It fails when either side is missing or when they differ.
//
// Every owned entity (aquarium, inhabitant, accessory, ornament) calls this
// before reassigning, detaching, or updating owner-sensitive fields.
func ValidateOwnership(stored, requesting OwnerID) error {
	if requesting.IsNil() {
		return dErrors.New(dErrors.CodeOwnership, "requesting owner ID is required")
	}
	if stored.IsNil() {
		return dErrors.New(dErrors.CodeOwnership, "entity has no owner")
	}
	if stored != requesting {
		return dErrors.New(dErrors.CodeOwnership, "owner does not match")
	}
	return nil
}

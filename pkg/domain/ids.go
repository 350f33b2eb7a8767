// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "aquaria/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing InhabitantID where AquariumID is expected.
type (
	OwnerID        uuid.UUID
	AquariumID     uuid.UUID
	InhabitantID   uuid.UUID
	AccessoryID    uuid.UUID
	OrnamentID     uuid.UUID
	StateHistoryID uuid.UUID
)

// Parse functions - use at trust boundaries (handlers, token claims).

func ParseOwnerID(s string) (OwnerID, error) {
	id, err := parseUUID(s, "owner ID")
	return OwnerID(id), err
}

func ParseAquariumID(s string) (AquariumID, error) {
	id, err := parseUUID(s, "aquarium ID")
	return AquariumID(id), err
}

func ParseInhabitantID(s string) (InhabitantID, error) {
	id, err := parseUUID(s, "inhabitant ID")
	return InhabitantID(id), err
}

func ParseAccessoryID(s string) (AccessoryID, error) {
	id, err := parseUUID(s, "accessory ID")
	return AccessoryID(id), err
}

func ParseOrnamentID(s string) (OrnamentID, error) {
	id, err := parseUUID(s, "ornament ID")
	return OrnamentID(id), err
}

func ParseStateHistoryID(s string) (StateHistoryID, error) {
	id, err := parseUUID(s, "state history ID")
	return StateHistoryID(id), err
}

// New* helpers generate random identifiers for freshly created entities.

func NewOwnerID() OwnerID               { return OwnerID(uuid.New()) }
func NewAquariumID() AquariumID         { return AquariumID(uuid.New()) }
func NewInhabitantID() InhabitantID     { return InhabitantID(uuid.New()) }
func NewAccessoryID() AccessoryID       { return AccessoryID(uuid.New()) }
func NewOrnamentID() OrnamentID         { return OrnamentID(uuid.New()) }
func NewStateHistoryID() StateHistoryID { return StateHistoryID(uuid.New()) }

// String methods - for logging and debugging.

func (id OwnerID) String() string        { return uuid.UUID(id).String() }
func (id AquariumID) String() string     { return uuid.UUID(id).String() }
func (id InhabitantID) String() string   { return uuid.UUID(id).String() }
func (id AccessoryID) String() string    { return uuid.UUID(id).String() }
func (id OrnamentID) String() string     { return uuid.UUID(id).String() }
func (id StateHistoryID) String() string { return uuid.UUID(id).String() }

// IsNil checks - used for service-layer validation and optional references.

func (id OwnerID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id AquariumID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id InhabitantID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id AccessoryID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id OrnamentID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id StateHistoryID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here. Services call IsNil() for business validation so
// store lookups can still return a proper "not found".
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+label+" format")
	}
	return id, nil
}

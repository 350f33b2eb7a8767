package audit

import (
	"time"

	id "aquaria/pkg/domain"
)

// Event is one audited action. It stays transport-agnostic so the text log
// and the database sink share it.
type Event struct {
	Timestamp time.Time
	OwnerID   id.OwnerID
	Action    string
	Subject   string
	RequestID string
}

type AuditEvent string

const (
	EventOwnerRegistered       AuditEvent = "owner_registered"
	EventOwnerLoggedIn         AuditEvent = "owner_logged_in"
	EventOwnerLoginFailed      AuditEvent = "owner_login_failed"
	EventOwnerLockedOut        AuditEvent = "owner_locked_out"
	EventOwnerLoggedOut        AuditEvent = "owner_logged_out"
	EventAquariumCreated       AuditEvent = "aquarium_created"
	EventAquariumUpdated       AuditEvent = "aquarium_updated"
	EventAquariumDeleted       AuditEvent = "aquarium_deleted"
	EventStateChanged          AuditEvent = "aquarium_state_changed"
	EventStateOverridden       AuditEvent = "aquarium_state_overridden"
	EventInhabitantCreated     AuditEvent = "inhabitant_created"
	EventInhabitantUpdated     AuditEvent = "inhabitant_updated"
	EventInhabitantDeleted     AuditEvent = "inhabitant_deleted"
	EventInhabitantAdded       AuditEvent = "inhabitant_added"
	EventInhabitantRemoved     AuditEvent = "inhabitant_removed"
	EventInhabitantTransferred AuditEvent = "inhabitant_transferred"
	EventAccessoryCreated      AuditEvent = "accessory_created"
	EventAccessoryUpdated      AuditEvent = "accessory_updated"
	EventAccessoryDeleted      AuditEvent = "accessory_deleted"
	EventAccessoryAttached     AuditEvent = "accessory_attached"
	EventAccessoryDetached     AuditEvent = "accessory_detached"
	EventAccessoryTransferred  AuditEvent = "accessory_transferred"
	EventOrnamentCreated       AuditEvent = "ornament_created"
	EventOrnamentUpdated       AuditEvent = "ornament_updated"
	EventOrnamentDeleted       AuditEvent = "ornament_deleted"
	EventOrnamentAttached      AuditEvent = "ornament_attached"
	EventOrnamentDetached      AuditEvent = "ornament_detached"
	EventOrnamentTransferred   AuditEvent = "ornament_transferred"
)

package validation

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024
)

// String element length limits
const (
	// MaxNameLength bounds aquarium, ornament, and owner names.
	MaxNameLength = 50

	// MaxSpeciesLength bounds inhabitant species names.
	MaxSpeciesLength = 100

	// MaxModelLength bounds accessory model and serial number values.
	MaxModelLength = 50

	// MaxColorLength bounds the free-form color field on every item.
	MaxColorLength = 50

	// MaxDescriptionLength bounds description fields.
	MaxDescriptionLength = 500

	// MaxEmailLength is the maximum length of an email address.
	MaxEmailLength = 255

	// MinPasswordLength is the minimum owner password length.
	MinPasswordLength = 8

	// MaxPasswordLength matches the bcrypt input limit.
	MaxPasswordLength = 72
)

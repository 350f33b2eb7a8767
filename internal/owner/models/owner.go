package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/mssola/useragent"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/validation"
)

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleAdmin Role = "ADMIN"
)

// Owner is a registered user who can own aquariums and items.
// PasswordHash never leaves the service layer.
type Owner struct {
	ID              id.OwnerID
	FirstName       string
	LastName        string
	Email           string
	PasswordHash    string
	Role            Role
	LastLogin       *time.Time
	LastLoginClient string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewOwnerParams struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// NewOwner validates names and email; the password is validated before hashing.
func NewOwner(ownerID id.OwnerID, p NewOwnerParams, now time.Time) (*Owner, error) {
	email := NormalizeEmail(p.Email)
	if err := validation.First(
		validation.Required("First name", p.FirstName, validation.MaxNameLength),
		validation.Required("Last name", p.LastName, validation.MaxNameLength),
		validation.Email(email),
	); err != nil {
		return nil, err
	}
	if p.PasswordHash == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "Password hash cannot be empty")
	}
	return &Owner{
		ID:           ownerID,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Email:        email,
		PasswordHash: p.PasswordHash,
		Role:         RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidatePassword applies the registration password policy.
func ValidatePassword(password string) error {
	if len(password) < validation.MinPasswordLength {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("Password must be at least %d characters", validation.MinPasswordLength))
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (o *Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}

// RecordLogin stamps the login time and the client described by userAgent.
func (o *Owner) RecordLogin(userAgent string, now time.Time) {
	o.LastLogin = &now
	o.LastLoginClient = DescribeClient(userAgent)
	o.UpdatedAt = now
}

// DescribeClient renders a user agent as "Browser major on OS".
func DescribeClient(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return "unknown"
	}
	ua := useragent.New(userAgent)
	if ua.Bot() {
		return "bot"
	}
	browser, version := ua.Browser()
	if browser == "" {
		browser = "unknown client"
	}
	if major, _, _ := strings.Cut(version, "."); major != "" {
		browser += " " + major
	}
	if os := ua.OS(); os != "" {
		return browser + " on " + os
	}
	return browser
}

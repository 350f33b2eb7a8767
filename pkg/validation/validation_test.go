package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "aquaria/pkg/domain-errors"
)

type ValidationSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationSuite))
}

type waterType string

const (
	fresh waterType = "FRESHWATER"
	salt  waterType = "SALTWATER"
)

func (s *ValidationSuite) TestNotEmpty() {
	s.NoError(NotEmpty("Name", "Reef"))

	err := NotEmpty("Name", "   ")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal("Name cannot be empty", err.Error())
}

func (s *ValidationSuite) TestRequired() {
	s.NoError(Required("Name", "Reef", 10))
	s.Error(Required("Name", "", 10))
	err := Required("Name", strings.Repeat("a", 11), 10)
	s.Require().Error(err)
	s.Contains(err.Error(), "exceeds max length of 10")
}

func (s *ValidationSuite) TestPositive() {
	s.NoError(Positive("Count", 1))
	s.NoError(Positive("Length", 0.5))

	err := Positive("Count", 0)
	s.Require().Error(err)
	s.Equal("Count must be positive", err.Error())
	s.Error(Positive("Width", -1.0))
}

func (s *ValidationSuite) TestNonNegative() {
	s.NoError(NonNegative("Temperature", 0.0))
	s.Error(NonNegative("Temperature", -0.1))
}

func (s *ValidationSuite) TestInRange() {
	s.NoError(InRange("Temperature", 25.0, 0, 40))
	s.NoError(InRange("Temperature", 0.0, 0, 40))
	s.NoError(InRange("Temperature", 40.0, 0, 40))
	err := InRange("Temperature", 41.0, 0, 40)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ValidationSuite) TestEmail() {
	s.NoError(Email("keeper@example.com"))
	s.NoError(Email("first.last+fish@reef.co.uk"))

	for _, bad := range []string{"", "keeper", "keeper@", "@example.com", "a b@example.com"} {
		err := Email(bad)
		s.Require().Error(err, bad)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), bad)
	}
}

func (s *ValidationSuite) TestOneOf() {
	v, err := OneOf("Water type", " freshwater ", fresh, salt)
	s.Require().NoError(err)
	s.Equal(fresh, v)

	_, err = OneOf("Water type", "brackish", fresh, salt)
	s.Require().Error(err)
	s.Equal("Water type must be one of [FRESHWATER SALTWATER]", err.Error())
}

func (s *ValidationSuite) TestFirst() {
	s.NoError(First(nil, nil))
	err := First(nil, NotEmpty("Model", ""), NotEmpty("Serial number", ""))
	s.Require().Error(err)
	s.Equal("Model cannot be empty", err.Error())
}

type createRequest struct {
	Name      string `json:"name" validate:"required,notblank,max=50"`
	OwnerMail string `json:"owner_mail" validate:"omitempty,email"`
	Count     int    `json:"count" validate:"gt=0"`
}

func (s *ValidationSuite) TestValidateStruct() {
	s.NoError(Validate(&createRequest{Name: "Reef", Count: 1}))

	err := Validate(&createRequest{Name: "  ", Count: 1})
	s.Require().Error(err)
	s.Equal("name must not be blank", err.Error())

	err = Validate(&createRequest{Name: "Reef", Count: 0})
	s.Require().Error(err)
	s.Equal("count must be greater than 0", err.Error())

	err = Validate(&createRequest{Name: "Reef", Count: 1, OwnerMail: "nope"})
	s.Require().Error(err)
	s.Equal("owner_mail must be a valid email", err.Error())
}

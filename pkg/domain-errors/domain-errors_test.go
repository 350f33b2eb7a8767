package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives shared by every layer.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "aquarium not found"}
		s.Equal("aquarium not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeOwnership}
		s.Equal("ownership_violation", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("database connection failed")
		err := &Error{Code: CodeInternal, Message: "service error", Err: inner}
		s.Equal(inner, err.Unwrap())
		s.Equal(inner, errors.Unwrap(err))
	})

	s.Run("returns nil when no wrapped error", func() {
		err := &Error{Code: CodeNotFound, Message: "not found"}
		s.Nil(err.Unwrap())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeConflict, Message: "fish eats snail"}
		err2 := &Error{Code: CodeConflict, Message: "already assigned"}
		s.True(errors.Is(err1, err2))
	})

	s.Run("different codes do not match", func() {
		err1 := &Error{Code: CodeConflict}
		err2 := &Error{Code: CodeInvalidTransition}
		s.False(errors.Is(err1, err2))
	})

	s.Run("non domain target does not match", func() {
		err := &Error{Code: CodeConflict}
		s.False(err.Is(errors.New("conflict")))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code", func() {
		inner := New(CodeOwnership, "not your aquarium")
		wrapped := Wrap(inner, CodeInternal, "add inhabitant failed")
		s.True(HasCode(wrapped, CodeOwnership))
		s.Equal("add inhabitant failed", wrapped.Error())
	})

	s.Run("applies code to plain errors", func() {
		wrapped := Wrap(errors.New("boom"), CodeInternal, "save failed")
		s.True(HasCode(wrapped, CodeInternal))
	})
}

func (s *DomainErrorsSuite) TestCodeOf() {
	s.Equal(CodeInvalidTransition, CodeOf(fmt.Errorf("ctx: %w", New(CodeInvalidTransition, "nope"))))
	s.Equal(CodeInternal, CodeOf(errors.New("plain")))
	s.False(HasCode(nil, CodeNotFound))
}

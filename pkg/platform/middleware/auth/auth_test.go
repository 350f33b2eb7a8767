package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"aquaria/pkg/requestcontext"
)

const testOwnerID = "550e8400-e29b-41d4-a716-446655440001"

type MockJWTValidator struct {
	mock.Mock
}

func (m *MockJWTValidator) ValidateToken(tokenString string) (*JWTClaims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*JWTClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTokenRevocationChecker struct {
	mock.Mock
}

func (m *MockTokenRevocationChecker) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

type AuthMiddlewareSuite struct {
	suite.Suite
	validator *MockJWTValidator
	revoker   *MockTokenRevocationChecker
	logger    *slog.Logger
	next      *captureHandler
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.validator = new(MockJWTValidator)
	s.revoker = new(MockTokenRevocationChecker)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.next = &captureHandler{}
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.validator.AssertExpectations(s.T())
	s.revoker.AssertExpectations(s.T())
}

func (s *AuthMiddlewareSuite) serve(checker TokenRevocationChecker, authHeader string) *httptest.ResponseRecorder {
	handler := RequireAuth(s.validator, checker, s.logger)(s.next)
	req := httptest.NewRequest(http.MethodGet, "/api/aquariums", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareSuite) TestValidTokenPopulatesContext() {
	exp := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	s.validator.On("ValidateToken", "good").Return(&JWTClaims{
		OwnerID: testOwnerID, Role: "OWNER", JTI: "jti-1", ExpiresAt: exp,
	}, nil)
	s.revoker.On("IsTokenRevoked", mock.Anything, "jti-1").Return(false, nil)

	w := s.serve(s.revoker, "Bearer good")

	s.Require().True(s.next.called)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(testOwnerID, GetOwnerID(s.next.ctx).String())
	s.Equal("OWNER", requestcontext.Role(s.next.ctx))
	s.Equal("jti-1", requestcontext.TokenID(s.next.ctx))
	s.Equal(exp, requestcontext.TokenExpiry(s.next.ctx))
}

func (s *AuthMiddlewareSuite) TestRejections() {
	s.Run("missing header", func() {
		w := s.serve(nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.JSONEq(`{"error":"unauthorized","error_description":"Missing or invalid Authorization header"}`, w.Body.String())
	})

	s.Run("wrong scheme", func() {
		w := s.serve(nil, "Basic dXNlcjpwYXNz")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("invalid token", func() {
		s.validator.On("ValidateToken", "bad").Return(nil, errors.New("expired")).Once()
		w := s.serve(nil, "Bearer bad")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.JSONEq(`{"error":"unauthorized","error_description":"Invalid or expired token"}`, w.Body.String())
	})

	s.Run("malformed owner id", func() {
		s.validator.On("ValidateToken", "odd").Return(&JWTClaims{OwnerID: "nope", JTI: "j"}, nil).Once()
		w := s.serve(nil, "Bearer odd")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("revoked token", func() {
		s.validator.On("ValidateToken", "old").Return(&JWTClaims{OwnerID: testOwnerID, JTI: "jti-old"}, nil).Once()
		s.revoker.On("IsTokenRevoked", mock.Anything, "jti-old").Return(true, nil).Once()
		w := s.serve(s.revoker, "Bearer old")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.JSONEq(`{"error":"unauthorized","error_description":"Token has been revoked"}`, w.Body.String())
	})

	s.Run("missing jti with revocation enabled", func() {
		s.validator.On("ValidateToken", "nojti").Return(&JWTClaims{OwnerID: testOwnerID}, nil).Once()
		w := s.serve(s.revoker, "Bearer nojti")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("revocation lookup fails", func() {
		s.validator.On("ValidateToken", "flaky").Return(&JWTClaims{OwnerID: testOwnerID, JTI: "jti-f"}, nil).Once()
		s.revoker.On("IsTokenRevoked", mock.Anything, "jti-f").Return(false, errors.New("redis down")).Once()
		w := s.serve(s.revoker, "Bearer flaky")
		s.Equal(http.StatusInternalServerError, w.Code)
	})

	s.False(s.next.called)
}

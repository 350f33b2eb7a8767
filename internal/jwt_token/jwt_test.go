package jwttoken

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/requestcontext"
)

var (
	ownerID    = id.NewOwnerID()
	jwtService = NewJWTService("test-signing-key", "test-issuer", time.Minute)
)

func Test_GenerateOwnerToken(t *testing.T) {
	issued, err := jwtService.GenerateOwnerToken(context.Background(), ownerID, "OWNER")
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
	require.NotEmpty(t, issued.JTI)

	claims, err := jwtService.ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, ownerID.String(), claims.OwnerID)
	assert.Equal(t, "OWNER", claims.Role)
	assert.Equal(t, issued.JTI, claims.ID)
	assert.Equal(t, issued.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func Test_GenerateOwnerToken_RequiresOwner(t *testing.T) {
	_, err := jwtService.GenerateOwnerToken(context.Background(), id.OwnerID{}, "OWNER")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func Test_ValidateToken_Expired(t *testing.T) {
	ctx := requestcontext.WithTime(context.Background(), time.Now().Add(-time.Hour))
	issued, err := jwtService.GenerateOwnerToken(ctx, ownerID, "OWNER")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(issued.Token)
	require.ErrorContains(t, err, "token expired")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_Invalid(t *testing.T) {
	_, err := jwtService.ValidateToken("not-a-token")
	require.ErrorContains(t, err, "invalid token")

	other := NewJWTService("test-signing-key", "someone-else", time.Minute)
	issued, err := other.GenerateOwnerToken(context.Background(), ownerID, "OWNER")
	require.NoError(t, err)
	_, err = jwtService.ValidateToken(issued.Token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	wrongKey := NewJWTService("another-key", "test-issuer", time.Minute)
	issued, err = wrongKey.GenerateOwnerToken(context.Background(), ownerID, "OWNER")
	require.NoError(t, err)
	_, err = jwtService.ValidateToken(issued.Token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_RejectsAlgorithmConfusion(t *testing.T) {
	claims := OwnerTokenClaims{
		OwnerID: ownerID.String(),
		Role:    "OWNER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "test-issuer",
			ID:        uuid.NewString(),
		},
	}
	cases := []struct {
		name       string
		signMethod jwt.SigningMethod
		signKey    any
	}{
		{name: "hs512 header rejected", signMethod: jwt.SigningMethodHS512, signKey: []byte("test-signing-key")},
		{name: "alg none rejected", signMethod: jwt.SigningMethodNone, signKey: jwt.UnsafeAllowNoneSignatureType},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, err := jwt.NewWithClaims(tt.signMethod, claims).SignedString(tt.signKey)
			require.NoError(t, err)
			_, err = jwtService.ValidateToken(tokenString)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		})
	}
}

func Test_ValidateToken_RequiresJTI(t *testing.T) {
	claims := OwnerTokenClaims{
		OwnerID: ownerID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			Issuer:    "test-issuer",
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	_, err = jwtService.ValidateToken(tokenString)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_Adapter(t *testing.T) {
	issued, err := jwtService.GenerateOwnerToken(context.Background(), ownerID, "ADMIN")
	require.NoError(t, err)

	claims, err := NewJWTServiceAdapter(jwtService).ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, ownerID.String(), claims.OwnerID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, issued.JTI, claims.JTI)
	assert.Equal(t, issued.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

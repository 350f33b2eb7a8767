package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "aquaria/pkg/domain"
)

type RequestContextSuite struct {
	suite.Suite
}

func TestRequestContextSuite(t *testing.T) {
	suite.Run(t, new(RequestContextSuite))
}

func (s *RequestContextSuite) TestOwnerID() {
	s.Run("set", func() {
		ownerID := id.OwnerID(uuid.New())
		ctx := WithOwnerID(context.Background(), ownerID)
		s.Equal(ownerID, OwnerID(ctx))
	})

	s.Run("missing", func() {
		s.True(OwnerID(context.Background()).IsNil())
	})
}

func (s *RequestContextSuite) TestStrings() {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithRole(ctx, "ADMIN")
	ctx = WithClientMetadata(ctx, "10.0.0.1", "curl/8.0")
	s.Equal("req-1", RequestID(ctx))
	s.Equal("ADMIN", Role(ctx))
	s.Equal("10.0.0.1", ClientIP(ctx))
	s.Equal("curl/8.0", UserAgent(ctx))
	s.Empty(RequestID(context.Background()))
}

func (s *RequestContextSuite) TestToken() {
	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	ctx := WithToken(context.Background(), "jti-1", exp)
	s.Equal("jti-1", TokenID(ctx))
	s.Equal(exp, TokenExpiry(ctx))
	s.True(TokenExpiry(context.Background()).IsZero())
}

func (s *RequestContextSuite) TestNow() {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Equal(fixed, Now(WithTime(context.Background(), fixed)))
	s.WithinDuration(time.Now(), Now(context.Background()), time.Second)
}

// Package requestcontext stores request-scoped values (request id, caller
// identity, client metadata, request time) on a context.Context.
package requestcontext

import (
	"context"
	"time"

	id "aquaria/pkg/domain"
)

type (
	contextKeyRequestID   struct{}
	contextKeyOwnerID     struct{}
	contextKeyRole        struct{}
	contextKeyTokenID     struct{}
	contextKeyTokenExpiry struct{}
	contextKeyClientIP    struct{}
	contextKeyUserAgent   struct{}
	contextKeyTime        struct{}
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID{}, requestID)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyRequestID{}).(string)
	return v
}

func WithOwnerID(ctx context.Context, ownerID id.OwnerID) context.Context {
	return context.WithValue(ctx, contextKeyOwnerID{}, ownerID)
}

// OwnerID returns the authenticated owner, or the nil id when unauthenticated.
func OwnerID(ctx context.Context) id.OwnerID {
	v, _ := ctx.Value(contextKeyOwnerID{}).(id.OwnerID)
	return v
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, contextKeyRole{}, role)
}

func Role(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyRole{}).(string)
	return v
}

// WithToken records the presented token's id and expiry so logout can revoke it.
func WithToken(ctx context.Context, jti string, expiresAt time.Time) context.Context {
	ctx = context.WithValue(ctx, contextKeyTokenID{}, jti)
	return context.WithValue(ctx, contextKeyTokenExpiry{}, expiresAt)
}

func TokenID(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyTokenID{}).(string)
	return v
}

func TokenExpiry(ctx context.Context) time.Time {
	v, _ := ctx.Value(contextKeyTokenExpiry{}).(time.Time)
	return v
}

func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, contextKeyClientIP{}, clientIP)
	return context.WithValue(ctx, contextKeyUserAgent{}, userAgent)
}

func ClientIP(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyClientIP{}).(string)
	return v
}

func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(contextKeyUserAgent{}).(string)
	return v
}

// WithTime pins "now" for everything downstream of ctx.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, contextKeyTime{}, t)
}

// Now returns the request-scoped time, falling back to the wall clock for
// callers outside an HTTP request.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(contextKeyTime{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

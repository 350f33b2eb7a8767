package audit

import (
	"context"
	"log/slog"

	id "aquaria/pkg/domain"
	"aquaria/pkg/requestcontext"
)

// Emitter persists audit events. Satisfied by the postgres store.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Logger writes audit lines to the text log and, when an emitter is set, to
// durable storage.
type Logger struct {
	textLogger *slog.Logger
	emitter    Emitter
}

// NewLogger creates an audit logger. Both arguments may be nil.
func NewLogger(textLogger *slog.Logger, emitter Emitter) *Logger {
	return &Logger{
		textLogger: textLogger,
		emitter:    emitter,
	}
}

// Log records event with alternating key/value attributes. The request id
// from ctx is appended automatically.
//
// Usage:
//
//	logger.Log(ctx, "aquarium_created", "owner_id", ownerID.String(), "aquarium_id", aquariumID.String())
func (l *Logger) Log(ctx context.Context, event AuditEvent, attributes ...any) error {
	if l == nil {
		return nil
	}
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	l.logToText(ctx, string(event), attributes)
	return l.emit(ctx, event, requestID, attributes)
}

func (l *Logger) logToText(ctx context.Context, event string, attributes []any) {
	if l.textLogger == nil {
		return
	}
	args := append(attributes, "event", event, "log_type", "audit")
	l.textLogger.InfoContext(ctx, event, args...)
}

func (l *Logger) emit(ctx context.Context, event AuditEvent, requestID string, attributes []any) error {
	if l.emitter == nil {
		return nil
	}
	ownerID, _ := id.ParseOwnerID(extractString(attributes, "owner_id")) //nolint:errcheck // best-effort extraction

	return l.emitter.Emit(ctx, Event{
		Timestamp: requestcontext.Now(ctx),
		OwnerID:   ownerID,
		Action:    string(event),
		Subject:   subject(attributes),
		RequestID: requestID,
	})
}

// subject picks the most specific entity id present in attributes.
func subject(attributes []any) string {
	for _, key := range []string{"inhabitant_id", "accessory_id", "ornament_id", "aquarium_id", "owner_id"} {
		if v := extractString(attributes, key); v != "" {
			return v
		}
	}
	return ""
}

func extractString(attributes []any, key string) string {
	for i := 0; i+1 < len(attributes); i += 2 {
		if k, ok := attributes[i].(string); ok && k == key {
			switch v := attributes[i+1].(type) {
			case string:
				return v
			case interface{ String() string }:
				return v.String()
			}
		}
	}
	return ""
}

package service

import (
	"log/slog"

	aquariummetrics "aquaria/internal/aquarium/metrics"
	"aquaria/internal/platform/tracing"
	"aquaria/pkg/platform/audit"
)

// serviceConfig holds optional dependencies.
type serviceConfig struct {
	logger       *slog.Logger
	auditEmitter audit.Emitter
	metrics      *aquariummetrics.Metrics
	tracer       tracing.Tracer
	tx           StoreTx
}

// Option configures the service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

// WithAuditEmitter persists audit events in addition to the audit log lines.
func WithAuditEmitter(emitter audit.Emitter) Option {
	return func(c *serviceConfig) {
		c.auditEmitter = emitter
	}
}

func WithMetrics(m *aquariummetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracing.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}

// WithTx replaces the in-memory lock with a real transaction runner.
func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

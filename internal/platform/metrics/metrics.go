// Package metrics holds the owner and authentication counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	OwnersRegistered prometheus.Counter
	Logins           prometheus.Counter
	AuthFailures     prometheus.Counter
	Logouts          prometheus.Counter
	Lockouts         prometheus.Counter
}

// New registers the counters on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OwnersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquaria_owners_registered_total",
			Help: "Total number of owners registered",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquaria_logins_total",
			Help: "Total number of successful logins",
		}),
		AuthFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquaria_auth_failures_total",
			Help: "Total number of rejected login attempts",
		}),
		Logouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquaria_logouts_total",
			Help: "Total number of revoked tokens",
		}),
		Lockouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquaria_login_lockouts_total",
			Help: "Total number of accounts locked after repeated login failures",
		}),
	}
}

func (m *Metrics) IncrementOwnersRegistered() { m.OwnersRegistered.Inc() }
func (m *Metrics) IncrementLogins()           { m.Logins.Inc() }
func (m *Metrics) IncrementAuthFailures()     { m.AuthFailures.Inc() }
func (m *Metrics) IncrementLogouts()          { m.Logouts.Inc() }
func (m *Metrics) IncrementLockouts()         { m.Lockouts.Inc() }

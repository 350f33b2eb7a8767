package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	AquariumsCreated  prometheus.Counter
	AquariumsDeleted  prometheus.Counter
	StateTransitions  *prometheus.CounterVec
	ItemsCreated      *prometheus.CounterVec
	MembershipChanges *prometheus.CounterVec
	Rejections        *prometheus.CounterVec
	AggregateLoad     prometheus.Histogram
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AquariumsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquaria_aquariums_created_total",
			Help: "Total number of aquariums created",
		}),
		AquariumsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "aquaria_aquariums_deleted_total",
			Help: "Total number of aquariums deleted",
		}),
		StateTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aquaria_state_transitions_total",
			Help: "Lifecycle state changes by origin and target state",
		}, []string{"from", "to"}),
		ItemsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aquaria_items_created_total",
			Help: "Inhabitants, accessories, and ornaments created",
		}, []string{"item"}),
		MembershipChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aquaria_membership_changes_total",
			Help: "Items added to, removed from, or transferred between aquariums",
		}, []string{"item", "action"}),
		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "aquaria_rule_rejections_total",
			Help: "Aggregate operations rejected by a domain rule, by error code",
		}, []string{"code"}),
		AggregateLoad: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "aquaria_aggregate_load_duration_seconds",
			Help:    "Time to load an aquarium with all of its members",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementAquariumsCreated() { m.AquariumsCreated.Inc() }
func (m *Metrics) IncrementAquariumsDeleted() { m.AquariumsDeleted.Inc() }

func (m *Metrics) IncrementStateTransition(from, to string) {
	m.StateTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncrementItemCreated(item string) {
	m.ItemsCreated.WithLabelValues(item).Inc()
}

func (m *Metrics) IncrementMembership(item, action string) {
	m.MembershipChanges.WithLabelValues(item, action).Inc()
}

func (m *Metrics) IncrementRejection(code string) {
	m.Rejections.WithLabelValues(code).Inc()
}

func (m *Metrics) ObserveAggregateLoad(start time.Time) {
	m.AggregateLoad.Observe(time.Since(start).Seconds())
}

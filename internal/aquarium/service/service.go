package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	aquariummetrics "aquaria/internal/aquarium/metrics"
	"aquaria/internal/aquarium/models"
	"aquaria/internal/platform/tracing"
	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/platform/audit"
	"aquaria/pkg/platform/sentinel"
	txcontext "aquaria/pkg/platform/tx"
)

// Service orchestrates aquariums and the items they hold. Every mutation
// loads the aggregate inside one transaction, applies a single aggregate
// operation, and saves every row it touched.
type Service struct {
	aquariums   AquariumStore
	inhabitants InhabitantStore
	accessories AccessoryStore
	ornaments   OrnamentStore
	history     HistoryStore

	audit   *audit.Logger
	metrics *aquariummetrics.Metrics
	tracer  tracing.Tracer
	tx      StoreTx
}

func New(stores Stores, opts ...Option) *Service {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	tx := cfg.tx
	if tx == nil {
		tx = newInMemoryStoreTx()
	}
	tracer := cfg.tracer
	if tracer == nil {
		tracer = tracing.NewNoop()
	}
	return &Service{
		aquariums:   stores.Aquariums,
		inhabitants: stores.Inhabitants,
		accessories: stores.Accessories,
		ornaments:   stores.Ornaments,
		history:     stores.History,
		audit:       audit.NewLogger(cfg.logger, cfg.auditEmitter),
		metrics:     cfg.metrics,
		tracer:      tracer,
		tx:          tx,
	}
}

// mutate runs fn in a transaction under a span named after op.
func (s *Service) mutate(ctx context.Context, op string, fn func(ctx context.Context) error, attrs ...tracing.Attribute) error {
	ctx, span := s.tracer.Start(ctx, "aquarium."+op, attrs...)
	err := s.tx.RunInTx(ctx, fn)
	if err != nil {
		s.recordRejection(err)
	}
	span.End(err)
	return err
}

// loadAquarium returns the aquarium with all three member collections. The
// collections load in parallel outside a transaction and one at a time
// inside one, since a database transaction serves a single query at a time.
func (s *Service) loadAquarium(ctx context.Context, aquariumID id.AquariumID) (*models.Aquarium, error) {
	if aquariumID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "aquarium ID required")
	}
	start := time.Now()
	a, err := s.aquariums.FindByID(ctx, aquariumID)
	if err != nil {
		return nil, wrapStoreErr(err, "aquarium", "failed to load aquarium")
	}
	rec := a.Record()

	g, gctx := errgroup.WithContext(ctx)
	if _, inTx := txcontext.From(ctx); inTx {
		g.SetLimit(1)
	}
	g.Go(func() error {
		var err error
		rec.Inhabitants, err = s.inhabitants.ListByAquarium(gctx, aquariumID)
		return err
	})
	g.Go(func() error {
		var err error
		rec.Accessories, err = s.accessories.ListByAquarium(gctx, aquariumID)
		return err
	})
	g.Go(func() error {
		var err error
		rec.Ornaments, err = s.ornaments.ListByAquarium(gctx, aquariumID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load aquarium members")
	}
	if s.metrics != nil {
		s.metrics.ObserveAggregateLoad(start)
	}
	return models.ReconstructAquarium(rec), nil
}

// loadTransferPair loads both ends of a transfer in ascending id order so two
// opposing transfers take their row locks in the same order.
func (s *Service) loadTransferPair(ctx context.Context, sourceID, targetID id.AquariumID) (source, target *models.Aquarium, err error) {
	first, second := sourceID, targetID
	if targetID.String() < sourceID.String() {
		first, second = targetID, sourceID
	}
	a, err := s.loadAquarium(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.loadAquarium(ctx, second)
	if err != nil {
		return nil, nil, err
	}
	if first == sourceID {
		return a, b, nil
	}
	return b, a, nil
}

// ownedAquarium loads the aquarium row without members and checks ownership.
func (s *Service) ownedAquarium(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error) {
	if aquariumID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "aquarium ID required")
	}
	a, err := s.aquariums.FindByID(ctx, aquariumID)
	if err != nil {
		return nil, wrapStoreErr(err, "aquarium", "failed to load aquarium")
	}
	if err := a.ValidateOwnership(ownerID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) saveAquarium(ctx context.Context, a *models.Aquarium) error {
	if err := s.aquariums.Save(ctx, a); err != nil {
		return wrapStoreErr(err, "aquarium", "failed to save aquarium")
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, attributes ...any) error {
	if err := s.audit.Log(ctx, event, attributes...); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record audit event")
	}
	return nil
}

func (s *Service) recordRejection(err error) {
	if s.metrics == nil {
		return
	}
	switch code := dErrors.CodeOf(err); code {
	case dErrors.CodeConflict, dErrors.CodeInvalidTransition, dErrors.CodeOwnership, dErrors.CodeValidation:
		s.metrics.IncrementRejection(string(code))
	}
}

func (s *Service) incrementMembership(item, action string) {
	if s.metrics != nil {
		s.metrics.IncrementMembership(item, action)
	}
}

func (s *Service) incrementItemCreated(item string) {
	if s.metrics != nil {
		s.metrics.IncrementItemCreated(item)
	}
}

// wrapStoreErr translates a store error into a domain error exactly once.
func wrapStoreErr(err error, entity, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, entity+" not found")
	case errors.Is(err, sentinel.ErrAlreadyUsed), errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, action)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, action)
	}
}

func findMember[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

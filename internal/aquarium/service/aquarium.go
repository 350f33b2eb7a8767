package service

import (
	"context"
	"errors"
	"time"

	"aquaria/internal/aquarium/models"
	"aquaria/internal/platform/tracing"
	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/platform/audit"
	"aquaria/pkg/platform/sentinel"
	"aquaria/pkg/requestcontext"
)

func (s *Service) CreateAquarium(ctx context.Context, ownerID id.OwnerID, cmd CreateAquariumCommand) (*models.Aquarium, error) {
	var created *models.Aquarium
	err := s.mutate(ctx, "CreateAquarium", func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		a, err := models.NewAquarium(id.NewAquariumID(), models.NewAquariumParams{
			Name:        cmd.Name,
			Length:      cmd.Length,
			Width:       cmd.Width,
			Height:      cmd.Height,
			Substrate:   models.Substrate(cmd.Substrate),
			WaterType:   models.WaterType(cmd.WaterType),
			Temperature: cmd.Temperature,
			State:       models.State(cmd.State),
			Color:       cmd.Color,
			Description: cmd.Description,
			OwnerID:     ownerID,
		}, now)
		if err != nil {
			return err
		}
		if err := a.ValidateOwnership(ownerID); err != nil {
			return err
		}
		if err := s.aquariums.Create(txCtx, a); err != nil {
			return wrapStoreErr(err, "aquarium", "failed to create aquarium")
		}
		if err := s.openInterval(txCtx, a.ID, a.State(), a.CurrentStateStartTime()); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventAquariumCreated,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "state", a.State()); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementAquariumsCreated()
	}
	return created, nil
}

// GetAquarium returns the aquarium with its members.
func (s *Service) GetAquarium(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error) {
	ctx, span := s.tracer.Start(ctx, "aquarium.GetAquarium", tracing.String("aquarium_id", aquariumID.String()))
	a, err := s.loadAquarium(ctx, aquariumID)
	if err == nil {
		err = a.ValidateOwnership(ownerID)
	}
	span.End(err)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAquariums returns the owner's aquariums without their members.
func (s *Service) ListAquariums(ctx context.Context, ownerID id.OwnerID) ([]*models.Aquarium, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeOwnership, "requesting owner ID is required")
	}
	list, err := s.aquariums.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list aquariums")
	}
	return list, nil
}

func (s *Service) UpdateAquarium(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, u models.AquariumUpdate) (*models.Aquarium, error) {
	var updated *models.Aquarium
	err := s.mutate(ctx, "UpdateAquarium", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		if err := a.Update(u, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.saveAquarium(txCtx, a); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventAquariumUpdated, "owner_id", ownerID.String(), "aquarium_id", a.ID.String()); err != nil {
			return err
		}
		updated = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAquarium releases every member, then removes the history and the
// aquarium itself. Released items keep existing, unassigned.
func (s *Service) DeleteAquarium(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) error {
	err := s.mutate(ctx, "DeleteAquarium", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		detached, err := a.DetachAll(ownerID, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		for _, i := range detached.Inhabitants {
			if err := s.inhabitants.Save(txCtx, i); err != nil {
				return wrapStoreErr(err, "inhabitant", "failed to release inhabitant")
			}
		}
		for _, acc := range detached.Accessories {
			if err := s.accessories.Save(txCtx, acc); err != nil {
				return wrapStoreErr(err, "accessory", "failed to release accessory")
			}
		}
		for _, o := range detached.Ornaments {
			if err := s.ornaments.Save(txCtx, o); err != nil {
				return wrapStoreErr(err, "ornament", "failed to release ornament")
			}
		}
		if err := s.history.DeleteByAquarium(txCtx, a.ID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete state history")
		}
		if err := s.aquariums.Delete(txCtx, a.ID); err != nil {
			return wrapStoreErr(err, "aquarium", "failed to delete aquarium")
		}
		return s.logAudit(txCtx, audit.EventAquariumDeleted, "owner_id", ownerID.String(), "aquarium_id", a.ID.String(),
			"released_inhabitants", len(detached.Inhabitants),
			"released_accessories", len(detached.Accessories),
			"released_ornaments", len(detached.Ornaments))
	}, tracing.String("aquarium_id", aquariumID.String()))
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.IncrementAquariumsDeleted()
	}
	return nil
}

// TransitionState moves the aquarium through the lifecycle table.
func (s *Service) TransitionState(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, target string) (*models.Aquarium, error) {
	state, err := models.ParseState(target)
	if err != nil {
		return nil, err
	}
	return s.changeState(ctx, "TransitionState", ownerID, aquariumID, audit.EventStateChanged,
		func(a *models.Aquarium, now time.Time) (models.StateChange, error) {
			return a.TransitionTo(state, ownerID, now)
		})
}

// OverrideState sets any known state without consulting the lifecycle table.
func (s *Service) OverrideState(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, target string) (*models.Aquarium, error) {
	state, err := models.ParseState(target)
	if err != nil {
		return nil, err
	}
	return s.changeState(ctx, "OverrideState", ownerID, aquariumID, audit.EventStateOverridden,
		func(a *models.Aquarium, now time.Time) (models.StateChange, error) {
			return a.UpdateState(state, ownerID, now)
		})
}

func (s *Service) Activate(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error) {
	return s.changeState(ctx, "Activate", ownerID, aquariumID, audit.EventStateChanged,
		func(a *models.Aquarium, now time.Time) (models.StateChange, error) {
			return a.Activate(ownerID, now)
		})
}

func (s *Service) StartMaintenance(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error) {
	return s.changeState(ctx, "StartMaintenance", ownerID, aquariumID, audit.EventStateChanged,
		func(a *models.Aquarium, now time.Time) (models.StateChange, error) {
			return a.StartMaintenance(ownerID, now)
		})
}

func (s *Service) Deactivate(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error) {
	return s.changeState(ctx, "Deactivate", ownerID, aquariumID, audit.EventStateChanged,
		func(a *models.Aquarium, now time.Time) (models.StateChange, error) {
			return a.Deactivate(ownerID, now)
		})
}

type stateFunc func(a *models.Aquarium, now time.Time) (models.StateChange, error)

// changeState applies one state operation. A no-op change writes nothing;
// an actual change closes the open history interval and opens a new one.
func (s *Service) changeState(ctx context.Context, op string, ownerID id.OwnerID, aquariumID id.AquariumID, event audit.AuditEvent, apply stateFunc) (*models.Aquarium, error) {
	var (
		result *models.Aquarium
		change models.StateChange
	)
	err := s.mutate(ctx, op, func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		change, err = apply(a, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		result = a
		if !change.Changed() {
			return nil
		}
		if err := s.saveAquarium(txCtx, a); err != nil {
			return err
		}
		if err := s.closeInterval(txCtx, a.ID, change.At); err != nil {
			return err
		}
		if err := s.openInterval(txCtx, a.ID, change.To, change.At); err != nil {
			return err
		}
		return s.logAudit(txCtx, event, "owner_id", ownerID.String(), "aquarium_id", a.ID.String(),
			"from", change.From, "to", change.To)
	}, tracing.String("aquarium_id", aquariumID.String()))
	if err != nil {
		return nil, err
	}
	if change.Changed() && s.metrics != nil {
		s.metrics.IncrementStateTransition(string(change.From), string(change.To))
	}
	return result, nil
}

func (s *Service) openInterval(ctx context.Context, aquariumID id.AquariumID, state models.State, start time.Time) error {
	h, err := models.NewStateHistory(id.NewStateHistoryID(), aquariumID, state, start)
	if err != nil {
		return err
	}
	if err := s.history.Create(ctx, h); err != nil {
		return wrapStoreErr(err, "state history", "failed to record state history")
	}
	return nil
}

// closeInterval ends the open interval if there is one.
func (s *Service) closeInterval(ctx context.Context, aquariumID id.AquariumID, end time.Time) error {
	active, err := s.history.FindActive(ctx, aquariumID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load state history")
	}
	if err := active.End(end); err != nil {
		return err
	}
	if err := s.history.Save(ctx, active); err != nil {
		return wrapStoreErr(err, "state history", "failed to close state history")
	}
	return nil
}

// CurrentStateDuration returns whole minutes spent in the current state.
func (s *Service) CurrentStateDuration(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (int64, error) {
	a, err := s.ownedAquarium(ctx, ownerID, aquariumID)
	if err != nil {
		return 0, err
	}
	return a.CurrentStateDurationMinutes(requestcontext.Now(ctx)), nil
}

// StateHistory returns every interval oldest first.
func (s *Service) StateHistory(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) ([]*models.StateHistory, error) {
	if _, err := s.ownedAquarium(ctx, ownerID, aquariumID); err != nil {
		return nil, err
	}
	entries, err := s.history.ListByAquarium(ctx, aquariumID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load state history")
	}
	return entries, nil
}

func (s *Service) StateHistoryByState(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, state string) ([]*models.StateHistory, error) {
	parsed, err := models.ParseState(state)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedAquarium(ctx, ownerID, aquariumID); err != nil {
		return nil, err
	}
	entries, err := s.history.ListByAquariumAndState(ctx, aquariumID, parsed)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load state history")
	}
	return entries, nil
}

// StateHistoryBetween returns intervals that started at or after from and
// are either still open or ended at or before to.
func (s *Service) StateHistoryBetween(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, from, to time.Time) ([]*models.StateHistory, error) {
	if from.IsZero() || to.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "both from and to are required")
	}
	if to.Before(from) {
		return nil, dErrors.New(dErrors.CodeValidation, "from must not be after to")
	}
	if _, err := s.ownedAquarium(ctx, ownerID, aquariumID); err != nil {
		return nil, err
	}
	entries, err := s.history.ListByAquariumBetween(ctx, aquariumID, from, to)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load state history")
	}
	return entries, nil
}

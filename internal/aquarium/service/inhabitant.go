package service

import (
	"context"

	"aquaria/internal/aquarium/models"
	"aquaria/internal/platform/tracing"
	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/platform/audit"
	"aquaria/pkg/requestcontext"
)

const itemInhabitant = "inhabitant"

func newInhabitant(ctx context.Context, ownerID id.OwnerID, cmd CreateInhabitantCommand) (*models.Inhabitant, error) {
	return models.NewInhabitantFromKind(cmd.Kind, id.NewInhabitantID(), models.NewInhabitantParams{
		Species:   cmd.Species,
		Name:      cmd.Name,
		Color:     cmd.Color,
		Count:     cmd.Count,
		Schooling: cmd.Schooling,
		WaterType: models.WaterType(cmd.WaterType),
		Traits: models.Traits{
			AggressiveEater:     cmd.AggressiveEater,
			RequiresSpecialFood: cmd.RequiresSpecialFood,
			SnailEater:          cmd.SnailEater,
		},
		Description: cmd.Description,
		OwnerID:     ownerID,
	}, requestcontext.Now(ctx))
}

// CreateInhabitant creates an inhabitant that is not in any aquarium.
func (s *Service) CreateInhabitant(ctx context.Context, ownerID id.OwnerID, cmd CreateInhabitantCommand) (*models.Inhabitant, error) {
	var created *models.Inhabitant
	err := s.mutate(ctx, "CreateInhabitant", func(txCtx context.Context) error {
		i, err := newInhabitant(txCtx, ownerID, cmd)
		if err != nil {
			return err
		}
		if err := s.inhabitants.Create(txCtx, i); err != nil {
			return wrapStoreErr(err, itemInhabitant, "failed to create inhabitant")
		}
		if err := s.logAudit(txCtx, audit.EventInhabitantCreated,
			"owner_id", ownerID.String(), "inhabitant_id", i.ID.String(), "kind", i.Kind); err != nil {
			return err
		}
		created = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.incrementItemCreated(itemInhabitant)
	return created, nil
}

// CreateAndAddInhabitant creates an inhabitant directly inside an aquarium.
// Nothing is stored when the aquarium rejects it.
func (s *Service) CreateAndAddInhabitant(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, cmd CreateInhabitantCommand) (*models.Aquarium, error) {
	var result *models.Aquarium
	err := s.mutate(ctx, "CreateAndAddInhabitant", func(txCtx context.Context) error {
		i, err := newInhabitant(txCtx, ownerID, cmd)
		if err != nil {
			return err
		}
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		if err := a.AddInhabitant(i, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.inhabitants.Create(txCtx, i); err != nil {
			return wrapStoreErr(err, itemInhabitant, "failed to create inhabitant")
		}
		if err := s.saveAquarium(txCtx, a); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventInhabitantCreated,
			"owner_id", ownerID.String(), "inhabitant_id", i.ID.String(), "kind", i.Kind); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventInhabitantAdded,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "inhabitant_id", i.ID.String()); err != nil {
			return err
		}
		result = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementItemCreated(itemInhabitant)
	s.incrementMembership(itemInhabitant, "added")
	return result, nil
}

func (s *Service) GetInhabitant(ctx context.Context, ownerID id.OwnerID, inhabitantID id.InhabitantID) (*models.Inhabitant, error) {
	if inhabitantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inhabitant ID required")
	}
	i, err := s.inhabitants.FindByID(ctx, inhabitantID)
	if err != nil {
		return nil, wrapStoreErr(err, itemInhabitant, "failed to load inhabitant")
	}
	if err := i.ValidateOwnership(ownerID); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) ListInhabitants(ctx context.Context, ownerID id.OwnerID) ([]*models.Inhabitant, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeOwnership, "requesting owner ID is required")
	}
	list, err := s.inhabitants.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list inhabitants")
	}
	return list, nil
}

// UpdateInhabitant applies a partial update. Members are updated through
// their aquarium so water type and compatibility are re-checked.
func (s *Service) UpdateInhabitant(ctx context.Context, ownerID id.OwnerID, inhabitantID id.InhabitantID, u models.InhabitantUpdate) (*models.Inhabitant, error) {
	var updated *models.Inhabitant
	err := s.mutate(ctx, "UpdateInhabitant", func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		i, err := s.GetInhabitant(txCtx, ownerID, inhabitantID)
		if err != nil {
			return err
		}
		if i.IsAssigned() {
			a, err := s.loadAquarium(txCtx, i.AquariumID())
			if err != nil {
				return err
			}
			if err := a.UpdateInhabitant(i.ID, u, ownerID, now); err != nil {
				return err
			}
			member, ok := findMember(a.Inhabitants(), func(m *models.Inhabitant) bool { return m.ID == i.ID })
			if !ok {
				return dErrors.New(dErrors.CodeInternal, "inhabitant missing from its aquarium")
			}
			if err := s.saveAquarium(txCtx, a); err != nil {
				return err
			}
			i = member
		} else if err := i.Update(u, ownerID, now); err != nil {
			return err
		}
		if err := s.inhabitants.Save(txCtx, i); err != nil {
			return wrapStoreErr(err, itemInhabitant, "failed to save inhabitant")
		}
		if err := s.logAudit(txCtx, audit.EventInhabitantUpdated,
			"owner_id", ownerID.String(), "inhabitant_id", i.ID.String()); err != nil {
			return err
		}
		updated = i
		return nil
	}, tracing.String("inhabitant_id", inhabitantID.String()))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteInhabitant removes the inhabitant from its aquarium first, if any.
func (s *Service) DeleteInhabitant(ctx context.Context, ownerID id.OwnerID, inhabitantID id.InhabitantID) error {
	return s.mutate(ctx, "DeleteInhabitant", func(txCtx context.Context) error {
		i, err := s.GetInhabitant(txCtx, ownerID, inhabitantID)
		if err != nil {
			return err
		}
		if i.IsAssigned() {
			a, err := s.loadAquarium(txCtx, i.AquariumID())
			if err != nil {
				return err
			}
			if member, ok := findMember(a.Inhabitants(), func(m *models.Inhabitant) bool { return m.ID == i.ID }); ok {
				if err := a.RemoveInhabitant(member, ownerID, requestcontext.Now(txCtx)); err != nil {
					return err
				}
				if err := s.saveAquarium(txCtx, a); err != nil {
					return err
				}
			}
		}
		if err := s.inhabitants.Delete(txCtx, i.ID); err != nil {
			return wrapStoreErr(err, itemInhabitant, "failed to delete inhabitant")
		}
		return s.logAudit(txCtx, audit.EventInhabitantDeleted,
			"owner_id", ownerID.String(), "inhabitant_id", i.ID.String())
	}, tracing.String("inhabitant_id", inhabitantID.String()))
}

// AddInhabitant places an existing inhabitant into an aquarium.
func (s *Service) AddInhabitant(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, inhabitantID id.InhabitantID) (*models.Aquarium, error) {
	var result *models.Aquarium
	err := s.mutate(ctx, "AddInhabitant", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		i, ok := findMember(a.Inhabitants(), func(m *models.Inhabitant) bool { return m.ID == inhabitantID })
		if !ok {
			if i, err = s.loadInhabitant(txCtx, inhabitantID); err != nil {
				return err
			}
		}
		if err := a.AddInhabitant(i, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.saveInhabitantMembership(txCtx, a, i); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventInhabitantAdded,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "inhabitant_id", i.ID.String()); err != nil {
			return err
		}
		result = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()), tracing.String("inhabitant_id", inhabitantID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemInhabitant, "added")
	return result, nil
}

// RemoveInhabitant takes an inhabitant out of the aquarium it is in.
func (s *Service) RemoveInhabitant(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, inhabitantID id.InhabitantID) (*models.Aquarium, error) {
	var result *models.Aquarium
	err := s.mutate(ctx, "RemoveInhabitant", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		i, err := s.inhabitantMember(a, inhabitantID)
		if err != nil {
			return err
		}
		if err := a.RemoveInhabitant(i, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.saveInhabitantMembership(txCtx, a, i); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventInhabitantRemoved,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "inhabitant_id", i.ID.String()); err != nil {
			return err
		}
		result = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()), tracing.String("inhabitant_id", inhabitantID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemInhabitant, "removed")
	return result, nil
}

// TransferInhabitant moves an inhabitant between two aquariums. The target
// runs its full admission checks; on rejection the source keeps the inhabitant.
func (s *Service) TransferInhabitant(ctx context.Context, ownerID id.OwnerID, sourceID, targetID id.AquariumID, inhabitantID id.InhabitantID) (*models.Aquarium, error) {
	if sourceID == targetID {
		return nil, dErrors.New(dErrors.CodeValidation, "source and target aquarium must differ")
	}
	var result *models.Aquarium
	err := s.mutate(ctx, "TransferInhabitant", func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		source, target, err := s.loadTransferPair(txCtx, sourceID, targetID)
		if err != nil {
			return err
		}
		i, err := s.inhabitantMember(source, inhabitantID)
		if err != nil {
			return err
		}
		if err := source.RemoveInhabitant(i, ownerID, now); err != nil {
			return err
		}
		if err := target.AddInhabitant(i, ownerID, now); err != nil {
			return err
		}
		if err := s.saveInhabitantMembership(txCtx, target, i); err != nil {
			return err
		}
		if err := s.saveAquarium(txCtx, source); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventInhabitantTransferred, "owner_id", ownerID.String(),
			"inhabitant_id", i.ID.String(), "from_aquarium_id", source.ID.String(), "aquarium_id", target.ID.String()); err != nil {
			return err
		}
		result = target
		return nil
	}, tracing.String("aquarium_id", sourceID.String()), tracing.String("target_aquarium_id", targetID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemInhabitant, "transferred")
	return result, nil
}

func (s *Service) loadInhabitant(ctx context.Context, inhabitantID id.InhabitantID) (*models.Inhabitant, error) {
	if inhabitantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "inhabitant ID required")
	}
	i, err := s.inhabitants.FindByID(ctx, inhabitantID)
	if err != nil {
		return nil, wrapStoreErr(err, itemInhabitant, "failed to load inhabitant")
	}
	return i, nil
}

// inhabitantMember returns the aggregate's own instance of a member.
func (s *Service) inhabitantMember(a *models.Aquarium, inhabitantID id.InhabitantID) (*models.Inhabitant, error) {
	i, ok := findMember(a.Inhabitants(), func(m *models.Inhabitant) bool { return m.ID == inhabitantID })
	if !ok {
		return nil, dErrors.New(dErrors.CodeConflict, "inhabitant is not in this aquarium")
	}
	return i, nil
}

func (s *Service) saveInhabitantMembership(ctx context.Context, a *models.Aquarium, i *models.Inhabitant) error {
	if err := s.inhabitants.Save(ctx, i); err != nil {
		return wrapStoreErr(err, itemInhabitant, "failed to save inhabitant")
	}
	return s.saveAquarium(ctx, a)
}

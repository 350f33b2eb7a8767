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

const itemOrnament = "ornament"

func (s *Service) CreateOrnament(ctx context.Context, ownerID id.OwnerID, cmd CreateOrnamentCommand) (*models.Ornament, error) {
	var created *models.Ornament
	err := s.mutate(ctx, "CreateOrnament", func(txCtx context.Context) error {
		o, err := models.NewOrnament(id.NewOrnamentID(), models.NewOrnamentParams{
			Name:              cmd.Name,
			Description:       cmd.Description,
			Color:             cmd.Color,
			Material:          cmd.Material,
			AirPumpCompatible: cmd.AirPumpCompatible,
			OwnerID:           ownerID,
		}, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.ornaments.Create(txCtx, o); err != nil {
			return wrapStoreErr(err, itemOrnament, "failed to create ornament")
		}
		if err := s.logAudit(txCtx, audit.EventOrnamentCreated,
			"owner_id", ownerID.String(), "ornament_id", o.ID.String()); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.incrementItemCreated(itemOrnament)
	return created, nil
}

func (s *Service) GetOrnament(ctx context.Context, ownerID id.OwnerID, ornamentID id.OrnamentID) (*models.Ornament, error) {
	o, err := s.loadOrnament(ctx, ornamentID)
	if err != nil {
		return nil, err
	}
	if err := o.ValidateOwnership(ownerID); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) ListOrnaments(ctx context.Context, ownerID id.OwnerID) ([]*models.Ornament, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeOwnership, "requesting owner ID is required")
	}
	list, err := s.ornaments.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ornaments")
	}
	return list, nil
}

func (s *Service) UpdateOrnament(ctx context.Context, ownerID id.OwnerID, ornamentID id.OrnamentID, u models.OrnamentUpdate) (*models.Ornament, error) {
	var updated *models.Ornament
	err := s.mutate(ctx, "UpdateOrnament", func(txCtx context.Context) error {
		o, err := s.loadOrnament(txCtx, ornamentID)
		if err != nil {
			return err
		}
		if err := o.Update(u, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.ornaments.Save(txCtx, o); err != nil {
			return wrapStoreErr(err, itemOrnament, "failed to save ornament")
		}
		if err := s.logAudit(txCtx, audit.EventOrnamentUpdated,
			"owner_id", ownerID.String(), "ornament_id", o.ID.String()); err != nil {
			return err
		}
		updated = o
		return nil
	}, tracing.String("ornament_id", ornamentID.String()))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteOrnament(ctx context.Context, ownerID id.OwnerID, ornamentID id.OrnamentID) error {
	return s.mutate(ctx, "DeleteOrnament", func(txCtx context.Context) error {
		o, err := s.GetOrnament(txCtx, ownerID, ornamentID)
		if err != nil {
			return err
		}
		if o.IsAssigned() {
			a, err := s.loadAquarium(txCtx, o.AquariumID())
			if err != nil {
				return err
			}
			if member, ok := findMember(a.Ornaments(), func(m *models.Ornament) bool { return m.ID == o.ID }); ok {
				if err := a.DetachOrnament(member, ownerID, requestcontext.Now(txCtx)); err != nil {
					return err
				}
				if err := s.saveAquarium(txCtx, a); err != nil {
					return err
				}
			}
		}
		if err := s.ornaments.Delete(txCtx, o.ID); err != nil {
			return wrapStoreErr(err, itemOrnament, "failed to delete ornament")
		}
		return s.logAudit(txCtx, audit.EventOrnamentDeleted,
			"owner_id", ownerID.String(), "ornament_id", o.ID.String())
	}, tracing.String("ornament_id", ornamentID.String()))
}

func (s *Service) AttachOrnament(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, ornamentID id.OrnamentID) (*models.Aquarium, error) {
	var result *models.Aquarium
	err := s.mutate(ctx, "AttachOrnament", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		o, ok := findMember(a.Ornaments(), func(m *models.Ornament) bool { return m.ID == ornamentID })
		if !ok {
			if o, err = s.loadOrnament(txCtx, ornamentID); err != nil {
				return err
			}
		}
		if err := a.AttachOrnament(o, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.saveOrnamentMembership(txCtx, a, o); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventOrnamentAttached,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "ornament_id", o.ID.String()); err != nil {
			return err
		}
		result = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()), tracing.String("ornament_id", ornamentID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemOrnament, "added")
	return result, nil
}

func (s *Service) DetachOrnament(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, ornamentID id.OrnamentID) (*models.Aquarium, error) {
	var result *models.Aquarium
	err := s.mutate(ctx, "DetachOrnament", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		o, ok := findMember(a.Ornaments(), func(m *models.Ornament) bool { return m.ID == ornamentID })
		if !ok {
			return dErrors.New(dErrors.CodeConflict, "ornament is not in this aquarium")
		}
		if err := a.DetachOrnament(o, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.saveOrnamentMembership(txCtx, a, o); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventOrnamentDetached,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "ornament_id", o.ID.String()); err != nil {
			return err
		}
		result = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()), tracing.String("ornament_id", ornamentID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemOrnament, "removed")
	return result, nil
}

func (s *Service) TransferOrnament(ctx context.Context, ownerID id.OwnerID, sourceID, targetID id.AquariumID, ornamentID id.OrnamentID) (*models.Aquarium, error) {
	if sourceID == targetID {
		return nil, dErrors.New(dErrors.CodeValidation, "source and target aquarium must differ")
	}
	var result *models.Aquarium
	err := s.mutate(ctx, "TransferOrnament", func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		source, target, err := s.loadTransferPair(txCtx, sourceID, targetID)
		if err != nil {
			return err
		}
		o, ok := findMember(source.Ornaments(), func(m *models.Ornament) bool { return m.ID == ornamentID })
		if !ok {
			return dErrors.New(dErrors.CodeConflict, "ornament is not in this aquarium")
		}
		if err := source.DetachOrnament(o, ownerID, now); err != nil {
			return err
		}
		if err := target.AttachOrnament(o, ownerID, now); err != nil {
			return err
		}
		if err := s.saveOrnamentMembership(txCtx, target, o); err != nil {
			return err
		}
		if err := s.saveAquarium(txCtx, source); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventOrnamentTransferred, "owner_id", ownerID.String(),
			"ornament_id", o.ID.String(), "from_aquarium_id", source.ID.String(), "aquarium_id", target.ID.String()); err != nil {
			return err
		}
		result = target
		return nil
	}, tracing.String("aquarium_id", sourceID.String()), tracing.String("target_aquarium_id", targetID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemOrnament, "transferred")
	return result, nil
}

func (s *Service) loadOrnament(ctx context.Context, ornamentID id.OrnamentID) (*models.Ornament, error) {
	if ornamentID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "ornament ID required")
	}
	o, err := s.ornaments.FindByID(ctx, ornamentID)
	if err != nil {
		return nil, wrapStoreErr(err, itemOrnament, "failed to load ornament")
	}
	return o, nil
}

func (s *Service) saveOrnamentMembership(ctx context.Context, a *models.Aquarium, o *models.Ornament) error {
	if err := s.ornaments.Save(ctx, o); err != nil {
		return wrapStoreErr(err, itemOrnament, "failed to save ornament")
	}
	return s.saveAquarium(ctx, a)
}

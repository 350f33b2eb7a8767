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

const itemAccessory = "accessory"

func (s *Service) CreateAccessory(ctx context.Context, ownerID id.OwnerID, cmd CreateAccessoryCommand) (*models.Accessory, error) {
	var created *models.Accessory
	err := s.mutate(ctx, "CreateAccessory", func(txCtx context.Context) error {
		a, err := models.NewAccessoryFromKind(cmd.Kind, id.NewAccessoryID(), models.NewAccessoryParams{
			Model:              cmd.Model,
			SerialNumber:       cmd.SerialNumber,
			Color:              cmd.Color,
			Description:        cmd.Description,
			OwnerID:            ownerID,
			External:           cmd.External,
			CapacityLiters:     cmd.CapacityLiters,
			LED:                cmd.LED,
			TurnOnTime:         cmd.TurnOnTime,
			TurnOffTime:        cmd.TurnOffTime,
			MinTemperature:     cmd.MinTemperature,
			MaxTemperature:     cmd.MaxTemperature,
			CurrentTemperature: cmd.CurrentTemperature,
		}, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.accessories.Create(txCtx, a); err != nil {
			return wrapStoreErr(err, itemAccessory, "failed to create accessory")
		}
		if err := s.logAudit(txCtx, audit.EventAccessoryCreated,
			"owner_id", ownerID.String(), "accessory_id", a.ID.String(), "kind", a.Kind); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.incrementItemCreated(itemAccessory)
	return created, nil
}

func (s *Service) GetAccessory(ctx context.Context, ownerID id.OwnerID, accessoryID id.AccessoryID) (*models.Accessory, error) {
	a, err := s.loadAccessory(ctx, accessoryID)
	if err != nil {
		return nil, err
	}
	if err := a.ValidateOwnership(ownerID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAccessories(ctx context.Context, ownerID id.OwnerID) ([]*models.Accessory, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeOwnership, "requesting owner ID is required")
	}
	list, err := s.accessories.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list accessories")
	}
	return list, nil
}

// UpdateAccessory applies a partial update. Fields belonging to another
// accessory kind are rejected.
func (s *Service) UpdateAccessory(ctx context.Context, ownerID id.OwnerID, accessoryID id.AccessoryID, u models.AccessoryUpdate) (*models.Accessory, error) {
	var updated *models.Accessory
	err := s.mutate(ctx, "UpdateAccessory", func(txCtx context.Context) error {
		a, err := s.loadAccessory(txCtx, accessoryID)
		if err != nil {
			return err
		}
		if err := a.Update(u, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.accessories.Save(txCtx, a); err != nil {
			return wrapStoreErr(err, itemAccessory, "failed to save accessory")
		}
		if err := s.logAudit(txCtx, audit.EventAccessoryUpdated,
			"owner_id", ownerID.String(), "accessory_id", a.ID.String()); err != nil {
			return err
		}
		updated = a
		return nil
	}, tracing.String("accessory_id", accessoryID.String()))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAccessory detaches the accessory from its aquarium first, if any.
func (s *Service) DeleteAccessory(ctx context.Context, ownerID id.OwnerID, accessoryID id.AccessoryID) error {
	return s.mutate(ctx, "DeleteAccessory", func(txCtx context.Context) error {
		acc, err := s.GetAccessory(txCtx, ownerID, accessoryID)
		if err != nil {
			return err
		}
		if acc.IsAssigned() {
			a, err := s.loadAquarium(txCtx, acc.AquariumID())
			if err != nil {
				return err
			}
			if member, ok := findMember(a.Accessories(), func(m *models.Accessory) bool { return m.ID == acc.ID }); ok {
				if err := a.DetachAccessory(member, ownerID, requestcontext.Now(txCtx)); err != nil {
					return err
				}
				if err := s.saveAquarium(txCtx, a); err != nil {
					return err
				}
			}
		}
		if err := s.accessories.Delete(txCtx, acc.ID); err != nil {
			return wrapStoreErr(err, itemAccessory, "failed to delete accessory")
		}
		return s.logAudit(txCtx, audit.EventAccessoryDeleted,
			"owner_id", ownerID.String(), "accessory_id", acc.ID.String())
	}, tracing.String("accessory_id", accessoryID.String()))
}

func (s *Service) AttachAccessory(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, accessoryID id.AccessoryID) (*models.Aquarium, error) {
	var result *models.Aquarium
	err := s.mutate(ctx, "AttachAccessory", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		acc, ok := findMember(a.Accessories(), func(m *models.Accessory) bool { return m.ID == accessoryID })
		if !ok {
			if acc, err = s.loadAccessory(txCtx, accessoryID); err != nil {
				return err
			}
		}
		if err := a.AttachAccessory(acc, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.saveAccessoryMembership(txCtx, a, acc); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventAccessoryAttached,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "accessory_id", acc.ID.String()); err != nil {
			return err
		}
		result = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()), tracing.String("accessory_id", accessoryID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemAccessory, "added")
	return result, nil
}

func (s *Service) DetachAccessory(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, accessoryID id.AccessoryID) (*models.Aquarium, error) {
	var result *models.Aquarium
	err := s.mutate(ctx, "DetachAccessory", func(txCtx context.Context) error {
		a, err := s.loadAquarium(txCtx, aquariumID)
		if err != nil {
			return err
		}
		acc, ok := findMember(a.Accessories(), func(m *models.Accessory) bool { return m.ID == accessoryID })
		if !ok {
			return dErrors.New(dErrors.CodeConflict, "accessory is not attached to this aquarium")
		}
		if err := a.DetachAccessory(acc, ownerID, requestcontext.Now(txCtx)); err != nil {
			return err
		}
		if err := s.saveAccessoryMembership(txCtx, a, acc); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventAccessoryDetached,
			"owner_id", ownerID.String(), "aquarium_id", a.ID.String(), "accessory_id", acc.ID.String()); err != nil {
			return err
		}
		result = a
		return nil
	}, tracing.String("aquarium_id", aquariumID.String()), tracing.String("accessory_id", accessoryID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemAccessory, "removed")
	return result, nil
}

func (s *Service) TransferAccessory(ctx context.Context, ownerID id.OwnerID, sourceID, targetID id.AquariumID, accessoryID id.AccessoryID) (*models.Aquarium, error) {
	if sourceID == targetID {
		return nil, dErrors.New(dErrors.CodeValidation, "source and target aquarium must differ")
	}
	var result *models.Aquarium
	err := s.mutate(ctx, "TransferAccessory", func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		source, target, err := s.loadTransferPair(txCtx, sourceID, targetID)
		if err != nil {
			return err
		}
		acc, ok := findMember(source.Accessories(), func(m *models.Accessory) bool { return m.ID == accessoryID })
		if !ok {
			return dErrors.New(dErrors.CodeConflict, "accessory is not attached to this aquarium")
		}
		if err := source.DetachAccessory(acc, ownerID, now); err != nil {
			return err
		}
		if err := target.AttachAccessory(acc, ownerID, now); err != nil {
			return err
		}
		if err := s.saveAccessoryMembership(txCtx, target, acc); err != nil {
			return err
		}
		if err := s.saveAquarium(txCtx, source); err != nil {
			return err
		}
		if err := s.logAudit(txCtx, audit.EventAccessoryTransferred, "owner_id", ownerID.String(),
			"accessory_id", acc.ID.String(), "from_aquarium_id", source.ID.String(), "aquarium_id", target.ID.String()); err != nil {
			return err
		}
		result = target
		return nil
	}, tracing.String("aquarium_id", sourceID.String()), tracing.String("target_aquarium_id", targetID.String()))
	if err != nil {
		return nil, err
	}
	s.incrementMembership(itemAccessory, "transferred")
	return result, nil
}

func (s *Service) loadAccessory(ctx context.Context, accessoryID id.AccessoryID) (*models.Accessory, error) {
	if accessoryID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "accessory ID required")
	}
	a, err := s.accessories.FindByID(ctx, accessoryID)
	if err != nil {
		return nil, wrapStoreErr(err, itemAccessory, "failed to load accessory")
	}
	return a, nil
}

func (s *Service) saveAccessoryMembership(ctx context.Context, a *models.Aquarium, acc *models.Accessory) error {
	if err := s.accessories.Save(ctx, acc); err != nil {
		return wrapStoreErr(err, itemAccessory, "failed to save accessory")
	}
	return s.saveAquarium(ctx, a)
}

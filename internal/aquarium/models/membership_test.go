package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "aquaria/pkg/domain-errors"
)

type MembershipSuite struct {
	suite.Suite
	tank *Aquarium
}

func TestMembershipSuite(t *testing.T) {
	suite.Run(t, new(MembershipSuite))
}

func (s *MembershipSuite) SetupTest() {
	s.tank = newTestAquarium(ownerA, StateRunning)
}

func (s *MembershipSuite) TestAddSetsBothSides() {
	fish := newTestFish(ownerA, 3, false, false)
	s.Require().NoError(s.tank.AddInhabitant(fish, ownerA, t0))
	s.True(s.tank.HasInhabitant(fish.ID))
	s.Equal(s.tank.ID, fish.AquariumID())

	s.Run("adding again is idempotent", func() {
		s.Require().NoError(s.tank.AddInhabitant(fish, ownerA, t0))
		s.Len(s.tank.Inhabitants(), 1)
	})

	s.Run("remove clears both sides", func() {
		s.Require().NoError(s.tank.RemoveInhabitant(fish, ownerA, t0))
		s.False(s.tank.HasInhabitant(fish.ID))
		s.False(fish.IsAssigned())
	})

	s.Run("removing an absent member is a no-op", func() {
		s.NoError(s.tank.RemoveInhabitant(fish, ownerA, t0))
	})
}

func (s *MembershipSuite) TestIncompatibleAddLeavesSetUnchanged() {
	snail := newTestInhabitant(KindSnail, ownerA, 2, Traits{})
	s.Require().NoError(s.tank.AddInhabitant(snail, ownerA, t0))

	eater := newTestFish(ownerA, 1, false, true)
	err := s.tank.AddInhabitant(eater, ownerA, t0)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	members := s.tank.Inhabitants()
	s.Require().Len(members, 1)
	s.Equal(snail.ID, members[0].ID)
	s.False(eater.IsAssigned())
}

func (s *MembershipSuite) TestAggressiveAgainstPeacefulGroups() {
	peaceful := newTestFish(ownerA, 2, false, false)
	s.Require().NoError(s.tank.AddInhabitant(peaceful, ownerA, t0))
	aggressive := newTestFish(ownerA, 5, true, false)
	s.True(dErrors.HasCode(s.tank.AddInhabitant(aggressive, ownerA, t0), dErrors.CodeConflict))

	other := newTestAquarium(ownerA, StateRunning)
	s.Require().NoError(other.AddInhabitant(newTestFish(ownerA, 6, false, false), ownerA, t0))
	s.NoError(other.AddInhabitant(aggressive, ownerA, t0))
}

func (s *MembershipSuite) TestAddRejections() {
	s.Run("nil candidate", func() {
		s.True(dErrors.HasCode(s.tank.AddInhabitant(nil, ownerA, t0), dErrors.CodeValidation))
	})

	s.Run("foreign requester", func() {
		fish := newTestFish(ownerA, 1, false, false)
		s.True(dErrors.HasCode(s.tank.AddInhabitant(fish, ownerB, t0), dErrors.CodeOwnership))
		s.False(fish.IsAssigned())
	})

	s.Run("candidate owned by someone else", func() {
		fish := newTestFish(ownerB, 1, false, false)
		s.True(dErrors.HasCode(s.tank.AddInhabitant(fish, ownerA, t0), dErrors.CodeOwnership))
		s.Empty(s.tank.Inhabitants())
	})

	s.Run("already in another aquarium", func() {
		fish := newTestFish(ownerA, 1, false, false)
		elsewhere := newTestAquarium(ownerA, StateRunning)
		s.Require().NoError(elsewhere.AddInhabitant(fish, ownerA, t0))
		s.True(dErrors.HasCode(s.tank.AddInhabitant(fish, ownerA, t0), dErrors.CodeConflict))
		s.Equal(elsewhere.ID, fish.AquariumID())
	})

	s.Run("water type mismatch", func() {
		fish := newTestFish(ownerA, 1, false, false)
		fish.WaterType = WaterTypeSaltwater
		s.True(dErrors.HasCode(s.tank.AddInhabitant(fish, ownerA, t0), dErrors.CodeConflict))
	})

	s.Run("inactive aquarium", func() {
		closed := newTestAquarium(ownerA, StateInactive)
		s.True(dErrors.HasCode(closed.AddInhabitant(newTestFish(ownerA, 1, false, false), ownerA, t0), dErrors.CodeConflict))
		s.True(dErrors.HasCode(closed.AttachOrnament(newTestOrnament(ownerA), ownerA, t0), dErrors.CodeConflict))
	})
}

func (s *MembershipSuite) TestUpdateInhabitantRechecksCompatibility() {
	snail := newTestInhabitant(KindSnail, ownerA, 2, Traits{})
	fish := newTestFish(ownerA, 1, false, false)
	s.Require().NoError(s.tank.AddInhabitant(snail, ownerA, t0))
	s.Require().NoError(s.tank.AddInhabitant(fish, ownerA, t0))

	err := s.tank.UpdateInhabitant(fish.ID, InhabitantUpdate{Traits: &Traits{SnailEater: true}}, ownerA, t0.Add(time.Minute))
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.False(fish.Traits.SnailEater)

	count := 4
	s.Require().NoError(s.tank.UpdateInhabitant(fish.ID, InhabitantUpdate{Count: &count}, ownerA, t0.Add(time.Minute)))
	s.Equal(4, fish.Count)
	s.Equal(s.tank.ID, fish.AquariumID())
}

func (s *MembershipSuite) TestAssignedInhabitantCannotBeUpdatedDirectly() {
	fish := newTestFish(ownerA, 1, false, false)
	s.Require().NoError(s.tank.AddInhabitant(fish, ownerA, t0))
	count := 9
	s.True(dErrors.HasCode(fish.Update(InhabitantUpdate{Count: &count}, ownerA, t0), dErrors.CodeConflict))
	s.Equal(1, fish.Count)
}

func (s *MembershipSuite) TestAccessoriesAndOrnaments() {
	filter := newTestAccessory(KindFilter, ownerA)
	ornament := newTestOrnament(ownerA)
	s.Require().NoError(s.tank.AttachAccessory(filter, ownerA, t0))
	s.Require().NoError(s.tank.AttachOrnament(ornament, ownerA, t0))
	s.Equal(s.tank.ID, filter.AquariumID())
	s.Equal(s.tank.ID, ornament.AquariumID())

	s.Require().NoError(s.tank.DetachAccessory(filter, ownerA, t0))
	s.False(s.tank.HasAccessory(filter.ID))
	s.False(filter.IsAssigned())
	s.True(s.tank.HasOrnament(ornament.ID))
}

func (s *MembershipSuite) TestDetachAll() {
	fish := newTestFish(ownerA, 1, false, false)
	light := newTestAccessory(KindLighting, ownerA)
	ornament := newTestOrnament(ownerA)
	s.Require().NoError(s.tank.AddInhabitant(fish, ownerA, t0))
	s.Require().NoError(s.tank.AttachAccessory(light, ownerA, t0))
	s.Require().NoError(s.tank.AttachOrnament(ornament, ownerA, t0))

	_, err := s.tank.DetachAll(ownerB, t0)
	s.True(dErrors.HasCode(err, dErrors.CodeOwnership))
	s.True(fish.IsAssigned())

	released, err := s.tank.DetachAll(ownerA, t0.Add(time.Minute))
	s.Require().NoError(err)
	s.Len(released.Inhabitants, 1)
	s.Len(released.Accessories, 1)
	s.Len(released.Ornaments, 1)
	s.Empty(s.tank.Inhabitants())
	s.False(fish.IsAssigned())
	s.False(light.IsAssigned())
	s.False(ornament.IsAssigned())
}

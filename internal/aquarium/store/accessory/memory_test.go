package accessory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
	"aquaria/pkg/testutil"
)

type InMemoryAccessoryStoreSuite struct {
	suite.Suite
	store *InMemoryAccessoryStore
	ctx   context.Context
}

func TestInMemoryAccessoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryAccessoryStoreSuite))
}

func (s *InMemoryAccessoryStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *InMemoryAccessoryStoreSuite) TestKindPayloadIsCopied() {
	filter := testutil.NewTestAccessory(models.KindFilter, testutil.TestIDs.OwnerID1)
	s.Require().NoError(s.store.Create(s.ctx, filter))

	filter.Filter.CapacityLiters = 9999

	found, err := s.store.FindByID(s.ctx, filter.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.Filter)
	s.NotEqual(9999, found.Filter.CapacityLiters)
	s.Nil(found.Lighting)
	s.Nil(found.Thermostat)
}

func (s *InMemoryAccessoryStoreSuite) TestSaveUpdatesPayload() {
	heater := testutil.NewTestAccessory(models.KindThermostat, testutil.TestIDs.OwnerID1)
	s.Require().NoError(s.store.Create(s.ctx, heater))

	s.Require().NoError(heater.UpdateCurrentTemperature(27.5, testutil.TestIDs.OwnerID1, testutil.FixedTime))
	s.Require().NoError(s.store.Save(s.ctx, heater))

	found, err := s.store.FindByID(s.ctx, heater.ID)
	s.Require().NoError(err)
	s.Equal(27.5, found.Thermostat.CurrentTemperature)
}

func (s *InMemoryAccessoryStoreSuite) TestListings() {
	tank := testutil.NewAquariumBuilder().Build()
	light := testutil.NewTestAccessory(models.KindLighting, testutil.TestIDs.OwnerID1)
	spare := testutil.NewTestAccessory(models.KindFilter, testutil.TestIDs.OwnerID1)
	foreign := testutil.NewTestAccessory(models.KindFilter, testutil.TestIDs.OwnerID2)
	s.Require().NoError(tank.AttachAccessory(light, testutil.TestIDs.OwnerID1, testutil.FixedTime))
	for _, a := range []*models.Accessory{light, spare, foreign} {
		s.Require().NoError(s.store.Create(s.ctx, a))
	}

	attached, err := s.store.ListByAquarium(s.ctx, tank.ID)
	s.Require().NoError(err)
	s.Require().Len(attached, 1)
	s.Equal(light.ID, attached[0].ID)

	owned, err := s.store.ListByOwner(s.ctx, testutil.TestIDs.OwnerID1)
	s.Require().NoError(err)
	s.Len(owned, 2)
}

func (s *InMemoryAccessoryStoreSuite) TestMissing() {
	_, err := s.store.FindByID(s.ctx, id.NewAccessoryID())
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(s.ctx, id.NewAccessoryID()), sentinel.ErrNotFound)
}

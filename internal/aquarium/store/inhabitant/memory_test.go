package inhabitant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
	"aquaria/pkg/testutil"
)

type InMemoryInhabitantStoreSuite struct {
	suite.Suite
	store *InMemoryInhabitantStore
	ctx   context.Context
}

func TestInMemoryInhabitantStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryInhabitantStoreSuite))
}

func (s *InMemoryInhabitantStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *InMemoryInhabitantStoreSuite) TestCreateFindSave() {
	fish := testutil.NewInhabitantBuilder().Aggressive().WithCount(3).Build()
	s.Require().NoError(s.store.Create(s.ctx, fish))
	s.ErrorIs(s.store.Create(s.ctx, fish), sentinel.ErrAlreadyUsed)

	found, err := s.store.FindByID(s.ctx, fish.ID)
	s.Require().NoError(err)
	s.Equal(3, found.Count)
	s.True(found.Traits.AggressiveEater)

	count := 7
	s.Require().NoError(found.Update(models.InhabitantUpdate{Count: &count}, testutil.TestIDs.OwnerID1, testutil.FixedTime))
	s.Require().NoError(s.store.Save(s.ctx, found))

	again, err := s.store.FindByID(s.ctx, fish.ID)
	s.Require().NoError(err)
	s.Equal(7, again.Count)
}

func (s *InMemoryInhabitantStoreSuite) TestListByAquariumFollowsMembership() {
	tank := testutil.NewAquariumBuilder().Build()
	inside := testutil.NewInhabitantBuilder().Build()
	outside := testutil.NewInhabitantBuilder().At(testutil.FixedTime.Add(time.Minute)).Build()
	s.Require().NoError(tank.AddInhabitant(inside, testutil.TestIDs.OwnerID1, testutil.FixedTime))
	s.Require().NoError(s.store.Create(s.ctx, inside))
	s.Require().NoError(s.store.Create(s.ctx, outside))

	members, err := s.store.ListByAquarium(s.ctx, tank.ID)
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(inside.ID, members[0].ID)
	s.Equal(tank.ID, members[0].AquariumID())

	owned, err := s.store.ListByOwner(s.ctx, testutil.TestIDs.OwnerID1)
	s.Require().NoError(err)
	s.Len(owned, 2)
	s.Equal(inside.ID, owned[0].ID)
}

func (s *InMemoryInhabitantStoreSuite) TestMissing() {
	_, err := s.store.FindByID(s.ctx, id.NewInhabitantID())
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Save(s.ctx, testutil.NewInhabitantBuilder().Build()), sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(s.ctx, id.NewInhabitantID()), sentinel.ErrNotFound)
}

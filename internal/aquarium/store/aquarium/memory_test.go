package aquarium

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

type InMemoryAquariumStoreSuite struct {
	suite.Suite
	store *InMemoryAquariumStore
	ctx   context.Context
}

func TestInMemoryAquariumStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryAquariumStoreSuite))
}

func (s *InMemoryAquariumStoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
}

func (s *InMemoryAquariumStoreSuite) TestCreateAndFind() {
	a := testutil.NewAquariumBuilder().Build()
	s.Require().NoError(s.store.Create(s.ctx, a))

	found, err := s.store.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a.Name, found.Name)
	s.Equal(a.State(), found.State())
	s.Equal(a.OwnerID(), found.OwnerID())
	s.True(a.CurrentStateStartTime().Equal(found.CurrentStateStartTime()))
}

func (s *InMemoryAquariumStoreSuite) TestCreateDuplicate() {
	a := testutil.NewAquariumBuilder().Build()
	s.Require().NoError(s.store.Create(s.ctx, a))
	s.ErrorIs(s.store.Create(s.ctx, a), sentinel.ErrAlreadyUsed)
}

func (s *InMemoryAquariumStoreSuite) TestMembersAreNotStored() {
	a := testutil.NewAquariumBuilder().Build()
	fish := testutil.NewInhabitantBuilder().Build()
	s.Require().NoError(a.AddInhabitant(fish, testutil.TestIDs.OwnerID1, testutil.FixedTime))
	s.Require().NoError(s.store.Create(s.ctx, a))

	found, err := s.store.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(found.Inhabitants())
}

func (s *InMemoryAquariumStoreSuite) TestSaveIsolatesCallerCopy() {
	a := testutil.NewAquariumBuilder().Build()
	s.Require().NoError(s.store.Create(s.ctx, a))

	name := "Renamed"
	s.Require().NoError(a.Update(models.AquariumUpdate{Name: &name}, testutil.TestIDs.OwnerID1, testutil.FixedTime.Add(time.Minute)))

	found, err := s.store.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("Test tank", found.Name)

	s.Require().NoError(s.store.Save(s.ctx, a))
	found, err = s.store.FindByID(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("Renamed", found.Name)
}

func (s *InMemoryAquariumStoreSuite) TestListByOwnerOldestFirst() {
	later := testutil.NewAquariumBuilder().WithName("Later").At(testutil.FixedTime.Add(time.Hour)).Build()
	earlier := testutil.NewAquariumBuilder().WithName("Earlier").Build()
	other := testutil.NewAquariumBuilder().WithOwner(testutil.TestIDs.OwnerID2).Build()
	for _, a := range []*models.Aquarium{later, earlier, other} {
		s.Require().NoError(s.store.Create(s.ctx, a))
	}

	list, err := s.store.ListByOwner(s.ctx, testutil.TestIDs.OwnerID1)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Earlier", list[0].Name)
	s.Equal("Later", list[1].Name)
}

func (s *InMemoryAquariumStoreSuite) TestMissing() {
	_, err := s.store.FindByID(s.ctx, id.NewAquariumID())
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Save(s.ctx, testutil.NewAquariumBuilder().Build()), sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(s.ctx, id.NewAquariumID()), sentinel.ErrNotFound)
}

func (s *InMemoryAquariumStoreSuite) TestDelete() {
	a := testutil.NewAquariumBuilder().Build()
	s.Require().NoError(s.store.Create(s.ctx, a))
	s.Require().NoError(s.store.Delete(s.ctx, a.ID))
	_, err := s.store.FindByID(s.ctx, a.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

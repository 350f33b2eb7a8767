package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
)

type AquariumModelSuite struct {
	suite.Suite
}

func TestAquariumModelSuite(t *testing.T) {
	suite.Run(t, new(AquariumModelSuite))
}

func (s *AquariumModelSuite) TestNewAquarium() {
	s.Run("applies defaults", func() {
		a, err := NewAquarium(id.NewAquariumID(), NewAquariumParams{
			Name: "Nano", Length: 30, Width: 30, Height: 30,
			Substrate: "gravel", WaterType: "saltwater", OwnerID: ownerA,
		}, t0)
		s.Require().NoError(err)
		s.Equal(StateSetup, a.State())
		s.Equal(DefaultTemperature, a.Temperature)
		s.Equal(SubstrateGravel, a.Substrate)
		s.Equal(WaterTypeSaltwater, a.WaterType)
		s.Equal(t0, a.CurrentStateStartTime())
		s.Equal(t0, a.CreatedAt)
		s.Equal(ownerA, a.OwnerID())
		s.Empty(a.Inhabitants())
	})

	s.Run("accepts caller supplied state and temperature", func() {
		a, err := NewAquarium(id.NewAquariumID(), NewAquariumParams{
			Name: "Quarantine", Length: 60, Width: 30, Height: 35,
			Substrate: SubstrateSoil, WaterType: WaterTypeFreshwater,
			State: StateRunning, Temperature: ptr(26.5),
		}, t0)
		s.Require().NoError(err)
		s.Equal(StateRunning, a.State())
		s.Equal(26.5, a.Temperature)
		s.True(a.OwnerID().IsNil())
	})

	cases := []struct {
		name   string
		mutate func(p *NewAquariumParams)
	}{
		{"empty name", func(p *NewAquariumParams) { p.Name = "  " }},
		{"long name", func(p *NewAquariumParams) { p.Name = strings.Repeat("n", 51) }},
		{"zero length", func(p *NewAquariumParams) { p.Length = 0 }},
		{"negative height", func(p *NewAquariumParams) { p.Height = -1 }},
		{"unknown substrate", func(p *NewAquariumParams) { p.Substrate = "MARBLES" }},
		{"unknown water type", func(p *NewAquariumParams) { p.WaterType = "BRACKISH" }},
		{"negative temperature", func(p *NewAquariumParams) { p.Temperature = ptr(-1.0) }},
		{"unknown state", func(p *NewAquariumParams) { p.State = "FLOODED" }},
	}
	for _, tc := range cases {
		s.Run("rejects "+tc.name, func() {
			p := NewAquariumParams{
				Name: "Tank", Length: 10, Width: 10, Height: 10,
				Substrate: SubstrateSand, WaterType: WaterTypeFreshwater,
			}
			tc.mutate(&p)
			_, err := NewAquarium(id.NewAquariumID(), p, t0)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation), err.Error())
		})
	}
}

func (s *AquariumModelSuite) TestReconstructBypassesValidation() {
	fish := newTestFish(ownerA, 3, false, false)
	rec := AquariumRecord{
		ID:                    id.NewAquariumID(),
		Name:                  "",
		Dimensions:            Dimensions{Length: -1},
		Substrate:             "LEGACY",
		WaterType:             WaterTypeFreshwater,
		State:                 StateInactive,
		CurrentStateStartTime: t0,
		OwnerID:               ownerA,
		CreatedAt:             t0,
		UpdatedAt:             t0,
		Inhabitants:           []*Inhabitant{fish},
	}
	a := ReconstructAquarium(rec)
	s.Equal(rec.ID, a.ID)
	s.Equal(StateInactive, a.State())
	s.Equal(Substrate("LEGACY"), a.Substrate)
	s.True(a.HasInhabitant(fish.ID))

	round := a.Record()
	s.Equal(rec.CurrentStateStartTime, round.CurrentStateStartTime)
	s.Len(round.Inhabitants, 1)
}

func (s *AquariumModelSuite) TestUpdate() {
	s.Run("applies only supplied fields", func() {
		a := newTestAquarium(ownerA, StateSetup)
		later := t0.Add(time.Hour)
		err := a.Update(AquariumUpdate{Name: ptr("Renamed"), Height: ptr(60.0)}, ownerA, later)
		s.Require().NoError(err)
		s.Equal("Renamed", a.Name)
		s.Equal(Dimensions{Length: 100, Width: 40, Height: 60}, a.Dimensions)
		s.Equal(SubstrateSand, a.Substrate)
		s.Equal(later, a.UpdatedAt)
	})

	s.Run("invalid field leaves aquarium untouched", func() {
		a := newTestAquarium(ownerA, StateSetup)
		before := a.Record()
		err := a.Update(AquariumUpdate{Name: ptr("Valid"), Temperature: ptr(-3.0)}, ownerA, t0.Add(time.Hour))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(before, a.Record())
	})

	s.Run("other owner is rejected", func() {
		a := newTestAquarium(ownerA, StateSetup)
		err := a.Update(AquariumUpdate{Name: ptr("Mine now")}, ownerB, t0)
		s.True(dErrors.HasCode(err, dErrors.CodeOwnership))
		s.Equal("Living room reef", a.Name)
	})

	s.Run("water type cannot change under existing inhabitants", func() {
		a := newTestAquarium(ownerA, StateSetup)
		s.Require().NoError(a.AddInhabitant(newTestFish(ownerA, 2, false, false), ownerA, t0))
		salt := WaterTypeSaltwater
		err := a.Update(AquariumUpdate{WaterType: &salt}, ownerA, t0)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Equal(WaterTypeFreshwater, a.WaterType)
	})
}

func (s *AquariumModelSuite) TestAssignOwner() {
	a := newTestAquarium(id.OwnerID{}, StateSetup)
	s.Require().NoError(a.AssignOwner(ownerA, t0))
	s.Equal(ownerA, a.OwnerID())
	s.NoError(a.AssignOwner(ownerA, t0))
	s.True(dErrors.HasCode(a.AssignOwner(ownerB, t0), dErrors.CodeOwnership))
	s.True(dErrors.HasCode(a.AssignOwner(id.OwnerID{}, t0), dErrors.CodeValidation))
}

func (s *AquariumModelSuite) TestDerivedValues() {
	a := newTestAquarium(ownerA, StateSetup)
	s.InDelta(200.0, a.Volume(), 1e-9)
	s.Equal(20, a.RecommendedInhabitantCapacity())

	s.Require().NoError(a.AddInhabitant(newTestFish(ownerA, 12, false, false), ownerA, t0))
	school := newTestFish(ownerA, 9, false, false)
	school.Schooling = true
	s.Require().NoError(a.AddInhabitant(school, ownerA, t0))

	s.Equal(21, a.TotalInhabitantCount())
	s.True(a.IsOverstocked())
	s.Len(a.SchoolingInhabitants(), 1)
	s.Len(a.InhabitantsByWaterType(WaterTypeFreshwater), 2)
	s.Empty(a.InhabitantsByWaterType(WaterTypeSaltwater))
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
)

type OrnamentSuite struct {
	suite.Suite
}

func TestOrnamentSuite(t *testing.T) {
	suite.Run(t, new(OrnamentSuite))
}

func (s *OrnamentSuite) TestCreate() {
	o, err := NewOrnament(id.NewOrnamentID(), NewOrnamentParams{
		Name: "Castle", Color: "grey", Material: "resin", AirPumpCompatible: true, OwnerID: ownerA,
	}, t0)
	s.Require().NoError(err)
	s.True(o.AirPumpCompatible)
	s.False(o.IsAssigned())

	_, err = NewOrnament(id.NewOrnamentID(), NewOrnamentParams{Name: "Castle", OwnerID: ownerA}, t0)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = NewOrnament(id.NewOrnamentID(), NewOrnamentParams{Name: "Castle", Color: "grey"}, t0)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *OrnamentSuite) TestUpdate() {
	o := newTestOrnament(ownerA)
	later := t0.Add(time.Hour)

	s.Require().NoError(o.Update(OrnamentUpdate{Color: ptr("gold"), AirPumpCompatible: ptr(true)}, ownerA, later))
	s.Equal("gold", o.Color)
	s.True(o.AirPumpCompatible)
	s.Equal(later, o.UpdatedAt)

	s.True(dErrors.HasCode(o.Update(OrnamentUpdate{Name: ptr("")}, ownerA, later), dErrors.CodeValidation))
	s.Equal("Sunken ship", o.Name)

	s.True(dErrors.HasCode(o.Update(OrnamentUpdate{Name: ptr("Mine")}, ownerB, later), dErrors.CodeOwnership))
}

func (s *OrnamentSuite) TestRecordRoundTrip() {
	o := newTestOrnament(ownerA)
	tank := newTestAquarium(ownerA, StateSetup)
	s.Require().NoError(tank.AttachOrnament(o, ownerA, t0))

	back := ReconstructOrnament(o.Record())
	s.Equal(tank.ID, back.AquariumID())
	s.Equal(ownerA, back.OwnerID())
	s.Equal(o.Record(), back.Record())
}

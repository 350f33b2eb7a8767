package models

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "aquaria/pkg/domain-errors"
)

type CompatibilitySuite struct {
	suite.Suite
}

func TestCompatibilitySuite(t *testing.T) {
	suite.Run(t, new(CompatibilitySuite))
}

func (s *CompatibilitySuite) TestPairs() {
	cases := []struct {
		name string
		a, b *Inhabitant
		want bool
	}{
		{
			name: "snail eater rejects snail",
			a:    newTestFish(ownerA, 1, false, true),
			b:    newTestInhabitant(KindSnail, ownerA, 3, Traits{}),
			want: false,
		},
		{
			name: "snail eater is fine with shrimp",
			a:    newTestFish(ownerA, 1, false, true),
			b:    newTestInhabitant(KindShrimp, ownerA, 10, Traits{}),
			want: true,
		},
		{
			name: "aggressive fish rejects smaller peaceful group",
			a:    newTestFish(ownerA, 5, true, false),
			b:    newTestFish(ownerA, 2, false, false),
			want: false,
		},
		{
			name: "aggressive fish accepts larger peaceful group",
			a:    newTestFish(ownerA, 5, true, false),
			b:    newTestFish(ownerA, 6, false, false),
			want: true,
		},
		{
			name: "aggressive fish accepts equal peaceful group",
			a:    newTestFish(ownerA, 5, true, false),
			b:    newTestFish(ownerA, 5, false, false),
			want: true,
		},
		{
			name: "two aggressive fish coexist",
			a:    newTestFish(ownerA, 8, true, false),
			b:    newTestFish(ownerA, 1, true, false),
			want: true,
		},
		{
			name: "plants and corals never reject",
			a:    newTestInhabitant(KindPlant, ownerA, 4, Traits{}),
			b:    newTestInhabitant(KindCoral, ownerA, 1, Traits{}),
			want: true,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, Compatible(tc.a, tc.b))
			s.Equal(tc.want, Compatible(tc.b, tc.a), "order must not matter")
		})
	}
}

func (s *CompatibilitySuite) TestTraitsFollowKind() {
	snail := newTestInhabitant(KindSnail, ownerA, 1, Traits{AggressiveEater: true, RequiresSpecialFood: true, SnailEater: true})
	s.Equal(Traits{SnailEater: true}, snail.Traits)

	shrimp := newTestInhabitant(KindShrimp, ownerA, 1, Traits{AggressiveEater: true})
	s.Equal(Traits{}, shrimp.Traits)

	// a snail carrying SnailEater does not reject other snails
	other := newTestInhabitant(KindSnail, ownerA, 1, Traits{})
	s.True(Compatible(snail, other))
}

func (s *CompatibilitySuite) TestCheckCompatibility() {
	snail := newTestInhabitant(KindSnail, ownerA, 2, Traits{})
	eater := newTestFish(ownerA, 1, false, true)

	err := CheckCompatibility(eater, []*Inhabitant{nil, snail})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Contains(err.Error(), "SNAIL")

	s.NoError(CheckCompatibility(eater, []*Inhabitant{eater}))
	s.NoError(CheckCompatibility(eater, nil))
}

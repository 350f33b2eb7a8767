package models

import (
	"time"

	"github.com/google/uuid"

	id "aquaria/pkg/domain"
)

var (
	ownerA = id.OwnerID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	ownerB = id.OwnerID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))
	t0     = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

func newTestAquarium(owner id.OwnerID, state State) *Aquarium {
	a, err := NewAquarium(id.NewAquariumID(), NewAquariumParams{
		Name:      "Living room reef",
		Length:    100,
		Width:     40,
		Height:    50,
		Substrate: SubstrateSand,
		WaterType: WaterTypeFreshwater,
		State:     state,
		OwnerID:   owner,
	}, t0)
	if err != nil {
		panic(err)
	}
	return a
}

func newTestInhabitant(kind InhabitantKind, owner id.OwnerID, count int, traits Traits) *Inhabitant {
	i, err := NewInhabitant(kind, id.NewInhabitantID(), NewInhabitantParams{
		Species:   string(kind) + " species",
		Count:     count,
		WaterType: WaterTypeFreshwater,
		Traits:    traits,
		OwnerID:   owner,
	}, t0)
	if err != nil {
		panic(err)
	}
	return i
}

func newTestFish(owner id.OwnerID, count int, aggressive, snailEater bool) *Inhabitant {
	return newTestInhabitant(KindFish, owner, count, Traits{AggressiveEater: aggressive, SnailEater: snailEater})
}

func newTestAccessory(kind AccessoryKind, owner id.OwnerID) *Accessory {
	a, err := NewAccessory(kind, id.NewAccessoryID(), NewAccessoryParams{
		Model:        "Model X",
		SerialNumber: "SN-" + uuid.NewString()[:8],
		OwnerID:      owner,
		TurnOnTime:   "08:00",
		TurnOffTime:  "20:00",
	}, t0)
	if err != nil {
		panic(err)
	}
	return a
}

func newTestOrnament(owner id.OwnerID) *Ornament {
	o, err := NewOrnament(id.NewOrnamentID(), NewOrnamentParams{
		Name:    "Sunken ship",
		Color:   "brown",
		OwnerID: owner,
	}, t0)
	if err != nil {
		panic(err)
	}
	return o
}

func ptr[T any](v T) *T { return &v }

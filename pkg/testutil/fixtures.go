package testutil

import (
	"time"

	"github.com/google/uuid"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
)

// TestIDs provides fixed IDs for deterministic test data.
var TestIDs = struct {
	OwnerID1    id.OwnerID
	OwnerID2    id.OwnerID
	AquariumID1 id.AquariumID
	AquariumID2 id.AquariumID
}{
	OwnerID1:    id.OwnerID(uuid.MustParse("11111111-1111-1111-1111-111111111111")),
	OwnerID2:    id.OwnerID(uuid.MustParse("22222222-2222-2222-2222-222222222222")),
	AquariumID1: id.AquariumID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000001")),
	AquariumID2: id.AquariumID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000002")),
}

// FixedTime is the default clock for fixtures.
var FixedTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// AquariumBuilder provides a fluent interface for building test aquariums.
type AquariumBuilder struct {
	id     id.AquariumID
	params models.NewAquariumParams
	now    time.Time
}

// NewAquariumBuilder starts from a 100x40x50 freshwater tank in SETUP.
func NewAquariumBuilder() *AquariumBuilder {
	return &AquariumBuilder{
		id: id.NewAquariumID(),
		params: models.NewAquariumParams{
			Name:      "Test tank",
			Length:    100,
			Width:     40,
			Height:    50,
			Substrate: models.SubstrateGravel,
			WaterType: models.WaterTypeFreshwater,
			State:     models.StateSetup,
			OwnerID:   TestIDs.OwnerID1,
		},
		now: FixedTime,
	}
}

func (b *AquariumBuilder) WithID(aquariumID id.AquariumID) *AquariumBuilder {
	b.id = aquariumID
	return b
}

func (b *AquariumBuilder) WithOwner(ownerID id.OwnerID) *AquariumBuilder {
	b.params.OwnerID = ownerID
	return b
}

func (b *AquariumBuilder) WithName(name string) *AquariumBuilder {
	b.params.Name = name
	return b
}

func (b *AquariumBuilder) WithState(state models.State) *AquariumBuilder {
	b.params.State = state
	return b
}

func (b *AquariumBuilder) WithWaterType(waterType models.WaterType) *AquariumBuilder {
	b.params.WaterType = waterType
	return b
}

func (b *AquariumBuilder) WithDimensions(length, width, height float64) *AquariumBuilder {
	b.params.Length, b.params.Width, b.params.Height = length, width, height
	return b
}

func (b *AquariumBuilder) At(now time.Time) *AquariumBuilder {
	b.now = now
	return b
}

// Build panics on invalid input; fixtures are expected to be valid.
func (b *AquariumBuilder) Build() *models.Aquarium {
	a, err := models.NewAquarium(b.id, b.params, b.now)
	if err != nil {
		panic(err)
	}
	return a
}

// InhabitantBuilder provides a fluent interface for building test inhabitants.
type InhabitantBuilder struct {
	kind   models.InhabitantKind
	params models.NewInhabitantParams
	now    time.Time
}

// NewInhabitantBuilder starts from a peaceful freshwater fish group of one.
func NewInhabitantBuilder() *InhabitantBuilder {
	return &InhabitantBuilder{
		kind: models.KindFish,
		params: models.NewInhabitantParams{
			Species:   "Neon tetra",
			Count:     1,
			WaterType: models.WaterTypeFreshwater,
			OwnerID:   TestIDs.OwnerID1,
		},
		now: FixedTime,
	}
}

func (b *InhabitantBuilder) WithKind(kind models.InhabitantKind) *InhabitantBuilder {
	b.kind = kind
	return b
}

func (b *InhabitantBuilder) WithOwner(ownerID id.OwnerID) *InhabitantBuilder {
	b.params.OwnerID = ownerID
	return b
}

func (b *InhabitantBuilder) WithSpecies(species string) *InhabitantBuilder {
	b.params.Species = species
	return b
}

func (b *InhabitantBuilder) WithCount(count int) *InhabitantBuilder {
	b.params.Count = count
	return b
}

func (b *InhabitantBuilder) WithWaterType(waterType models.WaterType) *InhabitantBuilder {
	b.params.WaterType = waterType
	return b
}

func (b *InhabitantBuilder) Aggressive() *InhabitantBuilder {
	b.params.Traits.AggressiveEater = true
	return b
}

func (b *InhabitantBuilder) SnailEater() *InhabitantBuilder {
	b.params.Traits.SnailEater = true
	return b
}

func (b *InhabitantBuilder) At(now time.Time) *InhabitantBuilder {
	b.now = now
	return b
}

func (b *InhabitantBuilder) Build() *models.Inhabitant {
	i, err := models.NewInhabitant(b.kind, id.NewInhabitantID(), b.params, b.now)
	if err != nil {
		panic(err)
	}
	return i
}

// NewTestAccessory builds an accessory of kind with default payload values.
func NewTestAccessory(kind models.AccessoryKind, ownerID id.OwnerID) *models.Accessory {
	a, err := models.NewAccessory(kind, id.NewAccessoryID(), models.NewAccessoryParams{
		Model:        "Model X",
		SerialNumber: "SN-" + uuid.NewString()[:8],
		OwnerID:      ownerID,
		TurnOnTime:   "08:00",
		TurnOffTime:  "20:00",
	}, FixedTime)
	if err != nil {
		panic(err)
	}
	return a
}

// NewTestOrnament builds a plain ornament owned by ownerID.
func NewTestOrnament(ownerID id.OwnerID) *models.Ornament {
	o, err := models.NewOrnament(id.NewOrnamentID(), models.NewOrnamentParams{
		Name:    "Sunken ship",
		Color:   "brown",
		OwnerID: ownerID,
	}, FixedTime)
	if err != nil {
		panic(err)
	}
	return o
}

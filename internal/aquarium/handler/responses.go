package handler

import (
	"time"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
)

type AquariumResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Length                float64   `json:"length"`
	Width                 float64   `json:"width"`
	Height                float64   `json:"height"`
	VolumeLiters          float64   `json:"volume_liters"`
	Substrate             string    `json:"substrate"`
	WaterType             string    `json:"water_type"`
	Temperature           float64   `json:"temperature"`
	State                 string    `json:"state"`
	CurrentStateStartTime time.Time `json:"current_state_start_time"`
	Color                 string    `json:"color,omitempty"`
	Description           string    `json:"description,omitempty"`
	OwnerID               string    `json:"owner_id"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// AquariumDetailResponse adds the members and the stocking figures.
type AquariumDetailResponse struct {
	AquariumResponse
	RecommendedCapacity int                  `json:"recommended_capacity"`
	TotalInhabitants    int                  `json:"total_inhabitants"`
	Overstocked         bool                 `json:"overstocked"`
	Inhabitants         []InhabitantResponse `json:"inhabitants"`
	Accessories         []AccessoryResponse  `json:"accessories"`
	Ornaments           []OrnamentResponse   `json:"ornaments"`
}

type InhabitantResponse struct {
	ID                  string    `json:"id"`
	Kind                string    `json:"kind"`
	Species             string    `json:"species"`
	Name                string    `json:"name,omitempty"`
	DisplayName         string    `json:"display_name"`
	Color               string    `json:"color,omitempty"`
	Count               int       `json:"count"`
	Schooling           bool      `json:"schooling"`
	WaterType           string    `json:"water_type"`
	AggressiveEater     bool      `json:"aggressive_eater"`
	RequiresSpecialFood bool      `json:"requires_special_food"`
	SnailEater          bool      `json:"snail_eater"`
	Description         string    `json:"description,omitempty"`
	AquariumID          *string   `json:"aquarium_id"`
	OwnerID             string    `json:"owner_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type FilterResponse struct {
	External       bool `json:"external"`
	CapacityLiters int  `json:"capacity_liters"`
}

type LightingResponse struct {
	LED             bool    `json:"led"`
	TurnOnTime      string  `json:"turn_on_time"`
	TurnOffTime     string  `json:"turn_off_time"`
	DailyLightHours float64 `json:"daily_light_hours"`
}

type ThermostatResponse struct {
	MinTemperature     float64 `json:"min_temperature"`
	MaxTemperature     float64 `json:"max_temperature"`
	CurrentTemperature float64 `json:"current_temperature"`
	Status             string  `json:"status"`
}

type AccessoryResponse struct {
	ID           string              `json:"id"`
	Kind         string              `json:"kind"`
	Model        string              `json:"model"`
	SerialNumber string              `json:"serial_number"`
	Color        string              `json:"color,omitempty"`
	Description  string              `json:"description,omitempty"`
	Filter       *FilterResponse     `json:"filter,omitempty"`
	Lighting     *LightingResponse   `json:"lighting,omitempty"`
	Thermostat   *ThermostatResponse `json:"thermostat,omitempty"`
	AquariumID   *string             `json:"aquarium_id"`
	OwnerID      string              `json:"owner_id"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type OrnamentResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	Color             string    `json:"color"`
	Material          string    `json:"material,omitempty"`
	AirPumpCompatible bool      `json:"air_pump_compatible"`
	AquariumID        *string   `json:"aquarium_id"`
	OwnerID           string    `json:"owner_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type StateHistoryResponse struct {
	ID              string     `json:"id"`
	State           string     `json:"state"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int64     `json:"duration_minutes"`
	Active          bool       `json:"active"`
}

type StateDurationResponse struct {
	AquariumID string `json:"aquarium_id"`
	Minutes    int64  `json:"minutes"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

func optionalAquariumID(aquariumID id.AquariumID) *string {
	if aquariumID.IsNil() {
		return nil
	}
	s := aquariumID.String()
	return &s
}

func toAquariumResponse(a *models.Aquarium) AquariumResponse {
	return AquariumResponse{
		ID:                    a.ID.String(),
		Name:                  a.Name,
		Length:                a.Dimensions.Length,
		Width:                 a.Dimensions.Width,
		Height:                a.Dimensions.Height,
		VolumeLiters:          a.Volume(),
		Substrate:             string(a.Substrate),
		WaterType:             string(a.WaterType),
		Temperature:           a.Temperature,
		State:                 string(a.State()),
		CurrentStateStartTime: a.CurrentStateStartTime(),
		Color:                 a.Color,
		Description:           a.Description,
		OwnerID:               a.OwnerID().String(),
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func toAquariumDetailResponse(a *models.Aquarium) AquariumDetailResponse {
	return AquariumDetailResponse{
		AquariumResponse:    toAquariumResponse(a),
		RecommendedCapacity: a.RecommendedInhabitantCapacity(),
		TotalInhabitants:    a.TotalInhabitantCount(),
		Overstocked:         a.IsOverstocked(),
		Inhabitants:         mapAll(a.Inhabitants(), toInhabitantResponse),
		Accessories:         mapAll(a.Accessories(), toAccessoryResponse),
		Ornaments:           mapAll(a.Ornaments(), toOrnamentResponse),
	}
}

func toInhabitantResponse(i *models.Inhabitant) InhabitantResponse {
	return InhabitantResponse{
		ID:                  i.ID.String(),
		Kind:                string(i.Kind),
		Species:             i.Species,
		Name:                i.Name,
		DisplayName:         i.DisplayName(),
		Color:               i.Color,
		Count:               i.Count,
		Schooling:           i.Schooling,
		WaterType:           string(i.WaterType),
		AggressiveEater:     i.Traits.AggressiveEater,
		RequiresSpecialFood: i.Traits.RequiresSpecialFood,
		SnailEater:          i.Traits.SnailEater,
		Description:         i.Description,
		AquariumID:          optionalAquariumID(i.AquariumID()),
		OwnerID:             i.OwnerID().String(),
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
}

func toAccessoryResponse(a *models.Accessory) AccessoryResponse {
	resp := AccessoryResponse{
		ID:           a.ID.String(),
		Kind:         string(a.Kind),
		Model:        a.Model,
		SerialNumber: a.SerialNumber,
		Color:        a.Color,
		Description:  a.Description,
		AquariumID:   optionalAquariumID(a.AquariumID()),
		OwnerID:      a.OwnerID().String(),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	switch {
	case a.Filter != nil:
		resp.Filter = &FilterResponse{External: a.Filter.External, CapacityLiters: a.Filter.CapacityLiters}
	case a.Lighting != nil:
		resp.Lighting = &LightingResponse{
			LED:             a.Lighting.LED,
			TurnOnTime:      a.Lighting.TurnOnTime.String(),
			TurnOffTime:     a.Lighting.TurnOffTime.String(),
			DailyLightHours: a.Lighting.DailyLightDuration().Hours(),
		}
	case a.Thermostat != nil:
		resp.Thermostat = &ThermostatResponse{
			MinTemperature:     a.Thermostat.MinTemperature,
			MaxTemperature:     a.Thermostat.MaxTemperature,
			CurrentTemperature: a.Thermostat.CurrentTemperature,
			Status:             string(a.Thermostat.Status()),
		}
	}
	return resp
}

func toOrnamentResponse(o *models.Ornament) OrnamentResponse {
	return OrnamentResponse{
		ID:                o.ID.String(),
		Name:              o.Name,
		Description:       o.Description,
		Color:             o.Color,
		Material:          o.Material,
		AirPumpCompatible: o.AirPumpCompatible,
		AquariumID:        optionalAquariumID(o.AquariumID()),
		OwnerID:           o.OwnerID().String(),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func toStateHistoryResponse(h *models.StateHistory) StateHistoryResponse {
	return StateHistoryResponse{
		ID:              h.ID.String(),
		State:           string(h.State),
		StartTime:       h.StartTime,
		EndTime:         h.EndTime,
		DurationMinutes: h.DurationMinutes,
		Active:          h.IsActive(),
	}
}

func mapAll[M any, R any](items []M, fn func(M) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

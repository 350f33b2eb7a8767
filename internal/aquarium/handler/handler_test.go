package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"aquaria/internal/aquarium/service"
	accessorystore "aquaria/internal/aquarium/store/accessory"
	aquariumstore "aquaria/internal/aquarium/store/aquarium"
	historystore "aquaria/internal/aquarium/store/history"
	inhabitantstore "aquaria/internal/aquarium/store/inhabitant"
	ornamentstore "aquaria/internal/aquarium/store/ornament"
	id "aquaria/pkg/domain"
	"aquaria/pkg/requestcontext"
	"aquaria/pkg/testutil"
)

const ownerHeader = "X-Test-Owner"

type HandlerSuite struct {
	suite.Suite
	router http.Handler
	owner  id.OwnerID
	other  id.OwnerID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

// withTestOwner stands in for auth.RequireAuth by reading the owner from a header.
func withTestOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(ownerHeader); raw != "" {
			ownerID, err := id.ParseOwnerID(raw)
			if err == nil {
				r = r.WithContext(requestcontext.WithOwnerID(r.Context(), ownerID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(service.Stores{
		Aquariums:   aquariumstore.New(),
		Inhabitants: inhabitantstore.New(),
		Accessories: accessorystore.New(),
		Ornaments:   ornamentstore.New(),
		History:     historystore.New(),
	}, service.WithLogger(logger))

	r := chi.NewRouter()
	r.Use(withTestOwner)
	New(svc, logger).Register(r)
	s.router = r
	s.owner = testutil.TestIDs.OwnerID1
	s.other = testutil.TestIDs.OwnerID2
}

func (s *HandlerSuite) doAs(owner id.OwnerID, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if !owner.IsNil() {
		req.Header.Set(ownerHeader, owner.String())
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	return s.doAs(s.owner, method, path, body)
}

func decodeBody[T any](s *HandlerSuite, rec *httptest.ResponseRecorder) T {
	var out T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (s *HandlerSuite) createAquarium(waterType string) AquariumDetailResponse {
	rec := s.do(http.MethodPost, "/aquariums",
		`{"name":"Reef","length":100,"width":40,"height":50,"substrate":"sand","water_type":"`+waterType+`"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[AquariumDetailResponse](s, rec)
}

func (s *HandlerSuite) createInhabitant(body string) InhabitantResponse {
	rec := s.do(http.MethodPost, "/inhabitants", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[InhabitantResponse](s, rec)
}

func (s *HandlerSuite) createOrnament() OrnamentResponse {
	rec := s.do(http.MethodPost, "/ornaments", `{"name":"Castle","color":"grey","material":"resin"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[OrnamentResponse](s, rec)
}

func (s *HandlerSuite) TestAquariumCRUD() {
	created := s.createAquarium("freshwater")
	s.Equal("SETUP", created.State)
	s.Equal("SAND", created.Substrate)
	s.InDelta(200.0, created.VolumeLiters, 0.001)
	s.Equal(20, created.RecommendedCapacity)
	s.Empty(created.Inhabitants)

	path := "/aquariums/" + created.ID
	rec := s.do(http.MethodPatch, path, `{"name":"Planted","temperature":26.5}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[AquariumDetailResponse](s, rec)
	s.Equal("Planted", updated.Name)
	s.InDelta(26.5, updated.Temperature, 0.001)

	rec = s.do(http.MethodGet, "/aquariums", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	list := decodeBody[ListResponse[AquariumResponse]](s, rec)
	s.Equal(1, list.Total)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, path, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, "").Code)
}

func (s *HandlerSuite) TestCreateAquariumValidation() {
	rec := s.do(http.MethodPost, "/aquariums", `{"name":"  ","length":100,"width":40,"height":50,"substrate":"SAND","water_type":"FRESHWATER"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "validation_failed")

	rec = s.do(http.MethodPost, "/aquariums", `{"name":"Reef","length":0,"width":40,"height":50,"substrate":"SAND","water_type":"FRESHWATER"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/aquariums", `{"name":"Reef","length":10,"width":40,"height":50,"substrate":"MUD","water_type":"FRESHWATER"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/aquariums", `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "bad_request")
}

func (s *HandlerSuite) TestOwnershipAndPathErrors() {
	a := s.createAquarium("FRESHWATER")

	s.Equal(http.StatusForbidden, s.doAs(s.other, http.MethodGet, "/aquariums/"+a.ID, "").Code)
	s.Equal(http.StatusForbidden, s.doAs(s.other, http.MethodPost, "/aquariums/"+a.ID+"/activate", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/aquariums/not-a-uuid", "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/aquariums/"+id.NewAquariumID().String(), "").Code)
	s.Equal(http.StatusInternalServerError, s.doAs(id.OwnerID{}, http.MethodGet, "/aquariums", "").Code)
}

func (s *HandlerSuite) TestStateEndpoints() {
	a := s.createAquarium("FRESHWATER")
	base := "/aquariums/" + a.ID

	rec := s.do(http.MethodPost, base+"/state", `{"state":"maintenance"}`)
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "invalid_state_transition")

	rec = s.do(http.MethodPost, base+"/state", `{"state":"FLOODED"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, base+"/activate", "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("RUNNING", decodeBody[AquariumDetailResponse](s, rec).State)

	rec = s.do(http.MethodPost, base+"/maintenance", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("MAINTENANCE", decodeBody[AquariumDetailResponse](s, rec).State)

	rec = s.do(http.MethodPut, base+"/state", `{"state":"SETUP"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("SETUP", decodeBody[AquariumDetailResponse](s, rec).State)

	rec = s.do(http.MethodGet, base+"/state/duration", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(a.ID, decodeBody[StateDurationResponse](s, rec).AquariumID)

	rec = s.do(http.MethodGet, base+"/history", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	all := decodeBody[ListResponse[StateHistoryResponse]](s, rec)
	s.Equal(4, all.Total)

	rec = s.do(http.MethodGet, base+"/history?state=running", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	running := decodeBody[ListResponse[StateHistoryResponse]](s, rec)
	s.Require().Equal(1, running.Total)
	s.False(running.Items[0].Active)
	s.NotNil(running.Items[0].EndTime)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, base+"/history?from=yesterday&to=2030-01-01T00:00:00Z", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, base+"/history?from=2030-01-01T00:00:00Z", "").Code)

	rec = s.do(http.MethodGet, base+"/history?from=2000-01-01T00:00:00Z&to=2100-01-01T00:00:00Z", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(4, decodeBody[ListResponse[StateHistoryResponse]](s, rec).Total)
}

func (s *HandlerSuite) TestInhabitantMembership() {
	a := s.createAquarium("FRESHWATER")
	base := "/aquariums/" + a.ID

	hunter := s.createInhabitant(`{"kind":"fish","species":"Pufferfish","count":1,"water_type":"freshwater","snail_eater":true}`)
	snail := s.createInhabitant(`{"kind":"snail","species":"Nerite","count":2,"water_type":"FRESHWATER"}`)

	rec := s.do(http.MethodPost, base+"/inhabitants/"+hunter.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(1, decodeBody[AquariumDetailResponse](s, rec).TotalInhabitants)

	rec = s.do(http.MethodPost, base+"/inhabitants/"+snail.ID, "")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/inhabitants/"+snail.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Nil(decodeBody[InhabitantResponse](s, rec).AquariumID)

	rec = s.do(http.MethodDelete, base+"/inhabitants/"+hunter.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decodeBody[AquariumDetailResponse](s, rec).Inhabitants)

	rec = s.do(http.MethodDelete, base+"/inhabitants/"+hunter.ID, "")
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerSuite) TestCreateInhabitantInsideAquarium() {
	a := s.createAquarium("SALTWATER")
	base := "/aquariums/" + a.ID

	rec := s.do(http.MethodPost, base+"/inhabitants", `{"kind":"fish","species":"Neon tetra","count":10,"water_type":"FRESHWATER"}`)
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, base+"/inhabitants", `{"kind":"fish","species":"Clownfish","count":2,"water_type":"SALTWATER"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	detail := decodeBody[AquariumDetailResponse](s, rec)
	s.Require().Len(detail.Inhabitants, 1)
	s.Equal(a.ID, *detail.Inhabitants[0].AquariumID)

	rec = s.do(http.MethodGet, "/inhabitants", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, decodeBody[ListResponse[InhabitantResponse]](s, rec).Total)
}

func (s *HandlerSuite) TestUpdateInhabitantKeepsUnspecifiedTraits() {
	fish := s.createInhabitant(`{"kind":"fish","species":"Oscar","count":1,"water_type":"FRESHWATER","aggressive_eater":true,"snail_eater":true}`)

	rec := s.do(http.MethodPatch, "/inhabitants/"+fish.ID, `{"snail_eater":false,"count":2}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[InhabitantResponse](s, rec)
	s.True(updated.AggressiveEater)
	s.False(updated.SnailEater)
	s.Equal(2, updated.Count)

	s.Equal(http.StatusBadRequest, s.do(http.MethodPatch, "/inhabitants/"+fish.ID, `{"count":0}`).Code)
	s.Equal(http.StatusForbidden, s.doAs(s.other, http.MethodDelete, "/inhabitants/"+fish.ID, "").Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/inhabitants/"+fish.ID, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/inhabitants/"+fish.ID, "").Code)
}

func (s *HandlerSuite) TestAccessoryVariants() {
	rec := s.do(http.MethodPost, "/accessories", `{"kind":"heater","model":"T-100","serial_number":"SN-1"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	heater := decodeBody[AccessoryResponse](s, rec)
	s.Equal("THERMOSTAT", heater.Kind)
	s.Require().NotNil(heater.Thermostat)
	s.InDelta(25.0, heater.Thermostat.CurrentTemperature, 0.001)
	s.Nil(heater.Filter)

	rec = s.do(http.MethodPost, "/accessories", `{"kind":"light","model":"L-1","serial_number":"SN-2","led":true,"turn_on_time":"08:00","turn_off_time":"20:00"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	light := decodeBody[AccessoryResponse](s, rec)
	s.Require().NotNil(light.Lighting)
	s.InDelta(12.0, light.Lighting.DailyLightHours, 0.001)

	rec = s.do(http.MethodPost, "/accessories", `{"kind":"pump","model":"P-1","serial_number":"SN-3"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPatch, "/accessories/"+heater.ID, `{"current_temperature":27}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.InDelta(27.0, decodeBody[AccessoryResponse](s, rec).Thermostat.CurrentTemperature, 0.001)

	a := s.createAquarium("FRESHWATER")
	rec = s.do(http.MethodPost, "/aquariums/"+a.ID+"/accessories/"+heater.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Len(decodeBody[AquariumDetailResponse](s, rec).Accessories, 1)

	rec = s.do(http.MethodDelete, "/aquariums/"+a.ID+"/accessories/"+light.ID, "")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/accessories", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(2, decodeBody[ListResponse[AccessoryResponse]](s, rec).Total)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/accessories/"+heater.ID, "").Code)
	rec = s.do(http.MethodGet, "/aquariums/"+a.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decodeBody[AquariumDetailResponse](s, rec).Accessories)
}

func (s *HandlerSuite) TestInactiveAquariumRejectsOrnaments() {
	a := s.createAquarium("FRESHWATER")
	o := s.createOrnament()

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/aquariums/"+a.ID+"/deactivate", "").Code)
	rec := s.do(http.MethodPost, "/aquariums/"+a.ID+"/ornaments/"+o.ID, "")
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPatch, "/ornaments/"+o.ID, `{"air_pump_compatible":true}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.True(decodeBody[OrnamentResponse](s, rec).AirPumpCompatible)
}

func (s *HandlerSuite) TestTransfer() {
	source := s.createAquarium("FRESHWATER")
	target := s.createAquarium("FRESHWATER")
	o := s.createOrnament()
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/aquariums/"+source.ID+"/ornaments/"+o.ID, "").Code)

	body := `{"target_aquarium_id":"` + target.ID + `"}`
	rec := s.do(http.MethodPost, "/aquariums/"+source.ID+"/transfer/ornaments/"+o.ID, body)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	moved := decodeBody[AquariumDetailResponse](s, rec)
	s.Equal(target.ID, moved.ID)
	s.Require().Len(moved.Ornaments, 1)
	s.Equal(target.ID, *moved.Ornaments[0].AquariumID)

	rec = s.do(http.MethodGet, "/aquariums/"+source.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decodeBody[AquariumDetailResponse](s, rec).Ornaments)

	rec = s.do(http.MethodPost, "/aquariums/"+source.ID+"/transfer/ornament/"+o.ID, body)
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/aquariums/"+target.ID+"/transfer/ornament/"+o.ID, `{"target_aquarium_id":"`+target.ID+`"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/aquariums/"+source.ID+"/transfer/plankton/"+o.ID, body)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/aquariums/"+source.ID+"/transfer/ornament/"+o.ID, `{"target_aquarium_id":"tank-2"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

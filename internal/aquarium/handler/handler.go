package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"aquaria/internal/aquarium/models"
	"aquaria/internal/aquarium/service"
	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/platform/httputil"
	"aquaria/pkg/requestcontext"
)

// Service is the aquarium application service as seen by the transport.
type Service interface {
	CreateAquarium(ctx context.Context, ownerID id.OwnerID, cmd service.CreateAquariumCommand) (*models.Aquarium, error)
	GetAquarium(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error)
	ListAquariums(ctx context.Context, ownerID id.OwnerID) ([]*models.Aquarium, error)
	UpdateAquarium(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, u models.AquariumUpdate) (*models.Aquarium, error)
	DeleteAquarium(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) error

	TransitionState(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, target string) (*models.Aquarium, error)
	OverrideState(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, target string) (*models.Aquarium, error)
	Activate(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error)
	StartMaintenance(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error)
	Deactivate(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error)
	CurrentStateDuration(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (int64, error)
	StateHistory(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) ([]*models.StateHistory, error)
	StateHistoryByState(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, state string) ([]*models.StateHistory, error)
	StateHistoryBetween(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, from, to time.Time) ([]*models.StateHistory, error)

	CreateInhabitant(ctx context.Context, ownerID id.OwnerID, cmd service.CreateInhabitantCommand) (*models.Inhabitant, error)
	CreateAndAddInhabitant(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, cmd service.CreateInhabitantCommand) (*models.Aquarium, error)
	GetInhabitant(ctx context.Context, ownerID id.OwnerID, inhabitantID id.InhabitantID) (*models.Inhabitant, error)
	ListInhabitants(ctx context.Context, ownerID id.OwnerID) ([]*models.Inhabitant, error)
	UpdateInhabitant(ctx context.Context, ownerID id.OwnerID, inhabitantID id.InhabitantID, u models.InhabitantUpdate) (*models.Inhabitant, error)
	DeleteInhabitant(ctx context.Context, ownerID id.OwnerID, inhabitantID id.InhabitantID) error
	AddInhabitant(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, inhabitantID id.InhabitantID) (*models.Aquarium, error)
	RemoveInhabitant(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, inhabitantID id.InhabitantID) (*models.Aquarium, error)
	TransferInhabitant(ctx context.Context, ownerID id.OwnerID, sourceID, targetID id.AquariumID, inhabitantID id.InhabitantID) (*models.Aquarium, error)

	CreateAccessory(ctx context.Context, ownerID id.OwnerID, cmd service.CreateAccessoryCommand) (*models.Accessory, error)
	GetAccessory(ctx context.Context, ownerID id.OwnerID, accessoryID id.AccessoryID) (*models.Accessory, error)
	ListAccessories(ctx context.Context, ownerID id.OwnerID) ([]*models.Accessory, error)
	UpdateAccessory(ctx context.Context, ownerID id.OwnerID, accessoryID id.AccessoryID, u models.AccessoryUpdate) (*models.Accessory, error)
	DeleteAccessory(ctx context.Context, ownerID id.OwnerID, accessoryID id.AccessoryID) error
	AttachAccessory(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, accessoryID id.AccessoryID) (*models.Aquarium, error)
	DetachAccessory(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, accessoryID id.AccessoryID) (*models.Aquarium, error)
	TransferAccessory(ctx context.Context, ownerID id.OwnerID, sourceID, targetID id.AquariumID, accessoryID id.AccessoryID) (*models.Aquarium, error)

	CreateOrnament(ctx context.Context, ownerID id.OwnerID, cmd service.CreateOrnamentCommand) (*models.Ornament, error)
	GetOrnament(ctx context.Context, ownerID id.OwnerID, ornamentID id.OrnamentID) (*models.Ornament, error)
	ListOrnaments(ctx context.Context, ownerID id.OwnerID) ([]*models.Ornament, error)
	UpdateOrnament(ctx context.Context, ownerID id.OwnerID, ornamentID id.OrnamentID, u models.OrnamentUpdate) (*models.Ornament, error)
	DeleteOrnament(ctx context.Context, ownerID id.OwnerID, ornamentID id.OrnamentID) error
	AttachOrnament(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, ornamentID id.OrnamentID) (*models.Aquarium, error)
	DetachOrnament(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, ornamentID id.OrnamentID) (*models.Aquarium, error)
	TransferOrnament(ctx context.Context, ownerID id.OwnerID, sourceID, targetID id.AquariumID, ornamentID id.OrnamentID) (*models.Aquarium, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts every aquarium route. All of them expect auth.RequireAuth upstream.
func (h *Handler) Register(r chi.Router) {
	r.Route("/aquariums", func(r chi.Router) {
		r.Get("/", h.HandleListAquariums)
		r.Post("/", h.HandleCreateAquarium)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGetAquarium)
			r.Patch("/", h.HandleUpdateAquarium)
			r.Delete("/", h.HandleDeleteAquarium)

			r.Post("/state", h.HandleTransitionState)
			r.Put("/state", h.HandleOverrideState)
			r.Get("/state/duration", h.HandleStateDuration)
			r.Post("/activate", h.HandleActivate)
			r.Post("/maintenance", h.HandleStartMaintenance)
			r.Post("/deactivate", h.HandleDeactivate)
			r.Get("/history", h.HandleStateHistory)

			r.Post("/inhabitants", h.HandleCreateAndAddInhabitant)
			r.Post("/inhabitants/{itemID}", h.HandleAddInhabitant)
			r.Delete("/inhabitants/{itemID}", h.HandleRemoveInhabitant)
			r.Post("/accessories/{itemID}", h.HandleAttachAccessory)
			r.Delete("/accessories/{itemID}", h.HandleDetachAccessory)
			r.Post("/ornaments/{itemID}", h.HandleAttachOrnament)
			r.Delete("/ornaments/{itemID}", h.HandleDetachOrnament)
			r.Post("/transfer/{kind}/{itemID}", h.HandleTransfer)
		})
	})

	r.Route("/inhabitants", func(r chi.Router) {
		r.Get("/", h.HandleListInhabitants)
		r.Post("/", h.HandleCreateInhabitant)
		r.Get("/{itemID}", h.HandleGetInhabitant)
		r.Patch("/{itemID}", h.HandleUpdateInhabitant)
		r.Delete("/{itemID}", h.HandleDeleteInhabitant)
	})
	r.Route("/accessories", func(r chi.Router) {
		r.Get("/", h.HandleListAccessories)
		r.Post("/", h.HandleCreateAccessory)
		r.Get("/{itemID}", h.HandleGetAccessory)
		r.Patch("/{itemID}", h.HandleUpdateAccessory)
		r.Delete("/{itemID}", h.HandleDeleteAccessory)
	})
	r.Route("/ornaments", func(r chi.Router) {
		r.Get("/", h.HandleListOrnaments)
		r.Post("/", h.HandleCreateOrnament)
		r.Get("/{itemID}", h.HandleGetOrnament)
		r.Patch("/{itemID}", h.HandleUpdateOrnament)
		r.Delete("/{itemID}", h.HandleDeleteOrnament)
	})
}

// request bundles what every handler needs before calling the service.
type request struct {
	ctx       context.Context
	requestID string
	ownerID   id.OwnerID
}

func (h *Handler) begin(w http.ResponseWriter, r *http.Request) (request, bool) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	ownerID, err := httputil.RequireOwnerID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return request{}, false
	}
	return request{ctx: ctx, requestID: requestID, ownerID: ownerID}, true
}

// fail logs err at a level matching its status and writes the error response.
func (h *Handler) fail(w http.ResponseWriter, req request, msg string, err error) {
	if httputil.DomainCodeToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(req.ctx, msg, "error", err, "request_id", req.requestID)
	} else {
		h.logger.WarnContext(req.ctx, msg, "error", err, "request_id", req.requestID)
	}
	httputil.WriteError(w, err)
}

func pathID[T any](w http.ResponseWriter, r *http.Request, param string, parse func(string) (T, error)) (T, bool) {
	v, err := parse(chi.URLParam(r, param))
	if err != nil {
		httputil.WriteError(w, err)
		var zero T
		return zero, false
	}
	return v, true
}

func (h *Handler) aquariumID(w http.ResponseWriter, r *http.Request) (id.AquariumID, bool) {
	return pathID(w, r, "id", id.ParseAquariumID)
}

func (h *Handler) writeAquarium(w http.ResponseWriter, req request, status int, msg string, a *models.Aquarium, err error) {
	if err != nil {
		h.fail(w, req, msg, err)
		return
	}
	httputil.WriteJSON(w, status, toAquariumDetailResponse(a))
}

func (h *Handler) HandleCreateAquarium(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[CreateAquariumRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	a, err := h.service.CreateAquarium(req.ctx, req.ownerID, body.command())
	h.writeAquarium(w, req, http.StatusCreated, "create aquarium failed", a, err)
}

func (h *Handler) HandleListAquariums(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	list, err := h.service.ListAquariums(req.ctx, req.ownerID)
	if err != nil {
		h.fail(w, req, "list aquariums failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newList(mapAll(list, toAquariumResponse)))
}

func (h *Handler) HandleGetAquarium(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	a, err := h.service.GetAquarium(req.ctx, req.ownerID, aquariumID)
	h.writeAquarium(w, req, http.StatusOK, "get aquarium failed", a, err)
}

func (h *Handler) HandleUpdateAquarium(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[UpdateAquariumRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	a, err := h.service.UpdateAquarium(req.ctx, req.ownerID, aquariumID, body.update())
	h.writeAquarium(w, req, http.StatusOK, "update aquarium failed", a, err)
}

func (h *Handler) HandleDeleteAquarium(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteAquarium(req.ctx, req.ownerID, aquariumID); err != nil {
		h.fail(w, req, "delete aquarium failed", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleTransitionState(w http.ResponseWriter, r *http.Request) {
	h.handleStateRequest(w, r, "transition state failed", h.service.TransitionState)
}

func (h *Handler) HandleOverrideState(w http.ResponseWriter, r *http.Request) {
	h.handleStateRequest(w, r, "override state failed", h.service.OverrideState)
}

type stateTarget func(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID, target string) (*models.Aquarium, error)

func (h *Handler) handleStateRequest(w http.ResponseWriter, r *http.Request, msg string, apply stateTarget) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[StateRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	a, err := apply(req.ctx, req.ownerID, aquariumID, body.State)
	h.writeAquarium(w, req, http.StatusOK, msg, a, err)
}

type lifecycleOp func(ctx context.Context, ownerID id.OwnerID, aquariumID id.AquariumID) (*models.Aquarium, error)

func (h *Handler) handleLifecycle(w http.ResponseWriter, r *http.Request, msg string, op lifecycleOp) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	a, err := op(req.ctx, req.ownerID, aquariumID)
	h.writeAquarium(w, req, http.StatusOK, msg, a, err)
}

func (h *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.handleLifecycle(w, r, "activate aquarium failed", h.service.Activate)
}

func (h *Handler) HandleStartMaintenance(w http.ResponseWriter, r *http.Request) {
	h.handleLifecycle(w, r, "start maintenance failed", h.service.StartMaintenance)
}

func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.handleLifecycle(w, r, "deactivate aquarium failed", h.service.Deactivate)
}

func (h *Handler) HandleStateDuration(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	minutes, err := h.service.CurrentStateDuration(req.ctx, req.ownerID, aquariumID)
	if err != nil {
		h.fail(w, req, "state duration failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, StateDurationResponse{AquariumID: aquariumID.String(), Minutes: minutes})
}

// HandleStateHistory filters by state, or by the from/to window when both
// RFC 3339 bounds are given.
func (h *Handler) HandleStateHistory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	var (
		entries []*models.StateHistory
		err     error
	)
	switch {
	case q.Get("state") != "":
		entries, err = h.service.StateHistoryByState(req.ctx, req.ownerID, aquariumID, q.Get("state"))
	case q.Get("from") != "" || q.Get("to") != "":
		var from, to time.Time
		from, err = parseTimeParam("from", q.Get("from"))
		if err == nil {
			to, err = parseTimeParam("to", q.Get("to"))
		}
		if err == nil {
			entries, err = h.service.StateHistoryBetween(req.ctx, req.ownerID, aquariumID, from, to)
		}
	default:
		entries, err = h.service.StateHistory(req.ctx, req.ownerID, aquariumID)
	}
	if err != nil {
		h.fail(w, req, "state history failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newList(mapAll(entries, toStateHistoryResponse)))
}

func parseTimeParam(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, name+" is required")
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, name+" must be an RFC 3339 timestamp")
	}
	return t, nil
}

func (h *Handler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	sourceID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[TransferRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	targetID, err := id.ParseAquariumID(body.TargetAquariumID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var a *models.Aquarium
	switch strings.ToLower(chi.URLParam(r, "kind")) {
	case "inhabitant", "inhabitants":
		itemID, ok := pathID(w, r, "itemID", id.ParseInhabitantID)
		if !ok {
			return
		}
		a, err = h.service.TransferInhabitant(req.ctx, req.ownerID, sourceID, targetID, itemID)
	case "accessory", "accessories":
		itemID, ok := pathID(w, r, "itemID", id.ParseAccessoryID)
		if !ok {
			return
		}
		a, err = h.service.TransferAccessory(req.ctx, req.ownerID, sourceID, targetID, itemID)
	case "ornament", "ornaments":
		itemID, ok := pathID(w, r, "itemID", id.ParseOrnamentID)
		if !ok {
			return
		}
		a, err = h.service.TransferOrnament(req.ctx, req.ownerID, sourceID, targetID, itemID)
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unknown item kind"))
		return
	}
	h.writeAquarium(w, req, http.StatusOK, "transfer failed", a, err)
}

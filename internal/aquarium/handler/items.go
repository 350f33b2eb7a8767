package handler

import (
	"net/http"

	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/httputil"
)

func (h *Handler) HandleCreateInhabitant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[CreateInhabitantRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	i, err := h.service.CreateInhabitant(req.ctx, req.ownerID, body.command())
	if err != nil {
		h.fail(w, req, "create inhabitant failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toInhabitantResponse(i))
}

// HandleCreateAndAddInhabitant creates an inhabitant directly inside the aquarium.
func (h *Handler) HandleCreateAndAddInhabitant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[CreateInhabitantRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	a, err := h.service.CreateAndAddInhabitant(req.ctx, req.ownerID, aquariumID, body.command())
	h.writeAquarium(w, req, http.StatusCreated, "create inhabitant in aquarium failed", a, err)
}

func (h *Handler) HandleListInhabitants(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	list, err := h.service.ListInhabitants(req.ctx, req.ownerID)
	if err != nil {
		h.fail(w, req, "list inhabitants failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newList(mapAll(list, toInhabitantResponse)))
}

func (h *Handler) HandleGetInhabitant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	inhabitantID, ok := pathID(w, r, "itemID", id.ParseInhabitantID)
	if !ok {
		return
	}
	i, err := h.service.GetInhabitant(req.ctx, req.ownerID, inhabitantID)
	if err != nil {
		h.fail(w, req, "get inhabitant failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toInhabitantResponse(i))
}

func (h *Handler) HandleUpdateInhabitant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	inhabitantID, ok := pathID(w, r, "itemID", id.ParseInhabitantID)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[UpdateInhabitantRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	current, err := h.service.GetInhabitant(req.ctx, req.ownerID, inhabitantID)
	if err != nil {
		h.fail(w, req, "update inhabitant failed", err)
		return
	}
	i, err := h.service.UpdateInhabitant(req.ctx, req.ownerID, inhabitantID, body.update(current.Traits))
	if err != nil {
		h.fail(w, req, "update inhabitant failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toInhabitantResponse(i))
}

func (h *Handler) HandleDeleteInhabitant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	inhabitantID, ok := pathID(w, r, "itemID", id.ParseInhabitantID)
	if !ok {
		return
	}
	if err := h.service.DeleteInhabitant(req.ctx, req.ownerID, inhabitantID); err != nil {
		h.fail(w, req, "delete inhabitant failed", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleAddInhabitant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	inhabitantID, ok := pathID(w, r, "itemID", id.ParseInhabitantID)
	if !ok {
		return
	}
	a, err := h.service.AddInhabitant(req.ctx, req.ownerID, aquariumID, inhabitantID)
	h.writeAquarium(w, req, http.StatusOK, "add inhabitant failed", a, err)
}

func (h *Handler) HandleRemoveInhabitant(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	inhabitantID, ok := pathID(w, r, "itemID", id.ParseInhabitantID)
	if !ok {
		return
	}
	a, err := h.service.RemoveInhabitant(req.ctx, req.ownerID, aquariumID, inhabitantID)
	h.writeAquarium(w, req, http.StatusOK, "remove inhabitant failed", a, err)
}

func (h *Handler) HandleCreateAccessory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[CreateAccessoryRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	a, err := h.service.CreateAccessory(req.ctx, req.ownerID, body.command())
	if err != nil {
		h.fail(w, req, "create accessory failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toAccessoryResponse(a))
}

func (h *Handler) HandleListAccessories(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	list, err := h.service.ListAccessories(req.ctx, req.ownerID)
	if err != nil {
		h.fail(w, req, "list accessories failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newList(mapAll(list, toAccessoryResponse)))
}

func (h *Handler) HandleGetAccessory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	accessoryID, ok := pathID(w, r, "itemID", id.ParseAccessoryID)
	if !ok {
		return
	}
	a, err := h.service.GetAccessory(req.ctx, req.ownerID, accessoryID)
	if err != nil {
		h.fail(w, req, "get accessory failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAccessoryResponse(a))
}

func (h *Handler) HandleUpdateAccessory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	accessoryID, ok := pathID(w, r, "itemID", id.ParseAccessoryID)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[UpdateAccessoryRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	a, err := h.service.UpdateAccessory(req.ctx, req.ownerID, accessoryID, body.update())
	if err != nil {
		h.fail(w, req, "update accessory failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAccessoryResponse(a))
}

func (h *Handler) HandleDeleteAccessory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	accessoryID, ok := pathID(w, r, "itemID", id.ParseAccessoryID)
	if !ok {
		return
	}
	if err := h.service.DeleteAccessory(req.ctx, req.ownerID, accessoryID); err != nil {
		h.fail(w, req, "delete accessory failed", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleAttachAccessory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	accessoryID, ok := pathID(w, r, "itemID", id.ParseAccessoryID)
	if !ok {
		return
	}
	a, err := h.service.AttachAccessory(req.ctx, req.ownerID, aquariumID, accessoryID)
	h.writeAquarium(w, req, http.StatusOK, "attach accessory failed", a, err)
}

func (h *Handler) HandleDetachAccessory(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	accessoryID, ok := pathID(w, r, "itemID", id.ParseAccessoryID)
	if !ok {
		return
	}
	a, err := h.service.DetachAccessory(req.ctx, req.ownerID, aquariumID, accessoryID)
	h.writeAquarium(w, req, http.StatusOK, "detach accessory failed", a, err)
}

func (h *Handler) HandleCreateOrnament(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[CreateOrnamentRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	o, err := h.service.CreateOrnament(req.ctx, req.ownerID, body.command())
	if err != nil {
		h.fail(w, req, "create ornament failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toOrnamentResponse(o))
}

func (h *Handler) HandleListOrnaments(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	list, err := h.service.ListOrnaments(req.ctx, req.ownerID)
	if err != nil {
		h.fail(w, req, "list ornaments failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newList(mapAll(list, toOrnamentResponse)))
}

func (h *Handler) HandleGetOrnament(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	ornamentID, ok := pathID(w, r, "itemID", id.ParseOrnamentID)
	if !ok {
		return
	}
	o, err := h.service.GetOrnament(req.ctx, req.ownerID, ornamentID)
	if err != nil {
		h.fail(w, req, "get ornament failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toOrnamentResponse(o))
}

func (h *Handler) HandleUpdateOrnament(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	ornamentID, ok := pathID(w, r, "itemID", id.ParseOrnamentID)
	if !ok {
		return
	}
	body, ok := httputil.DecodeAndPrepare[UpdateOrnamentRequest](w, r, h.logger, req.ctx, req.requestID)
	if !ok {
		return
	}
	o, err := h.service.UpdateOrnament(req.ctx, req.ownerID, ornamentID, body.update())
	if err != nil {
		h.fail(w, req, "update ornament failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toOrnamentResponse(o))
}

func (h *Handler) HandleDeleteOrnament(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	ornamentID, ok := pathID(w, r, "itemID", id.ParseOrnamentID)
	if !ok {
		return
	}
	if err := h.service.DeleteOrnament(req.ctx, req.ownerID, ornamentID); err != nil {
		h.fail(w, req, "delete ornament failed", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleAttachOrnament(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	ornamentID, ok := pathID(w, r, "itemID", id.ParseOrnamentID)
	if !ok {
		return
	}
	a, err := h.service.AttachOrnament(req.ctx, req.ownerID, aquariumID, ornamentID)
	h.writeAquarium(w, req, http.StatusOK, "attach ornament failed", a, err)
}

func (h *Handler) HandleDetachOrnament(w http.ResponseWriter, r *http.Request) {
	req, ok := h.begin(w, r)
	if !ok {
		return
	}
	aquariumID, ok := h.aquariumID(w, r)
	if !ok {
		return
	}
	ornamentID, ok := pathID(w, r, "itemID", id.ParseOrnamentID)
	if !ok {
		return
	}
	a, err := h.service.DetachOrnament(req.ctx, req.ownerID, aquariumID, ornamentID)
	h.writeAquarium(w, req, http.StatusOK, "detach ornament failed", a, err)
}

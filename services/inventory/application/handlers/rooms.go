package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/assettrack/pkg/errhttp"
	pkgvalidator "github.com/ghuser/assettrack/pkg/validator"
	appsvcs "github.com/ghuser/assettrack/services/inventory/application/services"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// PostRoomHandler handles POST /inventory/blocks/{blockID}/rooms requests.
type PostRoomHandler struct {
	svc *appsvcs.Services
}

func NewPostRoomHandler(svc *appsvcs.Services) *PostRoomHandler {
	return &PostRoomHandler{svc: svc}
}

// Execute creates an empty room in a block.
//
//	@Summary		Create room
//	@Description	Appends a new room with no items. An unknown block id is a no-op (applied=false).
//	@Tags			rooms
//	@Accept			json
//	@Produce		json
//	@Param			blockID	path		string		true	"Block ID"
//	@Param			request	body		NameRequest	true	"Room name"
//	@Success		201		{object}	MutationResponse
//	@Success		200		{object}	MutationResponse	"No-op"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID}/rooms [post]
func (h *PostRoomHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[NameRequest](w, r)
	if !ok {
		return
	}

	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	room, res, err := h.svc.Inventory.AddRoom(r.Context(), blockID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toRoomResponse(room)
	writeMutation(w, res, MutationResponse{Room: &resp}, http.StatusCreated)
}

// PutRoomHandler handles PUT /inventory/blocks/{blockID}/rooms/{roomID} requests.
type PutRoomHandler struct {
	svc *appsvcs.Services
}

func NewPutRoomHandler(svc *appsvcs.Services) *PutRoomHandler {
	return &PutRoomHandler{svc: svc}
}

// Execute renames a room.
//
//	@Summary		Rename room
//	@Tags			rooms
//	@Accept			json
//	@Produce		json
//	@Param			blockID	path		string		true	"Block ID"
//	@Param			roomID	path		string		true	"Room ID"
//	@Param			request	body		NameRequest	true	"New name"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID}/rooms/{roomID} [put]
func (h *PutRoomHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[NameRequest](w, r)
	if !ok {
		return
	}

	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	roomID := models.RoomID(chi.URLParam(r, "roomID"))
	room, res, err := h.svc.Inventory.EditRoom(r.Context(), blockID, roomID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toRoomResponse(room)
	writeMutation(w, res, MutationResponse{Room: &resp}, http.StatusOK)
}

// DeleteRoomHandler handles DELETE /inventory/blocks/{blockID}/rooms/{roomID} requests.
type DeleteRoomHandler struct {
	svc *appsvcs.Services
}

func NewDeleteRoomHandler(svc *appsvcs.Services) *DeleteRoomHandler {
	return &DeleteRoomHandler{svc: svc}
}

// Execute deletes a room with all its items.
//
//	@Summary		Delete room
//	@Tags			rooms
//	@Produce		json
//	@Param			blockID	path		string	true	"Block ID"
//	@Param			roomID	path		string	true	"Room ID"
//	@Success		200		{object}	MutationResponse
//	@Router			/inventory/blocks/{blockID}/rooms/{roomID} [delete]
func (h *DeleteRoomHandler) Execute(w http.ResponseWriter, r *http.Request) {
	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	roomID := models.RoomID(chi.URLParam(r, "roomID"))
	res, err := h.svc.Inventory.DeleteRoom(r.Context(), blockID, roomID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	writeMutation(w, res, MutationResponse{}, http.StatusOK)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/assettrack/pkg/errhttp"
	"github.com/ghuser/assettrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/assettrack/pkg/validator"
	appsvcs "github.com/ghuser/assettrack/services/inventory/application/services"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
)

// PostBlockHandler handles POST /inventory/blocks requests.
type PostBlockHandler struct {
	svc *appsvcs.Services
}

func NewPostBlockHandler(svc *appsvcs.Services) *PostBlockHandler {
	return &PostBlockHandler{svc: svc}
}

// Execute creates an empty block.
//
//	@Summary		Create block
//	@Description	Appends a new block with no rooms
//	@Tags			blocks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		NameRequest	true	"Block name"
//	@Success		201		{object}	MutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/blocks [post]
func (h *PostBlockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[NameRequest](w, r)
	if !ok {
		return
	}

	block, res, err := h.svc.Inventory.AddBlock(r.Context(), req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toBlockResponse(block)
	writeMutation(w, res, MutationResponse{Block: &resp}, http.StatusCreated)
}

// GetBlockHandler handles GET /inventory/blocks/{blockID} requests.
type GetBlockHandler struct {
	svc *appsvcs.Services
}

func NewGetBlockHandler(svc *appsvcs.Services) *GetBlockHandler {
	return &GetBlockHandler{svc: svc}
}

// Execute returns one block with its rooms and items.
//
//	@Summary		Get block
//	@Tags			blocks
//	@Produce		json
//	@Param			blockID	path		string	true	"Block ID"
//	@Success		200		{object}	BlockResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID} [get]
func (h *GetBlockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Inventory.Block(r.Context(), models.BlockID(chi.URLParam(r, "blockID")))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBlockResponse(b))
}

// PutBlockHandler handles PUT /inventory/blocks/{blockID} requests.
type PutBlockHandler struct {
	svc *appsvcs.Services
}

func NewPutBlockHandler(svc *appsvcs.Services) *PutBlockHandler {
	return &PutBlockHandler{svc: svc}
}

// Execute renames a block.
//
//	@Summary		Rename block
//	@Description	Replaces the block name. An unknown block id is a no-op (applied=false).
//	@Tags			blocks
//	@Accept			json
//	@Produce		json
//	@Param			blockID	path		string		true	"Block ID"
//	@Param			request	body		NameRequest	true	"New name"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID} [put]
func (h *PutBlockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[NameRequest](w, r)
	if !ok {
		return
	}

	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	block, res, err := h.svc.Inventory.EditBlock(r.Context(), blockID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toBlockResponse(block)
	writeMutation(w, res, MutationResponse{Block: &resp}, http.StatusOK)
}

// DeleteBlockHandler handles DELETE /inventory/blocks/{blockID} requests.
type DeleteBlockHandler struct {
	svc *appsvcs.Services
}

func NewDeleteBlockHandler(svc *appsvcs.Services) *DeleteBlockHandler {
	return &DeleteBlockHandler{svc: svc}
}

// Execute deletes a block with all its rooms and items.
//
//	@Summary		Delete block
//	@Description	Removes the block, its rooms and their items. Deleting an unknown block is a no-op.
//	@Tags			blocks
//	@Produce		json
//	@Param			blockID	path		string	true	"Block ID"
//	@Success		200		{object}	MutationResponse
//	@Router			/inventory/blocks/{blockID} [delete]
func (h *DeleteBlockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	res, err := h.svc.Inventory.DeleteBlock(r.Context(), blockID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	writeMutation(w, res, MutationResponse{}, http.StatusOK)
}

// writeMutation fills in the outcome and writes body. appliedStatus is used
// when the mutation applied; a no-op is always 200 without an entity.
func writeMutation(w http.ResponseWriter, res appsvcs.MutationResult, body MutationResponse, appliedStatus int) {
	body.Applied = res.Applied
	body.Version = res.Version
	if !res.Applied {
		httpx.JSON(w, http.StatusOK, MutationResponse{Applied: false, Version: res.Version})
		return
	}
	httpx.JSON(w, appliedStatus, body)
}

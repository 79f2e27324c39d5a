package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/assettrack/pkg/errhttp"
	"github.com/ghuser/assettrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/assettrack/pkg/validator"
	appsvcs "github.com/ghuser/assettrack/services/inventory/application/services"
	"github.com/ghuser/assettrack/services/inventory/domain/models"
	domainsvcs "github.com/ghuser/assettrack/services/inventory/domain/services"
)

// ItemsQuery holds the item-list filters. Bounds are parsed leniently: the
// leading digits are used and anything unparseable means "no bound".
type ItemsQuery struct {
	Name   string `json:"name"   validate:"max=255"`
	MinQty string `json:"minQty" validate:"max=32"`
	MaxQty string `json:"maxQty" validate:"max=32"`
}

func bindItemsQuery(q url.Values) ItemsQuery {
	return ItemsQuery{Name: q.Get("name"), MinQty: q.Get("minQty"), MaxQty: q.Get("maxQty")}
}

// GetItemsHandler handles GET /inventory/blocks/{blockID}/rooms/{roomID}/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists the items of a room.
//
//	@Summary		List room items
//	@Description	Lists a room's items, optionally filtered by name substring and quantity bounds
//	@Tags			items
//	@Produce		json
//	@Param			blockID	path		string	true	"Block ID"
//	@Param			roomID	path		string	true	"Room ID"
//	@Param			name	query		string	false	"Case-insensitive name substring"
//	@Param			minQty	query		string	false	"Minimum quantity (inclusive)"
//	@Param			maxQty	query		string	false	"Maximum quantity (inclusive)"
//	@Success		200		{object}	ItemsResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID}/rooms/{roomID}/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, ok := pkgvalidator.ValidateQuery(w, r, bindItemsQuery)
	if !ok {
		return
	}

	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	roomID := models.RoomID(chi.URLParam(r, "roomID"))
	filter := domainsvcs.ParseItemFilter(q.Name, q.MinQty, q.MaxQty)

	items, err := h.svc.Inventory.Items(r.Context(), blockID, roomID, filter)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ItemsResponse{
		BlockID: string(blockID),
		RoomID:  string(roomID),
		Items:   toItemResponses(items),
	})
}

// GetItemHandler handles GET /inventory/blocks/{blockID}/rooms/{roomID}/items/{itemID} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns one item.
//
//	@Summary		Get item
//	@Tags			items
//	@Produce		json
//	@Param			blockID	path		string	true	"Block ID"
//	@Param			roomID	path		string	true	"Room ID"
//	@Param			itemID	path		string	true	"Item ID"
//	@Success		200		{object}	ItemResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID}/rooms/{roomID}/items/{itemID} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	it, err := h.svc.Inventory.Item(r.Context(),
		models.BlockID(chi.URLParam(r, "blockID")),
		models.RoomID(chi.URLParam(r, "roomID")),
		models.ItemID(chi.URLParam(r, "itemID")),
	)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(it))
}

// PostItemHandler handles POST /inventory/blocks/{blockID}/rooms/{roomID}/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute adds an item to a room.
//
//	@Summary		Create item
//	@Description	Appends an item. An unknown block or room id is a no-op (applied=false).
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			blockID	path		string		true	"Block ID"
//	@Param			roomID	path		string		true	"Room ID"
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		201		{object}	MutationResponse
//	@Success		200		{object}	MutationResponse	"No-op"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID}/rooms/{roomID}/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	roomID := models.RoomID(chi.URLParam(r, "roomID"))
	item, res, err := h.svc.Inventory.AddItem(r.Context(), blockID, roomID, req.fields())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toItemResponse(item)
	writeMutation(w, res, MutationResponse{Item: &resp}, http.StatusCreated)
}

// PutItemHandler handles PUT /inventory/blocks/{blockID}/rooms/{roomID}/items/{itemID} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces the fields of an item.
//
//	@Summary		Edit item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			blockID	path		string		true	"Block ID"
//	@Param			roomID	path		string		true	"Room ID"
//	@Param			itemID	path		string		true	"Item ID"
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		200		{object}	MutationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/blocks/{blockID}/rooms/{roomID}/items/{itemID} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	roomID := models.RoomID(chi.URLParam(r, "roomID"))
	itemID := models.ItemID(chi.URLParam(r, "itemID"))
	item, res, err := h.svc.Inventory.EditItem(r.Context(), blockID, roomID, itemID, req.fields())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := toItemResponse(item)
	writeMutation(w, res, MutationResponse{Item: &resp}, http.StatusOK)
}

// DeleteItemHandler handles DELETE /inventory/blocks/{blockID}/rooms/{roomID}/items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item.
//
//	@Summary		Delete item
//	@Tags			items
//	@Produce		json
//	@Param			blockID	path		string	true	"Block ID"
//	@Param			roomID	path		string	true	"Room ID"
//	@Param			itemID	path		string	true	"Item ID"
//	@Success		200		{object}	MutationResponse
//	@Router			/inventory/blocks/{blockID}/rooms/{roomID}/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	blockID := models.BlockID(chi.URLParam(r, "blockID"))
	roomID := models.RoomID(chi.URLParam(r, "roomID"))
	itemID := models.ItemID(chi.URLParam(r, "itemID"))
	res, err := h.svc.Inventory.DeleteItem(r.Context(), blockID, roomID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	writeMutation(w, res, MutationResponse{}, http.StatusOK)
}

func (req *ItemRequest) fields() appsvcs.ItemFields {
	return appsvcs.ItemFields{
		Name:      req.Name,
		Quantity:  *req.Quantity,
		UnitPrice: *req.UnitPrice,
	}
}

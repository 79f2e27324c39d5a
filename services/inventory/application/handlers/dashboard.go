package handlers

import (
	"net/http"
	"net/url"

	"github.com/ghuser/assettrack/pkg/errhttp"
	"github.com/ghuser/assettrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/assettrack/pkg/validator"
	appsvcs "github.com/ghuser/assettrack/services/inventory/application/services"
	domainsvcs "github.com/ghuser/assettrack/services/inventory/domain/services"
)

// GetInventoryHandler handles GET /inventory requests.
type GetInventoryHandler struct {
	svc *appsvcs.Services
}

func NewGetInventoryHandler(svc *appsvcs.Services) *GetInventoryHandler {
	return &GetInventoryHandler{svc: svc}
}

// Execute returns the full tree.
//
//	@Summary		Get inventory
//	@Description	Returns every block, room and item with derived values
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{object}	InventoryResponse
//	@Router			/inventory [get]
func (h *GetInventoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Inventory.Snapshot(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toInventoryResponse(snap.Inventory, snap.Version))
}

// GetStatsHandler handles GET /inventory/stats requests.
type GetStatsHandler struct {
	svc *appsvcs.Services
}

func NewGetStatsHandler(svc *appsvcs.Services) *GetStatsHandler {
	return &GetStatsHandler{svc: svc}
}

// Execute returns the dashboard totals.
//
//	@Summary		Get stats
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{object}	StatsResponse
//	@Router			/inventory/stats [get]
func (h *GetStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	stats, version, err := h.svc.Inventory.Stats(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toStatsResponse(stats, version))
}

// GetChartHandler handles GET /inventory/chart requests.
type GetChartHandler struct {
	svc *appsvcs.Services
}

func NewGetChartHandler(svc *appsvcs.Services) *GetChartHandler {
	return &GetChartHandler{svc: svc}
}

// Execute returns the value of every block.
//
//	@Summary		Get value chart
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{object}	ChartResponse
//	@Router			/inventory/chart [get]
func (h *GetChartHandler) Execute(w http.ResponseWriter, r *http.Request) {
	values, version, err := h.svc.Inventory.BlockValues(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toChartResponse(values, version))
}

// ViewQuery holds the search and room-sort options of the inventory view.
type ViewQuery struct {
	Search string `json:"search" validate:"max=255"`
	Sort   string `json:"sort"   validate:"omitempty,oneof=name itemCount"`
	Dir    string `json:"dir"    validate:"omitempty,oneof=asc desc"`
}

func bindViewQuery(q url.Values) ViewQuery {
	return ViewQuery{Search: q.Get("search"), Sort: q.Get("sort"), Dir: q.Get("dir")}
}

// GetViewHandler handles GET /inventory/view requests.
type GetViewHandler struct {
	svc *appsvcs.Services
}

func NewGetViewHandler(svc *appsvcs.Services) *GetViewHandler {
	return &GetViewHandler{svc: svc}
}

// Execute returns the filtered tree with each block's rooms sorted.
//
//	@Summary		Search and sort
//	@Description	Filters by a case-insensitive term matched against block, room and item names, then sorts rooms within each block
//	@Tags			inventory
//	@Produce		json
//	@Param			search	query		string	false	"Search term"
//	@Param			sort	query		string	false	"Room sort key"		Enums(name, itemCount)
//	@Param			dir		query		string	false	"Sort direction"	Enums(asc, desc)
//	@Success		200		{object}	InventoryResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/view [get]
func (h *GetViewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, ok := pkgvalidator.ValidateQuery(w, r, bindViewQuery)
	if !ok {
		return
	}
	sort, err := domainsvcs.ParseRoomSort(q.Sort, q.Dir)
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	inv, version, err := h.svc.Inventory.View(r.Context(), q.Search, sort)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toInventoryResponse(inv, version))
}

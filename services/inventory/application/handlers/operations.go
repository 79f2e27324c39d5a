package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/ghuser/assettrack/pkg/errhttp"
	"github.com/ghuser/assettrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/assettrack/pkg/validator"
	appsvcs "github.com/ghuser/assettrack/services/inventory/application/services"
	"github.com/ghuser/assettrack/services/inventory/application/subscribers"
)

const defaultOperationsLimit = 50

// OperationsQuery bounds the number of returned log entries.
type OperationsQuery struct {
	Limit int `json:"limit" validate:"gte=0,lte=1000"`
}

func bindOperationsQuery(q url.Values) OperationsQuery {
	limit := defaultOperationsLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			n = -1 // rejected by validation
		}
		limit = n
	}
	return OperationsQuery{Limit: limit}
}

// GetOperationsHandler handles GET /inventory/operations requests.
type GetOperationsHandler struct {
	oplog *subscribers.OperationLog
}

func NewGetOperationsHandler(oplog *subscribers.OperationLog) *GetOperationsHandler {
	return &GetOperationsHandler{oplog: oplog}
}

// Execute lists recent mutation attempts, including no-ops.
//
//	@Summary		Operation log
//	@Description	Recent mutation attempts, newest first. Entries with outcome "noop" targeted ids that did not exist.
//	@Tags			inventory
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries (default 50, 0 = all)"
//	@Success		200		{object}	OperationsResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/inventory/operations [get]
func (h *GetOperationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q, ok := pkgvalidator.ValidateQuery(w, r, bindOperationsQuery)
	if !ok {
		return
	}

	entries := h.oplog.Recent(q.Limit)
	ops := make([]OperationResponse, 0, len(entries))
	for _, e := range entries {
		ops = append(ops, toOperationResponse(e))
	}
	httpx.JSON(w, http.StatusOK, OperationsResponse{Operations: ops})
}

// PostResetHandler handles POST /inventory/reset requests.
type PostResetHandler struct {
	svc *appsvcs.Services
}

func NewPostResetHandler(svc *appsvcs.Services) *PostResetHandler {
	return &PostResetHandler{svc: svc}
}

// Execute restores the seed inventory.
//
//	@Summary		Reset inventory
//	@Description	Replaces the current tree with the configured seed dataset
//	@Tags			inventory
//	@Produce		json
//	@Success		200	{object}	MutationResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/inventory/reset [post]
func (h *PostResetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Inventory.Reset(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	writeMutation(w, res, MutationResponse{}, http.StatusOK)
}

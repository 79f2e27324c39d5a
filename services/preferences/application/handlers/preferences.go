package handlers

import (
	"net/http"

	"github.com/ghuser/assettrack/pkg/errhttp"
	"github.com/ghuser/assettrack/pkg/httpx"
	pkgvalidator "github.com/ghuser/assettrack/pkg/validator"
	appsvcs "github.com/ghuser/assettrack/services/preferences/application/services"
	"github.com/ghuser/assettrack/services/preferences/domain/models"
)

// GetPreferencesHandler handles GET /preferences requests.
type GetPreferencesHandler struct {
	svc *appsvcs.Services
}

func NewGetPreferencesHandler(svc *appsvcs.Services) *GetPreferencesHandler {
	return &GetPreferencesHandler{svc: svc}
}

// Execute returns the stored preferences.
//
//	@Summary	Get preferences
//	@Tags		preferences
//	@Produce	json
//	@Success	200	{object}	PreferencesResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/preferences [get]
func (h *GetPreferencesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Preferences.Get(r.Context())
	writePreferences(w, p, err)
}

// PutThemeHandler handles PUT /preferences/theme requests.
type PutThemeHandler struct {
	svc *appsvcs.Services
}

func NewPutThemeHandler(svc *appsvcs.Services) *PutThemeHandler {
	return &PutThemeHandler{svc: svc}
}

// Execute sets the theme.
//
//	@Summary	Set theme
//	@Tags		preferences
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ThemeRequest	true	"Theme"
//	@Success	200		{object}	PreferencesResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/preferences/theme [put]
func (h *PutThemeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ThemeRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Preferences.SetTheme(r.Context(), req.Theme)
	writePreferences(w, p, err)
}

// ToggleThemeHandler handles POST /preferences/theme/toggle requests.
type ToggleThemeHandler struct {
	svc *appsvcs.Services
}

func NewToggleThemeHandler(svc *appsvcs.Services) *ToggleThemeHandler {
	return &ToggleThemeHandler{svc: svc}
}

// Execute switches between light and dark.
//
//	@Summary	Toggle theme
//	@Tags		preferences
//	@Produce	json
//	@Success	200	{object}	PreferencesResponse
//	@Router		/preferences/theme/toggle [post]
func (h *ToggleThemeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Preferences.ToggleTheme(r.Context())
	writePreferences(w, p, err)
}

// PutLogoHandler handles PUT /preferences/logo requests.
type PutLogoHandler struct {
	svc *appsvcs.Services
}

func NewPutLogoHandler(svc *appsvcs.Services) *PutLogoHandler {
	return &PutLogoHandler{svc: svc}
}

// Execute replaces the logo with an uploaded image data URL.
//
//	@Summary	Upload logo
//	@Tags		preferences
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LogoRequest	true	"Image data URL"
//	@Success	200		{object}	PreferencesResponse
//	@Failure	413		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/preferences/logo [put]
func (h *PutLogoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LogoRequest](w, r)
	if !ok {
		return
	}
	p, err := h.svc.Preferences.SetLogo(r.Context(), req.Logo)
	writePreferences(w, p, err)
}

// DeleteLogoHandler handles DELETE /preferences/logo requests.
type DeleteLogoHandler struct {
	svc *appsvcs.Services
}

func NewDeleteLogoHandler(svc *appsvcs.Services) *DeleteLogoHandler {
	return &DeleteLogoHandler{svc: svc}
}

// Execute restores the default logo.
//
//	@Summary	Remove logo
//	@Tags		preferences
//	@Produce	json
//	@Success	200	{object}	PreferencesResponse
//	@Router		/preferences/logo [delete]
func (h *DeleteLogoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Preferences.ClearLogo(r.Context())
	writePreferences(w, p, err)
}

func writePreferences(w http.ResponseWriter, p models.Preferences, err error) {
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPreferencesResponse(p))
}

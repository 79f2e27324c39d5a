package handlers

import "github.com/ghuser/assettrack/services/preferences/domain/models"

// ThemeRequest is the request body for PUT /preferences/theme.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark" example:"dark"`
} // @name ThemeRequest

// LogoRequest is the request body for PUT /preferences/logo.
type LogoRequest struct {
	Logo string `json:"logo" validate:"required,datauri" example:"data:image/png;base64,iVBORw0KGgo="`
} // @name LogoRequest

// PreferencesResponse is the current presentation state. logo is omitted when
// the default logo is in use.
type PreferencesResponse struct {
	Theme string `json:"theme"          example:"light"`
	Logo  string `json:"logo,omitempty"`
} // @name PreferencesResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid theme"`
} // @name ErrorResponse

func toPreferencesResponse(p models.Preferences) PreferencesResponse {
	return PreferencesResponse{Theme: p.Theme.String(), Logo: p.Logo.String()}
}

package models

import (
	"fmt"
	"strings"

	prefdomain "github.com/ghuser/assettrack/services/preferences/domain"
)

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NewTheme validates s as a Theme.
func NewTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q (want light or dark)", prefdomain.ErrInvalidTheme, s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string { return string(t) }

// Logo is an image encoded as a data URL, e.g. data:image/png;base64,....
type Logo string

// NewLogo checks that s is an image data URL no longer than maxBytes.
// maxBytes <= 0 disables the size check.
func NewLogo(s string, maxBytes int) (Logo, error) {
	if !strings.HasPrefix(s, "data:image/") {
		return "", fmt.Errorf("%w: must be an image data URL", prefdomain.ErrInvalidLogo)
	}
	if maxBytes > 0 && len(s) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", prefdomain.ErrLogoTooLarge, len(s), maxBytes)
	}
	return Logo(s), nil
}

func (l Logo) String() string { return string(l) }

// Preferences is the per-owner presentation state.
type Preferences struct {
	Theme Theme
	Logo  Logo // empty when no custom logo is set
}

// Default returns the preferences of an owner that never saved any.
func Default() Preferences {
	return Preferences{Theme: ThemeLight}
}

// HasLogo reports whether a custom logo is set.
func (p Preferences) HasLogo() bool { return p.Logo != "" }

package domain

import "errors"

var (
	ErrInvalidTheme = errors.New("invalid theme")
	ErrInvalidLogo  = errors.New("invalid logo")
	ErrLogoTooLarge = errors.New("logo too large")
)

package domain

import "errors"

// Domain errors.
var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrEmptyKey          = errors.New("preference key is empty")
	ErrNoPreferenceStore = errors.New("no preference store configured")
)

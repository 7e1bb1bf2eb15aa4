package domain

import "go.trai.ch/zerr"

// NewlineMode selects what the requirements reader does with line terminators.
type NewlineMode string

const (
	// NewlineSpace replaces each newline with a single space.
	NewlineSpace NewlineMode = "space"
	// NewlineStrip removes each newline.
	NewlineStrip NewlineMode = "strip"
)

// ParseNewlineMode converts s into a NewlineMode. An empty string selects NewlineSpace.
func ParseNewlineMode(s string) (NewlineMode, error) {
	switch NewlineMode(s) {
	case "", NewlineSpace:
		return NewlineSpace, nil
	case NewlineStrip:
		return NewlineStrip, nil
	default:
		return "", zerr.With(ErrInvalidNewlineMode, "mode", s)
	}
}

// Replacement returns the text that substitutes a newline in this mode.
func (m NewlineMode) Replacement() string {
	if m == NewlineStrip {
		return ""
	}
	return " "
}

package models

import (
	"errors"
	"fmt"
)

// VentureID identifies one of the venture templates.
type VentureID string

const (
	VentureDiagnostics    VentureID = "diagnostics"
	VentureTeleWellness   VentureID = "tele_wellness"
	VentureCosmeticStudio VentureID = "cosmetic_studio"
)

// ErrUnknownVenture is returned when no model is registered for a venture id.
var ErrUnknownVenture = errors.New("unknown venture")

// Ventures lists the templates in display (tab) order.
func Ventures() []VentureID {
	return []VentureID{VentureDiagnostics, VentureTeleWellness, VentureCosmeticStudio}
}

// ParseVentureID converts a raw string to a VentureID.
func ParseVentureID(s string) (VentureID, error) {
	id := VentureID(s)
	switch id {
	case VentureDiagnostics, VentureTeleWellness, VentureCosmeticStudio:
		return id, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVenture, s)
	}
}

// VentureParameters is implemented by each venture's operating assumptions.
type VentureParameters interface {
	Venture() VentureID
}

// NewParams returns a pointer to the zero parameter record for id.
// Callers apply defaults and decode input into it.
func NewParams(id VentureID) (VentureParameters, error) {
	switch id {
	case VentureDiagnostics:
		return &DiagnosticsParams{}, nil
	case VentureTeleWellness:
		return &TeleWellnessParams{}, nil
	case VentureCosmeticStudio:
		return &CosmeticStudioParams{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVenture, id)
	}
}

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ExpirySelection is the user's chosen lifetime for a vanish: either a fixed
// preset or a custom value with a unit. The set is closed.
type ExpirySelection interface {
	expirySelection()
}

// Preset is one of the fixed expiry choices. Presets are always valid; the
// server knows each token.
type Preset string

const (
	ExpireOneHour Preset = "1h"
	ExpireOneDay  Preset = "1d"
	ExpireOneWeek Preset = "1w"
	ExpireNever   Preset = "never"
)

func (Preset) expirySelection() {}

// ExpiryUnit is the unit of a custom duration.
type ExpiryUnit string

const (
	UnitMinutes ExpiryUnit = "minutes"
	UnitHours   ExpiryUnit = "hours"
	UnitDays    ExpiryUnit = "days"
	UnitWeeks   ExpiryUnit = "weeks"
)

// CustomDuration is a user-entered lifetime. Value must be at least 1 and at
// most one year, checked per unit.
type CustomDuration struct {
	Value int
	Unit  ExpiryUnit
}

func (CustomDuration) expirySelection() {}

// unitCeilings caps each unit at one year.
var unitCeilings = map[ExpiryUnit]int{
	UnitMinutes: 525600,
	UnitHours:   8760,
	UnitDays:    365,
	UnitWeeks:   52,
}

var validPresets = map[Preset]struct{}{
	ExpireOneHour: {},
	ExpireOneDay:  {},
	ExpireOneWeek: {},
	ExpireNever:   {},
}

// ResolveExpiry renders a selection as its canonical wire token. Presets pass
// through unchanged. Custom durations validate bounds and render as
// "<value><unit initial>", e.g. 3 days -> "3d".
func ResolveExpiry(sel ExpirySelection) (string, error) {
	switch s := sel.(type) {
	case Preset:
		return string(s), nil
	case CustomDuration:
		if err := validateCustom(s); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d%c", s.Value, s.Unit[0]), nil
	default:
		return "", fmt.Errorf("unknown expiry selection %T", sel)
	}
}

func validateCustom(d CustomDuration) error {
	ceiling, ok := unitCeilings[d.Unit]
	if !ok {
		return &ValidationError{Message: fmt.Sprintf("unknown duration unit: %s", d.Unit)}
	}
	if d.Value < 1 {
		return &ValidationError{Message: "duration must be at least 1"}
	}
	if d.Value > ceiling {
		return &ValidationError{Message: fmt.Sprintf("duration cannot exceed 1 year for %s", d.Unit)}
	}
	return nil
}

var unitInitials = map[byte]ExpiryUnit{
	'm': UnitMinutes,
	'h': UnitHours,
	'd': UnitDays,
	'w': UnitWeeks,
}

// ParseExpirySelection turns raw user input into a selection: a preset token
// verbatim, or "<value><unit initial>" as a custom duration (e.g. "10w").
// Bounds are not checked here; ResolveExpiry does that at submission time.
func ParseExpirySelection(raw string) (ExpirySelection, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return nil, &ValidationError{Message: "expiry is required"}
	}
	if _, ok := validPresets[Preset(value)]; ok {
		return Preset(value), nil
	}

	unit, ok := unitInitials[value[len(value)-1]]
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid expiry %q (want 1h, 1d, 1w, never, or <value><m|h|d|w>)", raw)}
	}
	count, err := strconv.Atoi(value[:len(value)-1])
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid expiry %q (want 1h, 1d, 1w, never, or <value><m|h|d|w>)", raw)}
	}
	return CustomDuration{Value: count, Unit: unit}, nil
}

// ParseExpiryUnit validates a spelled-out unit name.
func ParseExpiryUnit(raw string) (ExpiryUnit, error) {
	unit := ExpiryUnit(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := unitCeilings[unit]; !ok {
		return "", &ValidationError{Message: fmt.Sprintf("invalid unit %q (want minutes, hours, days, or weeks)", raw)}
	}
	return unit, nil
}

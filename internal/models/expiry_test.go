package models

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveExpiryPresets(t *testing.T) {
	tests := []struct {
		preset Preset
		want   string
	}{
		{ExpireOneHour, "1h"},
		{ExpireOneDay, "1d"},
		{ExpireOneWeek, "1w"},
		{ExpireNever, "never"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got, err := ResolveExpiry(tc.preset)
			if err != nil {
				t.Fatalf("ResolveExpiry(%v): %v", tc.preset, err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveExpiryCustom(t *testing.T) {
	tests := []struct {
		name    string
		dur     CustomDuration
		want    string
		wantErr string
	}{
		{name: "ten weeks", dur: CustomDuration{Value: 10, Unit: UnitWeeks}, want: "10w"},
		{name: "ninety minutes", dur: CustomDuration{Value: 90, Unit: UnitMinutes}, want: "90m"},
		{name: "hours at ceiling", dur: CustomDuration{Value: 8760, Unit: UnitHours}, want: "8760h"},
		{name: "days at ceiling", dur: CustomDuration{Value: 365, Unit: UnitDays}, want: "365d"},
		{name: "weeks over ceiling", dur: CustomDuration{Value: 60, Unit: UnitWeeks}, wantErr: "duration cannot exceed 1 year for weeks"},
		{name: "minutes over ceiling", dur: CustomDuration{Value: 525601, Unit: UnitMinutes}, wantErr: "duration cannot exceed 1 year for minutes"},
		{name: "zero value", dur: CustomDuration{Value: 0, Unit: UnitHours}, wantErr: "duration must be at least 1"},
		{name: "negative value", dur: CustomDuration{Value: -3, Unit: UnitDays}, wantErr: "duration must be at least 1"},
		{name: "unknown unit", dur: CustomDuration{Value: 2, Unit: "fortnights"}, wantErr: "unknown duration unit"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveExpiry(tc.dur)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("ResolveExpiry(%+v) = %q, want error", tc.dur, got)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("error %q does not contain %q", err, tc.wantErr)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("error %T is not a *ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveExpiry(%+v): %v", tc.dur, err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseExpirySelection(t *testing.T) {
	tests := []struct {
		raw     string
		want    ExpirySelection
		wantErr bool
	}{
		{raw: "1h", want: ExpireOneHour},
		{raw: "never", want: ExpireNever},
		{raw: " 1D ", want: ExpireOneDay},
		{raw: "10w", want: CustomDuration{Value: 10, Unit: UnitWeeks}},
		{raw: "90m", want: CustomDuration{Value: 90, Unit: UnitMinutes}},
		{raw: "3d", want: CustomDuration{Value: 3, Unit: UnitDays}},
		{raw: "", wantErr: true},
		{raw: "soon", wantErr: true},
		{raw: "h", wantErr: true},
		{raw: "10x", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseExpirySelection(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseExpirySelection(%q) = %v, want error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExpirySelection(%q): %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestParseExpirySelectionDefersBounds(t *testing.T) {
	// Out-of-range values parse fine; the bound check belongs to resolution.
	sel, err := ParseExpirySelection("60w")
	if err != nil {
		t.Fatalf("ParseExpirySelection: %v", err)
	}
	if _, err := ResolveExpiry(sel); err == nil {
		t.Fatal("ResolveExpiry(60w) succeeded, want ceiling error")
	}
}

func TestParseExpiryUnit(t *testing.T) {
	if unit, err := ParseExpiryUnit("WEEKS"); err != nil || unit != UnitWeeks {
		t.Fatalf("ParseExpiryUnit(WEEKS) = %v, %v", unit, err)
	}
	if _, err := ParseExpiryUnit("years"); err == nil {
		t.Fatal("ParseExpiryUnit(years) succeeded, want error")
	}
}

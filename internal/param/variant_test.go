package param

import (
	"errors"
	"testing"
)

// ─── Variant detection ─────────────────────────────────────────────

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    Variant
		wantErr bool
	}{
		{"rs00", "0.0.1.5", Variant00, false},
		{"rs02", "0.2.3.9", Variant02, false},
		{"rs03", "0.3.0.0", Variant03, false},
		{"rs04", "0.4.12.1", Variant04, false},
		{"leading whitespace", "  0.2.3.9  ", Variant02, false},
		{"unmapped minor", "0.5.0.0", "", true},
		{"unmapped major", "1.0.0.0", "", true},
		{"empty string", "", "", true},
		{"not a version", "abc", "", true},
		{"three components", "0.2.3", "", true},
		{"five components", "0.2.3.9.1", "", true},
		{"non-numeric component", "0.2.x.9", "", true},
		{"negative component", "0.-2.3.9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectVariant(tt.version)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVariant) {
					t.Errorf("DetectVariant(%q) error = %v, want ErrUnknownVariant", tt.version, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectVariant(%q) unexpected error: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("DetectVariant(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

// ─── Envelopes ─────────────────────────────────────────────────────

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		variant   Variant
		maxTorque float64
		maxSpeed  float64
		maxKp     float64
		maxKd     float64
	}{
		{Variant00, 14, 33, 500, 5},
		{Variant02, 17, 44, 500, 5},
		{Variant03, 60, 20, 5000, 100},
		{Variant04, 120, 15, 5000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			env := tt.variant.Envelope()
			if env.MaxTorque != tt.maxTorque {
				t.Errorf("MaxTorque = %v, want %v", env.MaxTorque, tt.maxTorque)
			}
			if env.MaxSpeed != tt.maxSpeed {
				t.Errorf("MaxSpeed = %v, want %v", env.MaxSpeed, tt.maxSpeed)
			}
			if env.MaxKp != tt.maxKp {
				t.Errorf("MaxKp = %v, want %v", env.MaxKp, tt.maxKp)
			}
			if env.MaxKd != tt.maxKd {
				t.Errorf("MaxKd = %v, want %v", env.MaxKd, tt.maxKd)
			}
		})
	}
}

func TestVariantValid(t *testing.T) {
	for _, v := range Variants() {
		if !v.Valid() {
			t.Errorf("Variants() returned invalid variant %q", v)
		}
	}
	if Variant("RS99").Valid() {
		t.Error("Valid() accepted RS99")
	}
}

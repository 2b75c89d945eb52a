package param

import (
	"errors"
	"testing"
)

// ─── Registry construction ─────────────────────────────────────────

func TestRegistryKnownVariants(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			m, err := Registry(v)
			if err != nil {
				t.Fatalf("Registry(%v) error: %v", v, err)
			}
			if m.Variant() != v {
				t.Errorf("Variant() = %v, want %v", m.Variant(), v)
			}
			if m.Len() == 0 {
				t.Error("registry is empty")
			}
			if _, ok := m.Lookup(IndexAppCodeVersion); !ok {
				t.Error("AppCodeVersion missing from registry")
			}
		})
	}
}

func TestRegistryUnknownVariant(t *testing.T) {
	if _, err := Registry(Variant("RS99")); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Registry(RS99) error = %v, want ErrUnknownVariant", err)
	}
}

func TestRegistryCached(t *testing.T) {
	a, err := Registry(Variant02)
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}
	b, err := Registry(Variant02)
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}
	if a != b {
		t.Error("repeated Registry calls returned different instances")
	}
}

// ─── Layering ──────────────────────────────────────────────────────

func TestRegistryOverridesWin(t *testing.T) {
	tests := []struct {
		name       string
		variant    Variant
		index      uint16
		wantName   string
		wantAccess AccessMode
		wantMax    float64
	}{
		{"torque limit rs00", Variant00, 0x2007, "limit_torque", AccessReadWrite, 14},
		{"torque limit rs02", Variant02, 0x2007, "limit_torque", AccessReadWrite, 30},
		{"index reused for status rs03", Variant03, 0x2007, "status1", AccessSetting, 10},
		{"current limit extended rs04", Variant04, 0x2019, "limit_cur", AccessReadWrite, 150},
		{"common current limit rs00", Variant00, 0x2019, "limit_cur", AccessReadWrite, 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Registry(tt.variant)
			if err != nil {
				t.Fatalf("Registry error: %v", err)
			}
			d, ok := m.Lookup(tt.index)
			if !ok {
				t.Fatalf("index 0x%04X missing", tt.index)
			}
			if d.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", d.Name, tt.wantName)
			}
			if d.Access != tt.wantAccess {
				t.Errorf("Access = %q, want %q", d.Access, tt.wantAccess)
			}
			if d.Max == nil || *d.Max != tt.wantMax {
				t.Errorf("Max = %v, want %v", d.Max, tt.wantMax)
			}
		})
	}
}

func TestRegistryExtensionsPresent(t *testing.T) {
	m, err := Registry(Variant04)
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}
	d, ok := m.Lookup(0x2029)
	if !ok {
		t.Fatal("rs04 extension 0x2029 missing")
	}
	if d.Name != "add_offset" {
		t.Errorf("Name = %q, want add_offset", d.Name)
	}

	m0, err := Registry(Variant00)
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}
	if _, ok := m0.Lookup(0x2029); ok {
		t.Error("rs00 registry contains rs04-only index 0x2029")
	}
}

// ─── Determinism and immutability ──────────────────────────────────

func TestRegistryDeterministic(t *testing.T) {
	a := buildMap(Variant03)
	b := buildMap(Variant03)
	if a.Len() != b.Len() {
		t.Fatalf("repeated builds differ in size: %d vs %d", a.Len(), b.Len())
	}
	for _, idx := range a.Indexes() {
		da, _ := a.Lookup(idx)
		db, ok := b.Lookup(idx)
		if !ok {
			t.Fatalf("index 0x%04X missing from second build", idx)
		}
		if da.Name != db.Name || da.Type != db.Type || da.Access != db.Access {
			t.Errorf("index 0x%04X differs across builds", idx)
		}
	}
}

func TestRegistryIndexesSortedAndCopied(t *testing.T) {
	m, err := Registry(Variant00)
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}
	idx := m.Indexes()
	for i := 1; i < len(idx); i++ {
		if idx[i-1] >= idx[i] {
			t.Fatalf("indexes not strictly ascending at %d: %04X >= %04X", i, idx[i-1], idx[i])
		}
	}

	// Mutating the returned slice must not affect the registry.
	idx[0] = 0xFFFF
	if m.Indexes()[0] == 0xFFFF {
		t.Error("Indexes() exposes internal state")
	}
}

func TestLookupName(t *testing.T) {
	m, err := Registry(Variant02)
	if err != nil {
		t.Fatalf("Registry error: %v", err)
	}
	d, ok := m.LookupName("limit_torque")
	if !ok {
		t.Fatal("LookupName(limit_torque) not found")
	}
	if d.Index != 0x2007 {
		t.Errorf("Index = 0x%04X, want 0x2007", d.Index)
	}
	if _, ok := m.LookupName("no_such_parameter"); ok {
		t.Error("LookupName accepted unknown name")
	}
}

func TestRegistryForVersion(t *testing.T) {
	m, err := RegistryForVersion("0.3.1.2")
	if err != nil {
		t.Fatalf("RegistryForVersion error: %v", err)
	}
	if m.Variant() != Variant03 {
		t.Errorf("Variant() = %v, want %v", m.Variant(), Variant03)
	}
	if _, err := RegistryForVersion("9.9.9.9"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("error = %v, want ErrUnknownVariant", err)
	}
}

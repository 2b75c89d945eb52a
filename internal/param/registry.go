package param

import (
	"fmt"
	"sort"
	"sync"
)

// Well-known parameter indexes referenced by higher layers.
const (
	// IndexAppCodeVersion holds the firmware version string used for
	// variant detection.
	IndexAppCodeVersion uint16 = 0x1003

	// IndexTorqueConstant holds the motor torque constant in Nm/A.
	IndexTorqueConstant uint16 = 0x303B
)

// Map is the frozen parameter registry for one variant.
//
// A Map is immutable after construction. Lookups and iteration are
// safe for concurrent use without locking.
type Map struct {
	variant Variant
	byIndex map[uint16]Descriptor
	indexes []uint16
}

// Variant returns the variant this map describes.
func (m *Map) Variant() Variant { return m.variant }

// Len returns the number of parameters in the map.
func (m *Map) Len() int { return len(m.indexes) }

// Lookup returns the descriptor for the given index.
func (m *Map) Lookup(index uint16) (Descriptor, bool) {
	d, ok := m.byIndex[index]
	return d, ok
}

// LookupName returns the descriptor whose name matches exactly.
func (m *Map) LookupName(name string) (Descriptor, bool) {
	for _, idx := range m.indexes {
		if d := m.byIndex[idx]; d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Indexes returns all parameter indexes in ascending order. The
// returned slice is a copy.
func (m *Map) Indexes() []uint16 {
	out := make([]uint16, len(m.indexes))
	copy(out, m.indexes)
	return out
}

// Descriptors returns all descriptors in ascending index order.
func (m *Map) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(m.indexes))
	for _, idx := range m.indexes {
		out = append(out, m.byIndex[idx])
	}
	return out
}

// VersionDescriptor returns the descriptor for the firmware version
// parameter. It is part of the common table and identical on every
// variant, so it can be decoded before the variant is known.
func VersionDescriptor() Descriptor {
	return Descriptor{
		Index:       IndexAppCodeVersion,
		Name:        "AppCodeVersion",
		Type:        TypeString,
		Access:      AccessRead,
		Description: "Application code version",
	}
}

var (
	mapMu    sync.Mutex
	mapCache = map[Variant]*Map{}
)

// Registry returns the parameter map for the given variant.
//
// Maps are built once per variant and cached; repeated calls return
// the same frozen instance. An unsupported variant returns
// ErrUnknownVariant.
func Registry(v Variant) (*Map, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}

	mapMu.Lock()
	defer mapMu.Unlock()

	if m, ok := mapCache[v]; ok {
		return m, nil
	}

	m := buildMap(v)
	mapCache[v] = m
	return m, nil
}

// RegistryForVersion detects the variant from a firmware version
// string and returns its parameter map.
func RegistryForVersion(version string) (*Map, error) {
	v, err := DetectVariant(version)
	if err != nil {
		return nil, err
	}
	return Registry(v)
}

// buildMap layers the common table, then the variant's overrides,
// then its extensions. Later layers win on index collisions.
func buildMap(v Variant) *Map {
	byIndex := make(map[uint16]Descriptor, len(commonTable)+64)

	apply := func(rows []tableRow) {
		for _, r := range rows {
			byIndex[r.index] = Descriptor{
				Index:       r.index,
				Name:        r.name,
				Type:        r.typ,
				Access:      r.access,
				Min:         r.min,
				Max:         r.max,
				Description: r.description,
			}
		}
	}
	apply(commonTable)
	apply(variantOverrides[v])
	apply(variantExtensions[v])

	indexes := make([]uint16, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })

	return &Map{variant: v, byIndex: byIndex, indexes: indexes}
}

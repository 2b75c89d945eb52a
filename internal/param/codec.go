package param

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
)

// Layout selects how numeric payloads are interpreted.
//
// Firmware revisions disagree on where a numeric value sits inside a
// parameter read response. The offset layout places the value at a
// width-dependent byte position inside a padded response; the compact
// layout places it in the leading bytes. Neither convention is tied
// to a firmware version, so the strategy is selectable.
type Layout uint8

const (
	// LayoutAuto uses the offset layout when the payload is long
	// enough and falls back to the compact layout otherwise.
	LayoutAuto Layout = iota

	// LayoutOffset always reads at the width-dependent offset. A
	// payload too short for the offset yields the raw fallback.
	LayoutOffset

	// LayoutCompact always reads the leading width bytes.
	LayoutCompact
)

// Byte offsets of numeric values inside padded read responses,
// keyed by value width.
const (
	offset1Byte = 0
	offset2Byte = 18
	offset4Byte = 26
)

// tagAlphabet lists the single-character type tags the firmware
// prefixes to string payload segments.
const tagAlphabet = "temiosfbvdnlrcpugh"

// Decode interprets a raw parameter payload according to the
// descriptor, using the auto layout for numeric types.
//
// Decode is total: any payload it cannot interpret comes back as a
// KindRaw value, never as an error or panic.
func Decode(desc Descriptor, raw []byte) Value {
	return DecodeWith(LayoutAuto, desc, raw)
}

// DecodeWith is Decode with an explicit numeric layout strategy.
func DecodeWith(layout Layout, desc Descriptor, raw []byte) Value {
	switch desc.Type {
	case TypeString:
		return decodeString(desc, raw)
	case TypeUint8:
		b, ok := numericField(layout, raw, offset1Byte, 1)
		if !ok {
			return RawValue(raw)
		}
		return UintValue(uint64(b[0]))
	case TypeUint16:
		b, ok := numericField(layout, raw, offset2Byte, 2)
		if !ok {
			return RawValue(raw)
		}
		return UintValue(uint64(binary.LittleEndian.Uint16(b)))
	case TypeUint32:
		b, ok := numericField(layout, raw, offset4Byte, 4)
		if !ok {
			return RawValue(raw)
		}
		return UintValue(uint64(binary.LittleEndian.Uint32(b)))
	case TypeInt16:
		b, ok := numericField(layout, raw, offset2Byte, 2)
		if !ok {
			return RawValue(raw)
		}
		return IntValue(int64(int16(binary.LittleEndian.Uint16(b))))
	case TypeInt32:
		b, ok := numericField(layout, raw, offset4Byte, 4)
		if !ok {
			return RawValue(raw)
		}
		return IntValue(int64(int32(binary.LittleEndian.Uint32(b))))
	case TypeFloat32:
		b, ok := numericField(layout, raw, offset4Byte, 4)
		if !ok {
			return RawValue(raw)
		}
		return FloatValue(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	default:
		return RawValue(raw)
	}
}

// numericField locates the width bytes holding a numeric value under
// the given layout. ok is false when the payload cannot satisfy the
// layout at all.
func numericField(layout Layout, raw []byte, offset, width int) ([]byte, bool) {
	switch layout {
	case LayoutOffset:
		if len(raw) < offset+width {
			return nil, false
		}
		return raw[offset : offset+width], true
	case LayoutCompact:
		if len(raw) < width {
			return nil, false
		}
		return raw[:width], true
	default:
		if len(raw) >= offset+width {
			return raw[offset : offset+width], true
		}
		if len(raw) >= width {
			return raw[:width], true
		}
		return nil, false
	}
}

// decodeString recovers a string value from a padded firmware
// response. Responses carry the parameter's own name, NUL padding,
// and a tag-prefixed value segment; older firmware omits the value
// segment entirely and echoes just the name.
func decodeString(desc Descriptor, raw []byte) Value {
	var segments [][]byte
	for _, seg := range bytes.Split(raw, []byte{0}) {
		if len(seg) > 0 {
			segments = append(segments, seg)
		}
	}

	switch {
	case len(segments) >= 2:
		second := string(segments[1])
		if len(second) >= 2 && strings.ContainsRune(tagAlphabet, rune(second[0])) {
			rest := second[1:]
			if clean := printablePrefix(rest); clean != "" {
				return StringValue(clean)
			}
			return StringValue(rest)
		}
		return StringValue(second)
	case len(segments) == 1:
		single := string(segments[0])
		if strings.EqualFold(single, desc.Name) {
			return Value{}
		}
		return StringValue(single)
	default:
		return Value{}
	}
}

// printablePrefix returns the longest leading run of printable ASCII.
func printablePrefix(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return s[:i]
		}
	}
	return s
}

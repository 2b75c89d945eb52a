package param

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// DataType identifies the wire type of a parameter value.
type DataType uint8

// Parameter data types understood by the codec.
const (
	TypeString DataType = iota
	TypeUint8
	TypeUint16
	TypeUint32
	TypeInt16
	TypeInt32
	TypeFloat32
)

// String returns the display name of the data type.
func (t DataType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}
}

// Width returns the wire width of the type in bytes, or 0 for strings.
func (t DataType) Width() int {
	switch t {
	case TypeUint8:
		return 1
	case TypeUint16, TypeInt16:
		return 2
	case TypeUint32, TypeInt32, TypeFloat32:
		return 4
	default:
		return 0
	}
}

// AccessMode describes how a parameter may be accessed.
type AccessMode string

// Parameter access modes as reported by the firmware documentation.
const (
	// AccessRead marks a read-only telemetry parameter.
	AccessRead AccessMode = "R"

	// AccessReadWrite marks a runtime-writable configuration parameter.
	AccessReadWrite AccessMode = "RW"

	// AccessSetting marks a parameter writable only in setting mode.
	AccessSetting AccessMode = "S"

	// AccessDiagnostic marks an echo/diagnostic parameter.
	AccessDiagnostic AccessMode = "D"
)

// Descriptor is the static metadata for one parameter on one variant.
type Descriptor struct {
	// Index is the parameter index on the wire.
	Index uint16

	// Name is the firmware's parameter name.
	Name string

	// Type is the wire data type.
	Type DataType

	// Access is the parameter's access mode.
	Access AccessMode

	// Min and Max bound writable values; nil means unbounded.
	Min *float64
	Max *float64

	// Description is a human-readable summary.
	Description string
}

// ValueKind tags the variant of a decoded Value.
type ValueKind uint8

// Decoded value kinds.
const (
	// KindEmpty is a decoded-but-absent value (e.g. a firmware name
	// echo with no payload).
	KindEmpty ValueKind = iota

	// KindString is a decoded string value.
	KindString

	// KindUint is a decoded unsigned integer of any width.
	KindUint

	// KindInt is a decoded signed integer of any width.
	KindInt

	// KindFloat is a decoded IEEE-754 single precision value.
	KindFloat

	// KindRaw is the fallback: undecodable bytes carried verbatim.
	KindRaw
)

// Value is the result of decoding one raw parameter payload.
//
// Exactly one of the payload fields is meaningful, selected by Kind.
// The zero Value is KindEmpty.
type Value struct {
	Kind  ValueKind
	Str   string
	Uint  uint64
	Int   int64
	Float float64
	Raw   []byte
}

// StringValue builds a KindString value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// UintValue builds a KindUint value.
func UintValue(u uint64) Value { return Value{Kind: KindUint, Uint: u} }

// IntValue builds a KindInt value.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue builds a KindFloat value.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// RawValue builds the KindRaw fallback value.
func RawValue(raw []byte) Value { return Value{Kind: KindRaw, Raw: raw} }

// String renders the value for display.
//
// Floats use six decimal places to match the firmware tooling; raw
// fallbacks render as prefixed hex.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindUint:
		return strconv.FormatUint(v.Uint, 10)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', 6, 64)
	case KindRaw:
		return "0x" + hex.EncodeToString(v.Raw)
	default:
		return ""
	}
}

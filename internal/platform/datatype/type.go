package datatype

import "fmt"

const (
	TypeInt64  byte = 1
	TypeString byte = 2
	TypeByte   byte = 3
	TypeBool   byte = 4
	TypeInt32  byte = 5
)

const (
	LenByte  = 1
	LenInt32 = 4
	LenInt64 = 8
	LenMeta  = 5
)

// Element lists the value types that have a TLV encoding.
type Element interface {
	byte | bool | int32 | int64 | string
}

// TypeOf returns the TLV tag for v.
func TypeOf(v any) (byte, error) {
	switch v.(type) {
	case byte:
		return TypeByte, nil
	case bool:
		return TypeBool, nil
	case int32:
		return TypeInt32, nil
	case int64:
		return TypeInt64, nil
	case string:
		return TypeString, nil
	default:
		return 0, fmt.Errorf("datatype.TypeOf: no tag for %T", v)
	}
}

// FixedLen returns the payload size of a fixed-width tag. Strings have none.
func FixedLen(tag byte) (int, bool) {
	switch tag {
	case TypeByte, TypeBool:
		return LenByte, true
	case TypeInt32:
		return LenInt32, true
	case TypeInt64:
		return LenInt64, true
	default:
		return 0, false
	}
}

func TypeName(tag byte) string {
	switch tag {
	case TypeByte:
		return "byte"
	case TypeBool:
		return "bool"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeString:
		return "string"
	default:
		return fmt.Sprintf("unknown(%d)", tag)
	}
}

package resp

import (
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	// MaxSize is the largest declared element size the decoder accepts
	// (512 MiB). Any frame declaring more is rejected as invalid data.
	MaxSize = 512 * 1024 * 1024
)

// Wire tag bytes and sentinels of the RESP format.
const (
	arrayTag        = '*'
	bulkStringTag   = '$'
	errorTag        = '-'
	integerTag      = ':'
	simpleStringTag = '+'
)

var (
	crlfBytes      = []byte("\r\n")
	nullBytes      = []byte("$-1\r\n")
	nullArrayBytes = []byte("*-1\r\n")
)

// --------------------------------------------------------------------------
// Value Type Definition
// --------------------------------------------------------------------------

// Type identifies the wire-level kind of a Value.
type Type uint8

const (
	TypeSimpleString Type = iota
	TypeError
	TypeInteger
	TypeBulkString
	TypeArray
	TypeNull
	TypeNullArray
)

// String returns the string representation of a Type.
func (t Type) String() string {
	switch t {
	case TypeSimpleString:
		return "SimpleString"
	case TypeError:
		return "Error"
	case TypeInteger:
		return "Integer"
	case TypeBulkString:
		return "BulkString"
	case TypeArray:
		return "Array"
	case TypeNull:
		return "Null"
	case TypeNullArray:
		return "NullArray"
	default:
		return "Unknown"
	}
}

// Value is the wire-level algebraic type. Which payload field is used
// depends on Type: Str carries SimpleString, Error and BulkString payloads,
// Num carries Integer payloads and Items carries Array elements. Null and
// NullArray carry nothing.
type Value struct {
	Type  Type
	Str   string
	Num   int64
	Items []Value
}

// String renders the value for diagnostics, not for the wire.
func (v Value) String() string {
	switch v.Type {
	case TypeSimpleString, TypeError, TypeBulkString:
		return fmt.Sprintf("%s(%q)", v.Type, v.Str)
	case TypeInteger:
		return fmt.Sprintf("Integer(%d)", v.Num)
	case TypeArray:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = item.String()
		}
		return fmt.Sprintf("Array[%s]", strings.Join(parts, ", "))
	default:
		return v.Type.String()
	}
}

// --------------------------------------------------------------------------
// Value Factory Functions
// --------------------------------------------------------------------------

// NewSimpleString creates a SimpleString value.
func NewSimpleString(s string) Value {
	return Value{Type: TypeSimpleString, Str: s}
}

// NewError creates an Error value carrying the given description.
func NewError(msg string) Value {
	return Value{Type: TypeError, Str: msg}
}

// NewInteger creates an Integer value.
func NewInteger(n int64) Value {
	return Value{Type: TypeInteger, Num: n}
}

// NewBulkString creates a BulkString value.
func NewBulkString(s string) Value {
	return Value{Type: TypeBulkString, Str: s}
}

// NewArray creates an Array value from the given items in order.
func NewArray(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Type: TypeArray, Items: items}
}

// NewNull creates the absent-scalar sentinel ($-1).
func NewNull() Value {
	return Value{Type: TypeNull}
}

// NewNullArray creates the absent-array sentinel (*-1).
func NewNullArray() Value {
	return Value{Type: TypeNullArray}
}

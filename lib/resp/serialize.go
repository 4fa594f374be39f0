package resp

import (
	"fmt"
	"io"
	"strings"
)

// --------------------------------------------------------------------------
// Encoding
// --------------------------------------------------------------------------

// Encode writes the wire representation of v to w. Arrays are encoded
// recursively; the output round-trips through Decode byte-exact.
func Encode(w io.Writer, v Value) error {
	switch v.Type {
	case TypeSimpleString:
		_, err := fmt.Fprintf(w, "%c%s\r\n", simpleStringTag, v.Str)
		return err
	case TypeError:
		_, err := fmt.Fprintf(w, "%c%s\r\n", errorTag, v.Str)
		return err
	case TypeInteger:
		_, err := fmt.Fprintf(w, "%c%d\r\n", integerTag, v.Num)
		return err
	case TypeBulkString:
		if _, err := fmt.Fprintf(w, "%c%d\r\n", bulkStringTag, len(v.Str)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, v.Str); err != nil {
			return err
		}
		_, err := w.Write(crlfBytes)
		return err
	case TypeNull:
		_, err := w.Write(nullBytes)
		return err
	case TypeNullArray:
		_, err := w.Write(nullArrayBytes)
		return err
	case TypeArray:
		if _, err := fmt.Fprintf(w, "%c%d\r\n", arrayTag, len(v.Items)); err != nil {
			return err
		}
		for _, item := range v.Items {
			if err := Encode(w, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return newError(KindInvalidData, "cannot encode unknown value type: %d", v.Type)
	}
}

// EncodeToString renders the wire representation of v as a string.
func EncodeToString(v Value) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

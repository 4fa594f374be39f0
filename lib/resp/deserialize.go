package resp

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// --------------------------------------------------------------------------
// Decoding
// --------------------------------------------------------------------------

// Decode reads exactly one Value from r. Nested arrays are decoded
// recursively; the recursion is bounded only by the per-element size cap.
//
// Decode blocks only while waiting for bytes from r. A stream that ends
// before the first byte of a frame yields a KindConnClosed error. Malformed
// framing yields KindInvalidInput, a bad payload yields KindInvalidData.
func Decode(r *bufio.Reader) (Value, error) {
	line, err := r.ReadBytes('\n')

	if len(line) == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return Value{}, newError(KindConnClosed, "broken pipe")
		}
		return Value{}, err
	}

	// Bytes were read but the stream broke before the LF.
	if err != nil && !errors.Is(err, io.EOF) {
		return Value{}, err
	}

	if len(line) < 3 {
		return Value{}, newError(KindInvalidInput, "input is too short: %d", len(line))
	}

	if !isCRLF(line[len(line)-2], line[len(line)-1]) {
		return Value{}, newError(KindInvalidInput, "invalid CRLF: %q", line[len(line)-2:])
	}

	payload := line[1 : len(line)-2]
	switch line[0] {
	case arrayTag:
		n, err := parseInteger(payload)
		if err != nil {
			return Value{}, err
		}
		if n == -1 {
			return NewNullArray(), nil
		}
		if n < -1 || n > MaxSize {
			return Value{}, newError(KindInvalidData, "data is too large: %d > %d", n, MaxSize)
		}
		items := make([]Value, 0, n)
		for i := int64(0); i < n; i++ {
			item, err := Decode(r)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return NewArray(items...), nil

	case bulkStringTag:
		n, err := parseInteger(payload)
		if err != nil {
			return Value{}, err
		}
		if n == -1 {
			return NewNull(), nil
		}
		if n < -1 || n > MaxSize {
			return Value{}, newError(KindInvalidData, "data is too large: %d > %d", n, MaxSize)
		}
		buf := make([]byte, n+2)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Value{}, err
		}
		if !isCRLF(buf[n], buf[n+1]) {
			return Value{}, newError(KindInvalidInput, "invalid CRLF: %q", buf[n:])
		}
		s, err := parseString(buf[:n])
		if err != nil {
			return Value{}, err
		}
		return NewBulkString(s), nil

	case errorTag:
		s, err := parseString(payload)
		if err != nil {
			return Value{}, err
		}
		return NewError(s), nil

	case integerTag:
		n, err := parseInteger(payload)
		if err != nil {
			return Value{}, err
		}
		return NewInteger(n), nil

	case simpleStringTag:
		s, err := parseString(payload)
		if err != nil {
			return Value{}, err
		}
		return NewSimpleString(s), nil

	default:
		return Value{}, newError(KindInvalidInput, "unknown head character: %q", line[0])
	}
}

// DecodeString decodes a single Value from an in-memory frame.
func DecodeString(s string) (Value, error) {
	return Decode(bufio.NewReader(strings.NewReader(s)))
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// isCRLF reports whether the two bytes form a CRLF terminator.
func isCRLF(x, y byte) bool {
	return x == '\r' && y == '\n'
}

// parseInteger parses bytes as a base-10 signed 64-bit integer.
func parseInteger(b []byte) (int64, error) {
	s, err := parseString(b)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, newError(KindInvalidData, "cannot parse data: %v", err)
	}
	return n, nil
}

// parseString validates bytes as UTF-8 text.
func parseString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", newError(KindInvalidData, "cannot parse data: invalid UTF-8")
	}
	return string(b), nil
}

// Package resp implements the RESP wire format spoken by sparrow.
//
// The codec is pure and stateless: Encode writes the byte-exact wire
// representation of a Value, Decode reads exactly one Value from a buffered
// reader. Neither side knows anything about commands or storage.
//
// The package focuses on:
//   - A closed algebraic Value type covering all seven wire variants
//     (Array, BulkString, Error, Integer, Null, NullArray, SimpleString)
//   - Recursive encoding/decoding of arbitrarily nested arrays
//   - Strict framing: CRLF termination, declared sizes capped at 512 MiB,
//     UTF-8 validated payloads
//
// Key Components:
//
//   - Value: the wire-level algebraic type, built via the New* constructors.
//
//   - Encode / Decode: the two codec entry points. Decode suspends only
//     while waiting for bytes and classifies every failure with a typed
//     *Error so callers can distinguish a peer that hung up from a peer
//     that sent garbage.
package resp

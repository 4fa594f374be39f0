// Package rpc bundles the network-facing half of sparrow.
//
// The package focuses on:
//
//   - common: configuration structs shared by server and client
//   - transport: pluggable server transports (tcp, unix) built on one
//     transport-agnostic accept loop and connection handler
//   - server: ties engine and transport together into a runnable server
//   - client: a small synchronous client used by the kv CLI
//
// All request execution happens in lib/engine; this package only moves
// bytes and wire values.
package rpc

// Package transport defines the interface between the sparrow server and
// its pluggable network transports (tcp, unix).
//
// A transport accepts connections, decodes wire frames, pushes them into
// the engine's request queue and writes the replies back. The concrete
// implementations live in the base, tcp and unix subpackages.
package transport

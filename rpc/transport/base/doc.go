// Package base implements the transport-agnostic server loop: accepting
// connections, running one handler goroutine per connection and shuttling
// requests between the wire codec and the engine queue.
//
// Transport specifics (how to bind a listener, how to tune an accepted
// socket) are injected through the IServerConnector interface; see the
// tcp and unix packages for the concrete connectors.
package base

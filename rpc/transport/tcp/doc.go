// Package tcp provides the TCP server connector. It supports socket
// tuning via the transport configuration: no-delay, keep-alive, linger
// and kernel buffer sizes.
package tcp

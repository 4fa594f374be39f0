// Package unix provides the Unix domain socket server connector. A stale
// socket file at the configured path is removed before binding.
package unix

// Package client provides a small synchronous sparrow client. One
// request is in flight per connection at a time; the kv CLI is its main
// consumer.
package client

// Package nest implements sparrow's in-memory record store.
//
// A Nest maps keys to Eggs (key/value/creation-time records). The Nest has
// no knowledge of the wire protocol and is deliberately not safe for
// concurrent use: the engine owns its Nest exclusively and touches it only
// from its sequential processing loop, which is what makes every command
// execution linearizable without a single lock.
package nest

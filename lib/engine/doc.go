// Package engine implements the command layer and the single-writer
// execution loop of sparrow.
//
// The package focuses on:
//
//   - Parsing decoded wire values into a closed set of commands
//     (GET, SET, REM) with precise error reporting
//   - Executing commands against the Nest from exactly one goroutine,
//     which makes every command atomic without any locking
//   - Routing each result back to the originating connection through a
//     private reply channel
//
// Key Components:
//
//   - Command: tagged union of the three verbs plus their arguments
//   - Request: one unit of work flowing from a connection handler into
//     the engine queue
//   - Engine: owns the Nest, drains the queue, executes, replies
//
// Concurrency lives entirely in the network layer. The Nest is touched
// only inside Engine.Run, so total ordering of all accepted commands is
// established by queue arrival order.
package engine

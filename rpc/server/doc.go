// Package server wires the engine and a server transport into a runnable
// sparrow server: it initializes the request queue, starts the engine
// loop and hands the queue to the transport before listening.
package server

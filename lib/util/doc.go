// Package util provides the unbounded lock-free Multi-Producer
// Single-Consumer (MPSC) queue that carries requests from the connection
// handlers into the engine.
//
// Features and Guarantees:
//
//   - Lock-Free writes: atomic operations keep Push cheap under contention
//   - Unbounded Size: limited only by available memory
//   - Thread-Safe writes: any number of goroutines may Push concurrently
//   - Single Consumer: one goroutine drains the queue via the Recv channel
//   - Per-Producer FIFO: items pushed sequentially by one producer are
//     delivered in push order; ordering between producers is determined by
//     which Push completes first
package util

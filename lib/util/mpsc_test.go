package util

import (
	"sync"
	"testing"
	"time"
)

// TestBasicOperations tests basic push and consume functionality
func TestBasicOperations(t *testing.T) {
	q := NewMPSC[int]()
	defer q.Close()

	// Push 10 items
	for i := 0; i < 10; i++ {
		v := i
		if !q.Push(&v) {
			t.Fatalf("Failed to push item %d", i)
		}
	}

	// Consume 10 items, in push order (single producer)
	for i := 0; i < 10; i++ {
		select {
		case val := <-q.Recv():
			if *val != i {
				t.Errorf("Expected %d, got %v", i, *val)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("Timeout waiting for item %d", i)
		}
	}

	// Make sure queue is empty
	select {
	case val := <-q.Recv():
		t.Errorf("Queue should be empty, but got %v", val)
	case <-time.After(10 * time.Millisecond):
		// Expected timeout, queue is empty
	}
}

// TestPushNil tests that nil items are rejected.
func TestPushNil(t *testing.T) {
	q := NewMPSC[int]()
	defer q.Close()

	if q.Push(nil) {
		t.Errorf("Push(nil) should return false")
	}
}

// TestConcurrentProducers verifies the queue works correctly with multiple
// producers and that per-producer FIFO order is preserved.
func TestConcurrentProducers(t *testing.T) {
	q := NewMPSC[[2]int]()
	defer q.Close()

	const numProducers = 10
	const itemsPerProducer = 1000
	totalItems := numProducers * itemsPerProducer

	done := make(chan struct{})

	go func() {
		defer close(done)

		// lastSeen tracks the last sequence number per producer
		lastSeen := make(map[int]int)
		received := 0

		for received < totalItems {
			select {
			case val := <-q.Recv():
				if val == nil {
					t.Errorf("Received nil item")
					return
				}

				producer, seq := val[0], val[1]
				if last, ok := lastSeen[producer]; ok && seq <= last {
					t.Errorf("Producer %d: item %d arrived after %d", producer, seq, last)
				}
				lastSeen[producer] = seq
				received++
			case <-time.After(2 * time.Second):
				t.Errorf("Timeout waiting for items, received %d of %d", received, totalItems)
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(numProducers)

	for p := 0; p < numProducers; p++ {
		go func(producerID int) {
			defer wg.Done()

			for i := 0; i < itemsPerProducer; i++ {
				item := [2]int{producerID, i}
				if !q.Push(&item) {
					t.Errorf("Producer %d failed to push item %d", producerID, i)
				}
			}
		}(p)
	}

	wg.Wait()

	select {
	case <-done:
		// Consumer finished
	case <-time.After(5 * time.Second):
		t.Fatalf("Timeout waiting for consumer to finish")
	}
}

// TestCloseSemantics tests that Close rejects further pushes but drains
// items already queued, then closes the output channel.
func TestCloseSemantics(t *testing.T) {
	q := NewMPSC[int]()

	for i := 0; i < 5; i++ {
		v := i
		if !q.Push(&v) {
			t.Fatalf("Failed to push item %d", i)
		}
	}

	q.Close()

	if !q.IsClosed() {
		t.Errorf("IsClosed should report true after Close")
	}

	v := 99
	if q.Push(&v) {
		t.Errorf("Push after Close should return false")
	}

	// Items pushed before Close must still be delivered
	received := 0
	for val := range q.Recv() {
		if *val != received {
			t.Errorf("Expected %d, got %d", received, *val)
		}
		received++
	}
	if received != 5 {
		t.Errorf("Expected 5 items before channel close, got %d", received)
	}
}

package engine

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/sparrowkv/sparrow/lib/logger"
	"github.com/sparrowkv/sparrow/lib/resp"
	"github.com/sparrowkv/sparrow/lib/util"
)

// issue pushes a single command line and awaits its reply.
func issue(t *testing.T, queue *util.MPSC[Request], reply chan resp.Value, connID uint64, line string) resp.Value {
	t.Helper()

	req := &Request{ConnID: connID, Data: resp.NewBulkString(line), Reply: reply}
	if !queue.Push(req) {
		t.Fatalf("Failed to push request %q", line)
	}

	select {
	case result := <-reply:
		return result
	case <-time.After(time.Second):
		t.Fatalf("Timeout awaiting reply for %q", line)
		return resp.Value{}
	}
}

// TestEngineSetGetRem tests the full request/reply cycle for each verb.
func TestEngineSetGetRem(t *testing.T) {
	e := New(logger.NewNop())
	queue := e.Init()
	go e.Run()
	defer e.Close()

	reply := make(chan resp.Value, 1)

	if result := issue(t, queue, reply, 1, "GET k"); !reflect.DeepEqual(result, resp.NewNull()) {
		t.Errorf("Expected Null before SET, got %v", result)
	}
	if result := issue(t, queue, reply, 1, "SET k v"); !reflect.DeepEqual(result, resp.NewSimpleString("OK")) {
		t.Errorf("Expected OK from SET, got %v", result)
	}
	if result := issue(t, queue, reply, 1, "GET k"); !reflect.DeepEqual(result, resp.NewBulkString("v")) {
		t.Errorf("Expected stored value, got %v", result)
	}
	if result := issue(t, queue, reply, 1, "REM k"); !reflect.DeepEqual(result, resp.NewSimpleString("OK")) {
		t.Errorf("Expected OK from REM, got %v", result)
	}
	if result := issue(t, queue, reply, 1, "GET k"); !reflect.DeepEqual(result, resp.NewNull()) {
		t.Errorf("Expected Null after REM, got %v", result)
	}
}

// TestEngineParseFailure tests that a malformed command yields an Error
// value and leaves the engine healthy.
func TestEngineParseFailure(t *testing.T) {
	e := New(logger.NewNop())
	queue := e.Init()
	go e.Run()
	defer e.Close()

	reply := make(chan resp.Value, 1)

	result := issue(t, queue, reply, 1, "FETCH k")
	if result.Type != resp.TypeError {
		t.Fatalf("Expected an Error value, got %v", result)
	}
	if result.Str != "command not found: FETCH" {
		t.Errorf("Unexpected error message: %q", result.Str)
	}

	// the engine keeps serving after a parse failure
	if result := issue(t, queue, reply, 1, "SET k v"); !reflect.DeepEqual(result, resp.NewSimpleString("OK")) {
		t.Errorf("Expected OK after parse failure, got %v", result)
	}
}

// TestEngineDroppedReply tests that an undeliverable reply does not stop
// the engine.
func TestEngineDroppedReply(t *testing.T) {
	e := New(logger.NewNop())
	queue := e.Init()
	go e.Run()
	defer e.Close()

	// a full reply channel nobody drains: the engine must drop the reply
	// and move on
	stuck := make(chan resp.Value, 1)
	stuck <- resp.NewNull()

	if !queue.Push(&Request{ConnID: 1, Data: resp.NewBulkString("SET k v"), Reply: stuck}) {
		t.Fatalf("Failed to push request")
	}

	reply := make(chan resp.Value, 1)
	if result := issue(t, queue, reply, 2, "GET k"); !reflect.DeepEqual(result, resp.NewBulkString("v")) {
		t.Errorf("Engine stalled after dropped reply, got %v", result)
	}
}

// TestEngineConcurrentWriters tests that concurrent SETs from many
// connections never produce a torn value: the final value is exactly one
// of the written ones.
func TestEngineConcurrentWriters(t *testing.T) {
	e := New(logger.NewNop())
	queue := e.Init()
	go e.Run()
	defer e.Close()

	const writers = 16
	const rounds = 100

	written := make(map[string]bool)
	var mu sync.Mutex

	var wg sync.WaitGroup
	wg.Add(writers)

	for w := 0; w < writers; w++ {
		go func(id int) {
			defer wg.Done()

			reply := make(chan resp.Value, 1)
			for i := 0; i < rounds; i++ {
				value := fmt.Sprintf("w%d-r%d", id, i)

				mu.Lock()
				written[value] = true
				mu.Unlock()

				req := &Request{ConnID: uint64(id), Data: resp.NewBulkString("SET shared " + value), Reply: reply}
				if !queue.Push(req) {
					t.Errorf("Writer %d failed to push", id)
					return
				}

				select {
				case result := <-reply:
					if !reflect.DeepEqual(result, resp.NewSimpleString("OK")) {
						t.Errorf("Expected OK, got %v", result)
						return
					}
				case <-time.After(time.Second):
					t.Errorf("Writer %d timed out", id)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	reply := make(chan resp.Value, 1)
	result := issue(t, queue, reply, 99, "GET shared")
	if result.Type != resp.TypeBulkString {
		t.Fatalf("Expected a bulk string, got %v", result)
	}
	if !written[result.Str] {
		t.Errorf("Final value %q was never written", result.Str)
	}
}

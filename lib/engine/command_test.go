package engine

import (
	"reflect"
	"testing"

	"github.com/sparrowkv/sparrow/lib/nest"
	"github.com/sparrowkv/sparrow/lib/resp"
)

// TestParseCommand tests parsing of well-formed command lines.
func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    resp.Value
		expected Command
	}{
		{
			name:     "get",
			input:    resp.NewBulkString("GET mykey"),
			expected: Command{Verb: VerbGet, Key: "mykey"},
		},
		{
			name:     "set",
			input:    resp.NewBulkString("SET mykey myvalue"),
			expected: Command{Verb: VerbSet, Key: "mykey", Value: "myvalue"},
		},
		{
			name:     "rem",
			input:    resp.NewBulkString("REM mykey"),
			expected: Command{Verb: VerbRem, Key: "mykey"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			if err != nil {
				t.Fatalf("Unexpected parse error: %v", err)
			}
			if !reflect.DeepEqual(cmd, tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, cmd)
			}
		})
	}
}

// TestParseCommandFailures tests parse error messages for malformed input.
func TestParseCommandFailures(t *testing.T) {
	tests := []struct {
		name     string
		input    resp.Value
		expected string
	}{
		{
			name:     "not a bulk string",
			input:    resp.NewSimpleString("GET mykey"),
			expected: "data is not a bulk string",
		},
		{
			name:     "array input",
			input:    resp.NewArray(resp.NewBulkString("GET mykey")),
			expected: "data is not a bulk string",
		},
		{
			name:     "unknown verb",
			input:    resp.NewBulkString("FETCH mykey"),
			expected: "command not found: FETCH",
		},
		{
			name:     "lowercase verb",
			input:    resp.NewBulkString("get mykey"),
			expected: "command not found: get",
		},
		{
			name:     "get without key",
			input:    resp.NewBulkString("GET"),
			expected: "cannot parse GET command arguments: wrong number of arguments. Expected 1, got 0",
		},
		{
			name:     "get with surplus args",
			input:    resp.NewBulkString("GET a b"),
			expected: "cannot parse GET command arguments: wrong number of arguments. Expected 1, got 2",
		},
		{
			name:     "set without value",
			input:    resp.NewBulkString("SET mykey"),
			expected: "cannot parse SET command arguments: wrong number of arguments. Expected 2, got 1",
		},
		{
			name:     "rem with surplus args",
			input:    resp.NewBulkString("REM a b"),
			expected: "cannot parse REM command arguments: wrong number of arguments. Expected 1, got 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.input)
			if err == nil {
				t.Fatalf("Expected a parse error")
			}
			if err.Error() != tt.expected {
				t.Errorf("Expected error %q, got %q", tt.expected, err.Error())
			}
		})
	}
}

// TestCommandExecute tests the read and mutate semantics of each verb.
func TestCommandExecute(t *testing.T) {
	n := nest.NewNest()

	// GET on an absent key returns Null
	result := Command{Verb: VerbGet, Key: "k"}.Execute(n)
	if !reflect.DeepEqual(result, resp.NewNull()) {
		t.Errorf("Expected Null for absent key, got %v", result)
	}

	// SET always returns OK
	result = Command{Verb: VerbSet, Key: "k", Value: "v"}.Execute(n)
	if !reflect.DeepEqual(result, resp.NewSimpleString("OK")) {
		t.Errorf("Expected OK from SET, got %v", result)
	}

	// GET now returns the stored value
	result = Command{Verb: VerbGet, Key: "k"}.Execute(n)
	if !reflect.DeepEqual(result, resp.NewBulkString("v")) {
		t.Errorf("Expected stored value, got %v", result)
	}

	// REM returns OK and removes the entry
	result = Command{Verb: VerbRem, Key: "k"}.Execute(n)
	if !reflect.DeepEqual(result, resp.NewSimpleString("OK")) {
		t.Errorf("Expected OK from REM, got %v", result)
	}

	// REM on the now-absent key still returns OK
	result = Command{Verb: VerbRem, Key: "k"}.Execute(n)
	if !reflect.DeepEqual(result, resp.NewSimpleString("OK")) {
		t.Errorf("Expected OK from REM on absent key, got %v", result)
	}

	if n.Len() != 0 {
		t.Errorf("Expected empty nest, got %d entries", n.Len())
	}
}

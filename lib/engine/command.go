package engine

import (
	"fmt"
	"strings"

	"github.com/sparrowkv/sparrow/lib/nest"
	"github.com/sparrowkv/sparrow/lib/resp"
)

// --------------------------------------------------------------------------
// Verbs
// --------------------------------------------------------------------------

// Verb identifies one of the supported operations. Matching is
// case-sensitive: only the uppercase spellings are recognized on the wire.
type Verb uint8

const (
	VerbGet Verb = iota
	VerbSet
	VerbRem
)

// String returns the wire spelling of the verb.
func (v Verb) String() string {
	switch v {
	case VerbGet:
		return "GET"
	case VerbSet:
		return "SET"
	case VerbRem:
		return "REM"
	default:
		return fmt.Sprintf("Verb(%d)", v)
	}
}

// --------------------------------------------------------------------------
// Command
// --------------------------------------------------------------------------

// Command is one parsed operation ready for execution. Value is only
// meaningful for VerbSet.
type Command struct {
	Verb  Verb
	Key   string
	Value string
}

// String renders the command for diagnostics.
func (c Command) String() string {
	switch c.Verb {
	case VerbSet:
		return fmt.Sprintf("%s %s %s", c.Verb, c.Key, c.Value)
	default:
		return fmt.Sprintf("%s %s", c.Verb, c.Key)
	}
}

// ParseCommand translates a decoded wire value into a Command.
//
// The input must be a bulk string holding a space-separated line: the first
// token selects the verb, the remaining tokens are its arguments. Argument
// count is checked exactly; surplus or missing tokens fail the parse.
func ParseCommand(data resp.Value) (Command, error) {
	if data.Type != resp.TypeBulkString {
		return Command{}, fmt.Errorf("data is not a bulk string")
	}

	tokens := strings.Split(data.Str, " ")
	verb, args := tokens[0], tokens[1:]

	switch verb {
	case "GET":
		if len(args) != 1 {
			return Command{}, argCountError("GET", 1, len(args))
		}
		return Command{Verb: VerbGet, Key: args[0]}, nil
	case "SET":
		if len(args) != 2 {
			return Command{}, argCountError("SET", 2, len(args))
		}
		return Command{Verb: VerbSet, Key: args[0], Value: args[1]}, nil
	case "REM":
		if len(args) != 1 {
			return Command{}, argCountError("REM", 1, len(args))
		}
		return Command{Verb: VerbRem, Key: args[0]}, nil
	default:
		return Command{}, fmt.Errorf("command not found: %s", verb)
	}
}

func argCountError(verb string, expected, got int) error {
	return fmt.Errorf("cannot parse %s command arguments: wrong number of arguments. Expected %d, got %d", verb, expected, got)
}

// Execute runs the command against the Nest and returns the wire value to
// send back to the peer. Execution never produces an Error value; those
// only originate from parse or protocol failures.
//
// Thread-safety: must only be called from the engine's processing loop.
func (c Command) Execute(n *nest.Nest) resp.Value {
	switch c.Verb {
	case VerbGet:
		egg, ok := n.Get(c.Key)
		if !ok {
			return resp.NewNull()
		}
		return resp.NewBulkString(egg.Value)
	case VerbSet:
		n.Set(c.Key, c.Value)
		return resp.NewSimpleString("OK")
	case VerbRem:
		n.Remove(c.Key)
		return resp.NewSimpleString("OK")
	default:
		return resp.NewError(fmt.Sprintf("command not found: %s", c.Verb))
	}
}

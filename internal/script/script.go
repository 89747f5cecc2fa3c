// Package script applies sequences of list operations to an arraylist.ArrayList, either given
// in a compact command line form (insert:1:9) or read from a YAML document.
package script

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/a-peyrard/collections/arraylist"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Kind string

const (
	Append Kind = "append"
	Insert Kind = "insert"
	Remove Kind = "remove"
	Get    Kind = "get"
	Set    Kind = "set"
	Clear  Kind = "clear"
)

// ErrInvalidOp is returned for operations that cannot be parsed or validated.
var ErrInvalidOp = errors.New("invalid operation")

type (
	// Op is a single operation on a list of strings.
	Op struct {
		Kind     Kind   `yaml:"op"`
		Position int    `yaml:"position"`
		Value    string `yaml:"value"`
	}

	// Result is the outcome of an Op: the value it produced, if any, or the error it failed with.
	Result struct {
		Op     Op
		Output string
		Err    error
	}

	document struct {
		Ops []Op `yaml:"ops"`
	}
)

func (o Op) String() string {
	switch o.Kind {
	case Append:
		return fmt.Sprintf("%s:%s", o.Kind, o.Value)
	case Insert, Set:
		return fmt.Sprintf("%s:%d:%s", o.Kind, o.Position, o.Value)
	case Remove, Get:
		return fmt.Sprintf("%s:%d", o.Kind, o.Position)
	default:
		return string(o.Kind)
	}
}

// Validate checks the op kind is known.
func (o Op) Validate() error {
	switch o.Kind {
	case Append, Insert, Remove, Get, Set, Clear:
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidOp, o.Kind)
	}
}

// ParseOp parses the compact form of an operation:
//
//	append:<value>
//	insert:<position>:<value>
//	remove:<position>
//	get:<position>
//	set:<position>:<value>
//	clear
//
// Values may contain colons, only the leading fields are split.
func ParseOp(in string) (Op, error) {
	kind, rest, _ := strings.Cut(strings.TrimSpace(in), ":")
	op := Op{Kind: Kind(strings.ToLower(kind))}
	if err := op.Validate(); err != nil {
		return Op{}, err
	}

	switch op.Kind {
	case Append:
		op.Value = rest
	case Insert, Set:
		position, value, found := strings.Cut(rest, ":")
		if !found {
			return Op{}, fmt.Errorf("%w: %q expects %s:<position>:<value>", ErrInvalidOp, in, op.Kind)
		}
		var err error
		if op.Position, err = parsePosition(in, position); err != nil {
			return Op{}, err
		}
		op.Value = value
	case Remove, Get:
		var err error
		if op.Position, err = parsePosition(in, rest); err != nil {
			return Op{}, err
		}
	case Clear:
		if rest != "" {
			return Op{}, fmt.Errorf("%w: %q expects no argument", ErrInvalidOp, in)
		}
	}
	return op, nil
}

// ParseOps parses every argument with ParseOp, stopping at the first failure.
func ParseOps(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for i, arg := range args {
		op, err := ParseOp(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// LoadFile reads a YAML document of the form:
//
//	ops:
//	  - op: append
//	    value: a
//	  - op: insert
//	    position: 0
//	    value: b
func LoadFile(path string) ([]Op, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read script %s: %w", path, err)
	}

	var doc document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse script %s: %w", path, err)
	}
	for i, op := range doc.Ops {
		if err = op.Validate(); err != nil {
			return nil, fmt.Errorf("script %s, op %d: %w", path, i+1, err)
		}
	}
	return doc.Ops, nil
}

// Run applies the ops in order. A failing op is reported in its Result and does not stop the run.
func Run(list *arraylist.ArrayList[string], ops []Op, logger zerolog.Logger) []Result {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		output, err := apply(list, op)
		if err != nil {
			logger.Warn().Err(err).Stringer("op", op).Msg("operation failed")
		} else {
			logger.Debug().Stringer("op", op).Int("size", list.Size()).Int("capacity", list.Capacity()).Msg("operation applied")
		}
		results = append(results, Result{Op: op, Output: output, Err: err})
	}
	return results
}

// Failed counts the results holding an error.
func Failed(results []Result) int {
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}

func apply(list *arraylist.ArrayList[string], op Op) (string, error) {
	switch op.Kind {
	case Append:
		list.Append(op.Value)
		return "", nil
	case Insert:
		return "", list.InsertAt(op.Position, op.Value)
	case Remove:
		return list.RemoveAt(op.Position)
	case Get:
		return list.Get(op.Position)
	case Set:
		return list.Set(op.Position, op.Value)
	case Clear:
		list.Clear()
		return "", nil
	default:
		return "", op.Validate()
	}
}

func parsePosition(in string, raw string) (int, error) {
	position, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q has a non numeric position %q", ErrInvalidOp, in, raw)
	}
	return position, nil
}

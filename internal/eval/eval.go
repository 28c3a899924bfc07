// Package eval maps operation names and textual arguments onto the calc library.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sivchari/calc/pkg/calc"
)

// ErrUsage is returned when an operation is unknown or its arguments are malformed.
var ErrUsage = errors.New("usage error")

// Kind describes how an operation's arguments are parsed.
type Kind string

// Argument kinds.
const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
)

// Operation describes one library function exposed by name.
type Operation struct {
	Name    string
	Short   string
	Kind    Kind
	MinArgs int
	// MaxArgs < 0 means unbounded.
	MaxArgs int
}

// Result is the outcome of a single evaluation.
type Result struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args"`
	Value     any      `json:"value,omitempty"`
	Error     string   `json:"error,omitempty"`
}

var operations = []Operation{
	{Name: "add", Short: "Add two integers", Kind: KindInt, MinArgs: 2, MaxArgs: 2},
	{Name: "sub", Short: "Subtract the second integer from the first", Kind: KindInt, MinArgs: 2, MaxArgs: 2},
	{Name: "mul", Short: "Multiply two integers", Kind: KindInt, MinArgs: 2, MaxArgs: 2},
	{Name: "div", Short: "Divide two floating point numbers", Kind: KindFloat, MinArgs: 2, MaxArgs: 2},
	{Name: "max", Short: "Print the greater of two integers", Kind: KindInt, MinArgs: 2, MaxArgs: 2},
	{Name: "sum", Short: "Sum any number of integers", Kind: KindInt, MinArgs: 0, MaxArgs: -1},
	{Name: "greet", Short: "Greet a name", Kind: KindString, MinArgs: 1, MaxArgs: 1},
	{Name: "join", Short: "Concatenate two strings", Kind: KindString, MinArgs: 2, MaxArgs: 2},
}

// Operations returns the supported operations in a stable order.
func Operations() []Operation {
	ops := make([]Operation, len(operations))
	copy(ops, operations)

	return ops
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Operation, bool) {
	for _, op := range operations {
		if op.Name == name {
			return op, true
		}
	}

	return Operation{}, false
}

// Evaluate runs the named operation on args.
// The returned Result is populated even when err is non-nil.
func Evaluate(name string, args []string) (Result, error) {
	result := Result{Operation: name, Args: args}
	if result.Args == nil {
		result.Args = []string{}
	}

	value, err := evaluate(name, args)
	if err != nil {
		result.Error = err.Error()

		return result, err
	}

	result.Value = value

	return result, nil
}

func evaluate(name string, args []string) (any, error) {
	op, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown operation %q", ErrUsage, name)
	}

	if err := op.checkArity(len(args)); err != nil {
		return nil, err
	}

	switch op.Kind {
	case KindInt:
		nums, err := parseInts(args)
		if err != nil {
			return nil, err
		}

		return applyInt(op.Name, nums), nil
	case KindFloat:
		a, b, err := parseFloats(args[0], args[1])
		if err != nil {
			return nil, err
		}

		q, err := calc.Div(a, b)
		if err != nil {
			return nil, fmt.Errorf("failed to divide: %w", err)
		}

		return q, nil
	case KindString:
		if op.Name == "greet" {
			return calc.Greet(args[0]), nil
		}

		return calc.Join(args[0], args[1]), nil
	}

	return nil, fmt.Errorf("%w: unsupported argument kind %q", ErrUsage, op.Kind)
}

func applyInt(name string, nums []int) int {
	switch name {
	case "add":
		return calc.Add(nums[0], nums[1])
	case "sub":
		return calc.Sub(nums[0], nums[1])
	case "mul":
		return calc.Mul(nums[0], nums[1])
	case "max":
		return calc.Max(nums[0], nums[1])
	default:
		return calc.SumAll(nums)
	}
}

func (op Operation) checkArity(n int) error {
	if n < op.MinArgs || (op.MaxArgs >= 0 && n > op.MaxArgs) {
		switch {
		case op.MaxArgs < 0:
			return fmt.Errorf("%w: %s takes at least %d argument(s), got %d", ErrUsage, op.Name, op.MinArgs, n)
		case op.MinArgs == op.MaxArgs:
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, op.Name, op.MinArgs, n)
		default:
			return fmt.Errorf("%w: %s takes %d to %d arguments, got %d", ErrUsage, op.Name, op.MinArgs, op.MaxArgs, n)
		}
	}

	return nil
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrUsage, arg)
		}

		nums = append(nums, n)
	}

	return nums, nil
}

func parseFloats(a, b string) (float64, float64, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", ErrUsage, a)
	}

	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a number", ErrUsage, b)
	}

	return x, y, nil
}

package object

import (
	"fmt"
	"strings"
)

// Builtins is the fixed, ordered built-in table (spec.md §4.8). Index in
// this slice is the operand the compiler emits for GetBuiltin and the
// ordinal the VM uses to look the function up at call time — the order
// here is part of the bytecode contract and must not change.
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	{"len", &Builtin{Name: "len", Fn: builtinLen}},
	{"first", &Builtin{Name: "first", Fn: builtinFirst}},
	{"rest", &Builtin{Name: "rest", Fn: builtinRest}},
	{"last", &Builtin{Name: "last", Fn: builtinLast}},
	{"push", &Builtin{Name: "push", Fn: builtinPush}},
	{"puts", &Builtin{Name: "puts", Fn: builtinPuts}},
}

// GetBuiltinByName looks a built-in up by its source-level name (`len`,
// `puts`, etc.), returning nil when no built-in has that name.
func GetBuiltinByName(name string) *Builtin {
	for _, b := range Builtins {
		if b.Name == name {
			return b.Builtin
		}
	}
	return nil
}

func newError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: got = %d, want = 1", len(args))
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", arg.Type())
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: got = %d, want = 1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return NullValue
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: got = %d, want = 1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length > 0 {
		return arr.Elements[length-1]
	}
	return NullValue
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: got = %d, want = 1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length > 0 {
		newElements := make([]Object, length-1)
		copy(newElements, arr.Elements[1:length])
		return &Array{Elements: newElements}
	}
	return &Array{Elements: []Object{}}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments: got = %d, want = 2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &Array{Elements: newElements}
}

func builtinPuts(args ...Object) Object {
	strs := make([]string, 0, len(args))
	for _, arg := range args {
		strs = append(strs, arg.Inspect())
	}
	fmt.Println(strings.Join(strs, " "))
	return NullValue
}

// NullValue is the single shared Null instance, matching the teacher's and
// the book's convention of interning Null/True/False rather than
// allocating a fresh one per use.
var NullValue = &Null{}

package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource rewrites ; line comments (any number of semicolons) to
// the // form zygomys understands. String literals are left alone.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+8)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch b[i] {
		case '"':
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
		case ';':
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
		default:
			result = append(result, b[i])
			i++
		}
	}
	return string(result)
}

// ---------------------------------------------------------------------------
// Argument conversion
// ---------------------------------------------------------------------------

func toIndex(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer vertex index, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// indexArgs flattens integer arguments and list/array arguments of integers.
func indexArgs(args []zygo.Sexp) ([]int, error) {
	var out []int
	for _, a := range args {
		if _, ok := a.(*zygo.SexpInt); ok {
			idx, _ := toIndex(a)
			out = append(out, idx)
			continue
		}
		items, err := sexpListToSlice(a)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			idx, err := toIndex(item)
			if err != nil {
				return nil, err
			}
			out = append(out, idx)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the toggle builtins. Each records into s and
// returns the number of commands recorded so far.
//
//	(add 3)          (add 1 2 [5 6])
//	(remove 3)       (toggle 4)
//	(clear)
func registerBuiltins(env *zygo.Zlisp, s *Script) {
	indexed := func(op Op) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) == 0 {
				return zygo.SexpNull, fmt.Errorf("%s requires at least one vertex index", name)
			}
			indices, err := indexArgs(args)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			for _, idx := range indices {
				if idx < 0 {
					return zygo.SexpNull, fmt.Errorf("%s: negative vertex index %d", name, idx)
				}
			}
			for _, idx := range indices {
				s.record(op, idx)
			}
			return &zygo.SexpInt{Val: int64(len(s.Commands))}, nil
		}
	}

	env.AddFunction("add", indexed(OpAdd))
	env.AddFunction("remove", indexed(OpRemove))
	env.AddFunction("toggle", indexed(OpToggle))

	env.AddFunction("clear", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 0 {
			return zygo.SexpNull, fmt.Errorf("clear takes no arguments, got %d", len(args))
		}
		s.record(OpClear, 0)
		return &zygo.SexpInt{Val: int64(len(s.Commands))}, nil
	})
}

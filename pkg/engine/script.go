package engine

import "fmt"

// Op is a highlight operation recorded by a script.
type Op int

const (
	OpAdd Op = iota
	OpRemove
	OpToggle
	OpClear
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpToggle:
		return "toggle"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Command is one recorded operation. Index is unused for OpClear.
type Command struct {
	Op    Op
	Index int
}

func (c Command) String() string {
	if c.Op == OpClear {
		return "(clear)"
	}
	return fmt.Sprintf("(%s %d)", c.Op, c.Index)
}

// Target is what a Script is applied to. *highlight.Set satisfies it.
type Target interface {
	Add(index int) error
	Remove(index int) error
	Toggle(index int) (bool, error)
	Clear() error
}

// Script is the ordered list of commands a source file issued.
type Script struct {
	Commands []Command
}

func (s *Script) record(op Op, index int) {
	s.Commands = append(s.Commands, Command{Op: op, Index: index})
}

// Apply runs the commands in order and stops at the first failure. It
// returns how many commands succeeded. Each command is all-or-nothing, so a
// failure leaves t exactly as the previous command left it.
func (s *Script) Apply(t Target) (int, error) {
	for i, c := range s.Commands {
		var err error
		switch c.Op {
		case OpAdd:
			err = t.Add(c.Index)
		case OpRemove:
			err = t.Remove(c.Index)
		case OpToggle:
			_, err = t.Toggle(c.Index)
		case OpClear:
			err = t.Clear()
		default:
			err = fmt.Errorf("unknown op %d", c.Op)
		}
		if err != nil {
			return i, fmt.Errorf("command %d %s: %w", i, c, err)
		}
	}
	return len(s.Commands), nil
}

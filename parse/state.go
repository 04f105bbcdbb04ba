package parse

import "github.com/ef-ds/deque"

// State is a forward-only cursor over an argument list
type State interface {
	Advance() bool            // Advance moves to the next argument, returning false when none is left
	CurrentArg() string       // CurrentArg returns the current argument
	Remaining() int           // Remaining returns the count of arguments not yet consumed
	PushFront(args ...string) // PushFront queues args ahead of the remaining arguments
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	current string
	pending *deque.Deque
}

// NewState creates a new State positioned before the first element of args
func NewState(args []string) State {
	pending := deque.New()
	for _, arg := range args {
		pending.PushBack(arg)
	}

	return &DefaultState{pending: pending}
}

// Advance pops the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	v, ok := s.pending.PopFront()
	if !ok {
		s.current = ""
		return false
	}
	s.current = v.(string)

	return true
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	return s.current
}

// Remaining returns the count of arguments which have not been consumed yet
func (s *DefaultState) Remaining() int {
	return s.pending.Len()
}

// PushFront queues args so that the next call to Advance returns args[0]
func (s *DefaultState) PushFront(args ...string) {
	for i := len(args) - 1; i >= 0; i-- {
		s.pending.PushFront(args[i])
	}
}

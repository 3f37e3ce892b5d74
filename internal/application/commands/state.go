package commands

import (
	"context"
	"fmt"

	"kgraph/internal/application"
	"kgraph/internal/ports"
)

// SetStateResult confirms a state write.
type SetStateResult struct {
	Op  string `json:"op"`
	Key string `json:"key"`
}

// SetStateCommand sets one session-state key. The conventional keys
// are focus, open_questions, last_session and session_count, but any
// key is accepted.
type SetStateCommand struct {
	state ports.StateRepository
	Key   string
	Value string
}

func NewSetStateCommand(state ports.StateRepository, key, value string) *SetStateCommand {
	return &SetStateCommand{state: state, Key: key, Value: value}
}

func (c *SetStateCommand) Validate() error {
	if c.Key == "" {
		return &application.ValidationError{Field: "key", Message: "key is required"}
	}
	return nil
}

func (c *SetStateCommand) Execute(ctx context.Context) (*SetStateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.state.SetState(c.Key, c.Value); err != nil {
		return nil, fmt.Errorf("setting state %s: %w", c.Key, err)
	}
	return &SetStateResult{Op: "state_set", Key: c.Key}, nil
}

// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package statemachine

import (
	"errors"
	"fmt"
	"slices"
)

var (
	errNoTransitions     = errors.New("state machine needs at least one transition")
	ErrInvalidTransition = errors.New("invalid state machine transition")
)

// StateMachine walks a fixed transition table. States with no outgoing
// transitions are terminal.
type StateMachine[S comparable] struct {
	current     S
	transitions map[S][]S
}

func NewStateMachine[S comparable](initial S, transitions map[S][]S) (*StateMachine[S], error) {
	if len(transitions) == 0 {
		return nil, errNoTransitions
	}
	return &StateMachine[S]{
		current:     initial,
		transitions: transitions,
	}, nil
}

func (sm *StateMachine[S]) CurrentState() S {
	return sm.current
}

// NextState moves to next if the table allows it from the current state.
func (sm *StateMachine[S]) NextState(next S) (S, error) {
	if !slices.Contains(sm.transitions[sm.current], next) {
		return sm.current, fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, sm.current, next)
	}
	sm.current = next
	return sm.current, nil
}

func (sm *StateMachine[S]) Terminal() bool {
	return len(sm.transitions[sm.current]) == 0
}

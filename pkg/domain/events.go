package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventProgramLoaded EventType = "program_loaded"
	EventStep          EventType = "step"
	EventHalt          EventType = "halt"
	EventError         EventType = "error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Cycle     int       `json:"cycle"`
}

// ProgramEvent is emitted when a program is loaded into an engine.
type ProgramEvent struct {
	EventBase
	Rules   int `json:"rules"`
	Initial any `json:"initial,omitempty"`
}

// StepEvent describes one applied transition.
type StepEvent struct {
	EventBase
	State     any       `json:"state"`
	Symbol    any       `json:"symbol"`
	Direction Direction `json:"direction"`
	Next      any       `json:"next"`
	Write     any       `json:"write"`
	Position  int       `json:"position"`
}

// HaltEvent is emitted once when the machine reaches a halting state.
type HaltEvent struct {
	EventBase
	State    any `json:"state"`
	Position int `json:"position"`
}

// ErrorEvent is emitted when a step fails.
type ErrorEvent struct {
	EventBase
	Kind string `json:"kind"`
	Err  error  `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks never influence control flow.
type LifecycleHooks struct {
	OnProgramLoaded func(context.Context, *ProgramEvent)
	OnStep          func(context.Context, *StepEvent)
	OnHalt          func(context.Context, *HaltEvent)
	OnError         func(context.Context, *ErrorEvent)
}

package domain

import (
	"context"
	"time"
)

// EventType defines the category of a lifecycle event.
type EventType string

const (
	EventActionApplied  EventType = "action_applied"
	EventActionRejected EventType = "action_rejected"
)

// ActionEvent describes the outcome of one dispatched action.
type ActionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	// ActionKind is the Kind() of the dispatched action.
	ActionKind string `json:"action_kind"`
	// Changed reports whether the action produced a new document value.
	// Applied actions with Changed=false were designed no-ops.
	Changed bool `json:"changed,omitempty"`
	// Reason carries the rejection cause for EventActionRejected.
	Reason string `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for editor observability. Hooks run
// synchronously on the dispatching goroutine; keep them fast.
type LifecycleHooks struct {
	OnActionApplied  func(context.Context, *ActionEvent)
	OnActionRejected func(context.Context, *ActionEvent)
}

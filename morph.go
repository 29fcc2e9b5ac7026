package morph

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/oxblood/morph/internal/logging"
	"github.com/oxblood/morph/internal/reducer"
	"github.com/oxblood/morph/pkg/domain"
)

// Editor is the high-level entry point for the Morph library. It holds the
// current document and applies actions through the pure reducer,
// serializing dispatches so each action sees exactly the prior action's
// output.
type Editor struct {
	mu     sync.Mutex
	doc    *domain.Document
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Editor.
type Option func(*Editor)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Editor) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithDocument starts the editor from an existing document instead of the
// default workspace.
func WithDocument(doc *domain.Document) Option {
	return func(e *Editor) {
		e.doc = doc
	}
}

// New initializes an Editor over a fresh default document.
func New(opts ...Option) *Editor {
	e := &Editor{}
	for _, opt := range opts {
		opt(e)
	}
	if e.doc == nil {
		e.doc = domain.New()
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

// Document returns the current document value. The value is immutable;
// callers may hold it across dispatches and diff it against later ones.
func (e *Editor) Document() *domain.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// Dispatch applies one action and returns the resulting document.
//
// A full timeline is a diagnostic, not a failure: when the gap finder
// cannot place a block the action is dropped, a warning is logged, the
// rejection hook fires, and Dispatch returns the unchanged document with a
// nil error. Lookup failures (missing ids, non-animatable properties) are
// returned as errors; the document stands in every case.
func (e *Editor) Dispatch(ctx context.Context, action domain.Action) (*domain.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.doc
	if action == nil {
		return prev, nil
	}
	next, err := reducer.Reduce(prev, action)
	if err != nil {
		if errors.Is(err, reducer.ErrNoGapAvailable) {
			e.logger.Warn("no space on the timeline, dropping action",
				"action", action.Kind(), "err", err)
			e.fireRejected(ctx, action, err)
			return prev, nil
		}
		e.logger.Error("action rejected", "action", action.Kind(), "err", err)
		e.fireRejected(ctx, action, err)
		return prev, err
	}

	e.doc = next
	changed := next != prev
	e.logger.Debug("action applied", "action", action.Kind(), "changed", changed)
	if e.hooks.OnActionApplied != nil {
		e.hooks.OnActionApplied(ctx, &domain.ActionEvent{
			Timestamp:  time.Now(),
			Type:       domain.EventActionApplied,
			ActionKind: action.Kind(),
			Changed:    changed,
		})
	}
	return next, nil
}

func (e *Editor) fireRejected(ctx context.Context, action domain.Action, err error) {
	if e.hooks.OnActionRejected == nil {
		return
	}
	e.hooks.OnActionRejected(ctx, &domain.ActionEvent{
		Timestamp:  time.Now(),
		Type:       domain.EventActionRejected,
		ActionKind: action.Kind(),
		Reason:     err.Error(),
	})
}

package session

import (
	"context"
	"time"

	"github.com/oxblood/morph/pkg/domain"
)

func fireApplied(ctx context.Context, hooks domain.LifecycleHooks, action domain.Action, changed bool) {
	if hooks.OnActionApplied == nil {
		return
	}
	hooks.OnActionApplied(ctx, &domain.ActionEvent{
		Timestamp:  time.Now(),
		Type:       domain.EventActionApplied,
		ActionKind: action.Kind(),
		Changed:    changed,
	})
}

func fireRejected(ctx context.Context, hooks domain.LifecycleHooks, action domain.Action, err error) {
	if hooks.OnActionRejected == nil {
		return
	}
	hooks.OnActionRejected(ctx, &domain.ActionEvent{
		Timestamp:  time.Now(),
		Type:       domain.EventActionRejected,
		ActionKind: action.Kind(),
		Reason:     err.Error(),
	})
}

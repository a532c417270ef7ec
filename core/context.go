package core

import "context"

// Context keys for evaluation options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
	evaluationIDKey   contextKey = "evaluationID"
)

// withSuppressHeader sets whether headers should be suppressed in the context
func withSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}

// withEvaluationID attaches the active evaluation tracking ID to the context
func withEvaluationID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, evaluationIDKey, id)
}

// evaluationIDFrom returns the active evaluation tracking ID, if any
func evaluationIDFrom(ctx context.Context) (int64, bool) {
	val := ctx.Value(evaluationIDKey)
	if val == nil {
		return 0, false
	}
	id, ok := val.(int64)
	return id, ok && id > 0
}

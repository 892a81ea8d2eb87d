package ctxutil

import "context"

type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	privilegesKey contextKey = "privileges"
)

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// WithRequestID stores the correlation id for the current request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(Default(ctx), requestIDKey, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithPrivileges stores the caller's pre-verified privilege set.
func WithPrivileges(ctx context.Context, privileges []string) context.Context {
	return context.WithValue(Default(ctx), privilegesKey, privileges)
}

func Privileges(ctx context.Context) []string {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(privilegesKey).([]string); ok {
		return v
	}
	return nil
}

// HasPrivilege reports whether the caller carries the named privilege.
func HasPrivilege(ctx context.Context, name string) bool {
	for _, p := range Privileges(ctx) {
		if p == name {
			return true
		}
	}
	return false
}

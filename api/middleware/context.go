package middleware

import "context"

type contextKey string

const ctxAdminName contextKey = "admin_name"

// AdminNameFromContext returns the authenticated admin's display name, or ""
// when the request is unauthenticated.
func AdminNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAdminName).(string); ok {
		return v
	}
	return ""
}

// WithAdminName injects the admin identity into the context.
func WithAdminName(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAdminName, name)
}

package middleware

import "context"

type contextKey string

const (
	ctxUserID     contextKey = "user_id"
	ctxUserEmail  contextKey = "user_email"
	ctxSellerName contextKey = "seller_name"
	ctxIsAdmin    contextKey = "is_admin"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func UserEmailFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserEmail).(string); ok {
		return v
	}
	return ""
}

func SellerNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSellerName).(string); ok {
		return v
	}
	return ""
}

func IsAdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxIsAdmin).(bool); ok {
		return v
	}
	return false
}

// WithIdentity injects the authenticated identity into the context for downstream handlers.
func WithIdentity(ctx context.Context, userID, email, sellerName string, isAdmin bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxUserEmail, email)
	ctx = context.WithValue(ctx, ctxSellerName, sellerName)
	return context.WithValue(ctx, ctxIsAdmin, isAdmin)
}

package identity

import "context"

type contextKey string

const uidContextKey contextKey = "user-uid"

func ContextWithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

func UIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(uidContextKey).(string)
	return uid, ok && uid != ""
}

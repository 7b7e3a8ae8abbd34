package httpx

import "context"

type ctxKey string

const (
	// CtxKeyPublisherID carries the authenticated publisher's id.
	CtxKeyPublisherID ctxKey = "publisher_id"
)

// PublisherIDFromCtx returns the authenticated publisher id, or "" when the
// request is unauthenticated.
func PublisherIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyPublisherID).(string); ok {
		return v
	}
	return ""
}

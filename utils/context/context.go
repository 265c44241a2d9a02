package context

import (
	"context"

	"github.com/muhammadheryan/contact-store/constant"
)

// GetRequestID returns the id stored by the request id middleware.
func GetRequestID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

package transport

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/contact-store/constant"
	"github.com/muhammadheryan/contact-store/utils/errors"
	"github.com/muhammadheryan/contact-store/utils/logger"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns a panic into a 500 response.
func RecoveryMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context()).Error("[RecoveryMiddleware] panic",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				writeError(w, errors.SetCustomError(constant.ErrUnexpected).WithDetails(fmt.Sprint(rec)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

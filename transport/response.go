package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/contact-store/constant"
	"github.com/muhammadheryan/contact-store/utils/errors"
	"github.com/muhammadheryan/contact-store/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Details string            `json:"details,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, res interface{}) {
	writeJSON(w, status, res)
}

// writeError renders err. Errors that are not a CustomError are reported as
// an unexpected failure with the message as details.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrUnexpected).WithDetails(err.Error())
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Error:   ce.Error(),
		Code:    ce.ErrorCode(),
		Errors:  ce.Fields(),
		Details: ce.Details(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

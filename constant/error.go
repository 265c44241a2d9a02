package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrValidation
	ErrNoValidFields
	ErrUnexpected
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "Database error",
	ErrNotFound:       "Contact not found",
	ErrInvalidRequest: "Invalid request body",
	ErrValidation:     "Validation failed",
	ErrNoValidFields:  "No valid fields to update",
	ErrUnexpected:     "Something went wrong!",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrValidation:     http.StatusBadRequest,
	ErrNoValidFields:  http.StatusBadRequest,
	ErrUnexpected:     http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrValidation:     "0004",
	ErrNoValidFields:  "0005",
	ErrUnexpected:     "0006",
}

// Field error messages reported under "errors".
const (
	MsgNameRequired   = "Name is required"
	MsgNameTooLong    = "Name must be at most 120 characters"
	MsgEmailRequired  = "Email is required"
	MsgEmailInvalid   = "Invalid email format"
	MsgEmailExists    = "Email already exists"
	MsgPhoneRequired  = "Phone is required"
	MsgPhoneInvalid   = "Phone must be 10-25 characters"
	MsgFieldNotString = "must be a string"
)

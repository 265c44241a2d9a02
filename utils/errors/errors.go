package errors

import "github.com/muhammadheryan/contact-store/constant"

type CustomError struct {
	errType constant.ErrorType
	fields  map[string]string
	details string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Fields returns the per-field messages of a validation failure.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

// Details returns the underlying cause passed through to the client.
func (c CustomError) Details() string {
	return c.details
}

// WithFields returns a copy carrying field-level messages.
func (c CustomError) WithFields(fields map[string]string) CustomError {
	c.fields = fields
	return c
}

// WithDetails returns a copy carrying the underlying error message.
func (c CustomError) WithDetails(details string) CustomError {
	c.details = details
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// New creates a new PlatformError with the given code and message.
//
// Example:
//
//	var ErrNotEmpty = errors.New(errors.CodeConflict, "directory is not empty")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message while preserving it as the cause.
// If err already is a PlatformError its classification is kept.
//
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapFS wraps an error returned by a filesystem provider. The code is taken
// from the io/fs sentinel the error matches and the operation name and path
// are attached as context.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.Rename(src, dst); err != nil {
//	    return errors.WrapFS(err, "rename", src)
//	}
func WrapFS(err error, op, path string) PlatformError {
	if err == nil {
		return nil
	}
	code := codeForFS(err)
	wrapped := &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        fmt.Sprintf("%s %s", op, path),
		context:        map[string]interface{}{"op": op, "path": path},
		cause:          err,
	}
	return wrapped
}

func codeForFS(err error) ErrorCode {
	var platformErr PlatformError
	switch {
	case errors.As(err, &platformErr):
		return platformErr.Code()
	case errors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case errors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return CodeForbidden
	case errors.Is(err, fs.ErrInvalid):
		return CodeInvalidInput
	default:
		return CodeIO
	}
}

// WithContext returns a copy of err with one context field added.
// Existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContext(err error, key string, value interface{}) PlatformError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the given context fields merged
// in. New fields override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if !errors.As(err, &platformErr) {
		platformErr = &platformError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	merged := copyContext(platformErr.Context())
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        merged,
		cause:          platformErr.Unwrap(),
	}
}

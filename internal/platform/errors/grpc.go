package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultLocale is the default locale for error messages.
const DefaultLocale = "en-US"

// Localizer renders the user-facing message for a code.
// It returns the locale actually used, which may be a fallback.
type Localizer interface {
	Localize(locale string, code Code, metadata map[string]string) (resolvedLocale string, message string)
}

// HandleError converts domain errors to gRPC status for client responses.
// It formats the user-facing message with localizer for the given locale,
// defaulting to en-US if the locale is empty.
func HandleError(err error, locale string, localizer Localizer) error {
	if err == nil {
		return nil
	}

	if locale == "" {
		locale = DefaultLocale
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		resolved, userMsg := locale, appErr.Message
		if localizer != nil {
			resolved, userMsg = localizer.Localize(locale, appErr.Code, appErr.Metadata)
		}
		return appErr.ToGRPCStatus(resolved, userMsg)
	}

	// Unknown error - return internal with generic message
	return status.Error(codes.Internal, "an unexpected error occurred")
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

package booking

import "fmt"

// Error codes for every failure the booking service can surface.
// SlotNoLongerAvailable and OtpMismatch are expected, user-recoverable
// conditions; the rest indicate bad input or integrity violations.
const (
	CodeInvalidRateCard       = "invalidRateCard"
	CodeUnsupportedRate       = "unsupportedRateForBookingType"
	CodeInvalidWindow         = "invalidWindow"
	CodeAddOnUnavailable      = "addOnUnavailable"
	CodeSlotNoLongerAvailable = "slotNoLongerAvailable"
	CodeIllegalTransition     = "illegalTransition"
	CodeOtpMismatch           = "otpMismatch"
	CodeNotFound              = "notFound"
	CodeUnauthorized          = "unauthorized"
)

// ServiceError carries a stable machine-readable code alongside the
// human-readable message.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) *ServiceError {
	return &ServiceError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the service error code from err, or "" if err is
// not a ServiceError.
func ErrorCode(err error) string {
	if se, ok := err.(*ServiceError); ok {
		return se.Code
	}
	return ""
}

// IsCode reports whether err is a ServiceError with the given code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}

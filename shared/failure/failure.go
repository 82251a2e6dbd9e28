package failure

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable tag identifying the class of failure so
// callers can branch without string matching. Validation kinds are
// client-correctable, contention kinds are retryable, upstream kinds are
// surfaced as-is.
type Kind string

const (
	KindRedemptionExceeded        Kind = "redemption_exceeded"
	KindPaymentSplitMismatch      Kind = "payment_split_mismatch"
	KindPricingConfigMissing      Kind = "pricing_config_missing"
	KindInvalidTransition         Kind = "invalid_transition"
	KindInvalidState              Kind = "invalid_state"
	KindConflict                  Kind = "conflict"
	KindDeviceUnavailable         Kind = "device_unavailable"
	KindAlreadyClosed             Kind = "already_closed"
	KindAlreadyOpen               Kind = "already_open"
	KindInsufficientDrawerBalance Kind = "insufficient_drawer_balance"
	KindUpstreamTimeout           Kind = "upstream_timeout"
	KindNotFound                  Kind = "not_found"
	KindValidation                Kind = "validation"
	KindUnauthorized              Kind = "unauthorized"
	KindForbidden                 Kind = "forbidden"
	KindInternal                  Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validation returns a client-correctable failure carrying a specific kind,
// e.g. a redemption or payment split rule violation.
func Validation(kind Kind, msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    kind,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a contention failure: a guarded write observed a state
// other than its precondition.
func Conflict(kind Kind, message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    kind,
		Message: message,
	}
}

// UpstreamTimeout returns a failure for record-store calls that exceeded the
// caller-supplied deadline.
func UpstreamTimeout(message string) error {
	return &Failure{
		Code:    http.StatusGatewayTimeout,
		Kind:    KindUpstreamTimeout,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf returns the failure kind of an error, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether the error carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
// The prefix before the underscore names the module that raises it.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_005"
	ErrCodeConflict       ErrorCode = "COMMON_006"
	ErrCodeTimeout        ErrorCode = "COMMON_009"
	ErrCodeValidation     ErrorCode = "COMMON_010"
	ErrCodeSerialization  ErrorCode = "COMMON_011"
	ErrCodeNotImplemented ErrorCode = "COMMON_016"
	ErrCodeUnknown        ErrorCode = "COMMON_000"
	ErrCodeOK             ErrorCode = "OK"
)

// Aliases used at call sites.
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeNotImplemented = ErrCodeNotImplemented
	CodeUnknown        = ErrCodeUnknown
	CodeOK             = ErrCodeOK
)

// Molecule graph error codes. Raised by the mutation layer that owns the
// atom and bond collections.
const (
	ErrCodeAtomNotFound     ErrorCode = "GRAPH_001"
	ErrCodeBondNotFound     ErrorCode = "GRAPH_002"
	ErrCodeSelfBond         ErrorCode = "GRAPH_003"
	ErrCodeDuplicateBond    ErrorCode = "GRAPH_004"
	ErrCodeInvalidBondOrder ErrorCode = "GRAPH_005"
	ErrCodeUnknownElement   ErrorCode = "GRAPH_006"
	ErrCodeValenceExceeded  ErrorCode = "GRAPH_007"
)

// Simulation session error codes
const (
	ErrCodeUnknownPreset ErrorCode = "SIM_001"
	ErrCodeNoDragTarget  ErrorCode = "SIM_002"
)

// Configuration error codes
const (
	ErrCodeConfigInvalid ErrorCode = "CFG_001"
)

// Frame broadcast error codes
const (
	ErrCodeBroadcastUnavailable ErrorCode = "BCAST_001"
	ErrCodeBroadcastClosed      ErrorCode = "BCAST_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeConflict:       http.StatusConflict,
	ErrCodeTimeout:        http.StatusGatewayTimeout,
	ErrCodeValidation:     http.StatusUnprocessableEntity,
	ErrCodeSerialization:  http.StatusInternalServerError,
	ErrCodeNotImplemented: http.StatusNotImplemented,

	ErrCodeAtomNotFound:     http.StatusNotFound,
	ErrCodeBondNotFound:     http.StatusNotFound,
	ErrCodeSelfBond:         http.StatusBadRequest,
	ErrCodeDuplicateBond:    http.StatusConflict,
	ErrCodeInvalidBondOrder: http.StatusBadRequest,
	ErrCodeUnknownElement:   http.StatusBadRequest,
	ErrCodeValenceExceeded:  http.StatusConflict,

	ErrCodeUnknownPreset: http.StatusNotFound,
	ErrCodeNoDragTarget:  http.StatusConflict,

	ErrCodeConfigInvalid: http.StatusInternalServerError,

	ErrCodeBroadcastUnavailable: http.StatusServiceUnavailable,
	ErrCodeBroadcastClosed:      http.StatusServiceUnavailable,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:       "internal server error",
	ErrCodeBadRequest:     "bad request",
	ErrCodeNotFound:       "resource not found",
	ErrCodeConflict:       "resource conflict",
	ErrCodeTimeout:        "request timeout",
	ErrCodeValidation:     "validation failed",
	ErrCodeSerialization:  "serialization failed",
	ErrCodeNotImplemented: "not implemented",

	ErrCodeAtomNotFound:     "atom not found",
	ErrCodeBondNotFound:     "bond not found",
	ErrCodeSelfBond:         "bond endpoints must be distinct atoms",
	ErrCodeDuplicateBond:    "atoms are already bonded",
	ErrCodeInvalidBondOrder: "bond order must be 1, 2 or 3",
	ErrCodeUnknownElement:   "unknown element symbol",
	ErrCodeValenceExceeded:  "atom has no free valence",

	ErrCodeUnknownPreset: "unknown molecule preset",
	ErrCodeNoDragTarget:  "no atom is being dragged",

	ErrCodeConfigInvalid: "invalid configuration",

	ErrCodeBroadcastUnavailable: "frame broadcast backend unavailable",
	ErrCodeBroadcastClosed:      "frame broadcast client is closed",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 1 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending

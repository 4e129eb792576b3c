package errors

// Code classifies an Error
type Code string

// Codes used across the bot. Four of them double as the rules taxonomy,
// see IsRule.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

func (c Code) String() string {
	return string(c)
}

// IsRule reports whether the code is one the rules engine produces for
// expected, player-facing failures.
func (c Code) IsRule() bool {
	switch c {
	case CodeInvalidArgument, CodeFailedPrecondition, CodeNotFound, CodePermissionDenied:
		return true
	default:
		return false
	}
}

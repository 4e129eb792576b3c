package errors

import (
	"errors"
	"fmt"
)

const genericUserMessage = "Something went wrong. Please try again."

// Expression reports a malformed dice pool expression or an unknown
// attribute/skill name.
func Expression(message string) *Error {
	return New(CodeInvalidArgument, message).WithMeta("kind", "expression")
}

// Expressionf is Expression with a formatted message
func Expressionf(format string, args ...any) *Error {
	return Expression(fmt.Sprintf(format, args...))
}

// State reports an action that round or resource state forbids.
func State(message string) *Error {
	return New(CodeFailedPrecondition, message).WithMeta("kind", "state")
}

// Statef is State with a formatted message
func Statef(format string, args ...any) *Error {
	return State(fmt.Sprintf(format, args...))
}

// Reference reports an actor, move or item that no longer exists.
func Reference(message string) *Error {
	return New(CodeNotFound, message).WithMeta("kind", "reference")
}

// Referencef is Reference with a formatted message
func Referencef(format string, args ...any) *Error {
	return Reference(fmt.Sprintf(format, args...))
}

// Permission reports a user acting on something they do not control.
func Permission(message string) *Error {
	return New(CodePermissionDenied, message).WithMeta("kind", "permission")
}

// Permissionf is Permission with a formatted message
func Permissionf(format string, args ...any) *Error {
	return Permission(fmt.Sprintf(format, args...))
}

// UserMessage returns the text to show a player for err. Rules errors keep
// their message, everything else is replaced with a generic one.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if !errors.As(err, &customErr) || !customErr.Code.IsRule() {
		return genericUserMessage
	}

	// Wrapping replaces the message, so walk to the innermost rules error.
	for {
		var inner *Error
		if customErr.Cause == nil || !errors.As(customErr.Cause, &inner) || !inner.Code.IsRule() {
			return customErr.Message
		}
		customErr = inner
	}
}

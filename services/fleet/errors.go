package fleet

import "fmt"

// Kind identifies a pipeline failure class.
type Kind string

const (
	KindMissingPeriod        Kind = "missingPeriod"
	KindInvalidDateFormat    Kind = "invalidDateFormat"
	KindInvalidRange         Kind = "invalidRange"
	KindNoAllowedCategories  Kind = "noAllowedCategories"
	KindConfigurationMissing Kind = "configurationMissing"
	KindUnexpected           Kind = "unexpected"
)

// Error carries a failure class plus the message shown to the requester. The first
// four kinds are expected user-facing conditions; the last two are internal faults
// that surface only as the generic system message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// User-facing messages. Internal failure detail never leaks into these.
const (
	MsgMissingPeriod = "Trip period is not specified."
	MsgInvalidDate   = "Malformed or impossible date. Expected format: dd.mm.yyyy HH:MM."
	MsgInvalidRange  = "The end date must be strictly after the start date."
	MsgNoCategories  = "No vehicle categories are available for your position."
	MsgSystemError   = "A system error occurred. Please contact the administrator."
)

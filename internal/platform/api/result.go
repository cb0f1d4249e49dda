package api

// Outcome distinguishes how a service operation concluded, independent of
// the transport status used to report it.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
)

// Result is a discriminated operation outcome. Business-rule failures such
// as a missing referenced account are reported as OutcomeNotFound rather
// than as errors, and the boundary layer decides the HTTP status. The
// dashboard contract reports these with a 200 and the message field.
type Result struct {
	Outcome Outcome
	Message string
}

// OK returns a success result with a confirmation message.
func OK(message string) *Result {
	return &Result{Outcome: OutcomeOK, Message: message}
}

// NotFound returns a business-rule not-found result.
func NotFound(message string) *Result {
	return &Result{Outcome: OutcomeNotFound, Message: message}
}

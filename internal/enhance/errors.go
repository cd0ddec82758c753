package enhance

import "fmt"

// APICallError indicates the oracle could not be reached or rejected
// the request.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enhancement API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("enhancement API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError indicates the oracle replied but its payload could not be
// decoded into a resume.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enhancement parse failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("enhancement parse failed: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

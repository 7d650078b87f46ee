package domain

import "fmt"

// TransportError reports that the query service could not be reached or
// answered with something other than a result set or a query failure.
type TransportError struct {
	Op     string
	Status int // 0 when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.Status, e.Err)
		}
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// QueryError is a failure reported by the query service itself (HTTP 500).
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string { return "query failed: " + e.Message }

package sensing

import "encoding/json"

// StatusKind discriminates the outcome of a sensing operation.
type StatusKind int

const (
	// StatusOK means the operation completed.
	StatusOK StatusKind = iota
	// StatusInvalid means the input was rejected and nothing changed.
	StatusInvalid
	// StatusNotFound means a named resource could not be resolved.
	StatusNotFound
	// StatusFailed means the operation ran but did not complete.
	StatusFailed
)

// String returns the wire name of the kind.
func (k StatusKind) String() string {
	switch k {
	case StatusOK:
		return "ok"
	case StatusInvalid:
		return "invalid"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its wire name.
func (k StatusKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Status is the outcome of a configuration or one-shot detection
// operation. Operations that cannot raise report failures here instead.
type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message"`
}

// OK builds a success status with the given message.
func OK(message string) Status {
	return Status{Kind: StatusOK, Message: message}
}

// Invalid builds a rejected-input status.
func Invalid(message string) Status {
	return Status{Kind: StatusInvalid, Message: message}
}

// NotFound builds a missing-resource status.
func NotFound(message string) Status {
	return Status{Kind: StatusNotFound, Message: message}
}

// Failed builds a failure status carrying the failure's message.
func Failed(message string) Status {
	return Status{Kind: StatusFailed, Message: message}
}

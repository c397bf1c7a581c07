package types

import "errors"

// RegistryError is a failed registry call. Code is the value reported to
// callers in the error envelope.
type RegistryError struct {
	Kind string
	Code int

	// of is the sentinel this error also matches under errors.Is.
	of *RegistryError
}

func (e *RegistryError) Error() string {
	return e.Kind
}

func (e *RegistryError) Is(target error) bool {
	return e.of != nil && target == error(e.of)
}

var (
	ErrInvalidResourceType = &RegistryError{Kind: "invalid resource type", Code: 1}
	ErrInvalidQuantity     = &RegistryError{Kind: "invalid quantity", Code: 2}
	ErrInvalidPriority     = &RegistryError{Kind: "invalid priority", Code: 3}
	// Status range failures share code 1 with resource type failures.
	ErrInvalidStatus = &RegistryError{Kind: "invalid status", Code: 1}
	ErrNotFound      = &RegistryError{Kind: "not found", Code: 404}
	ErrUnauthorized  = &RegistryError{Kind: "unauthorized", Code: 403}

	// Out of range priority updates report code 1 like status updates but
	// still match ErrInvalidPriority.
	ErrInvalidPriorityUpdate = &RegistryError{Kind: "invalid priority", Code: 1, of: ErrInvalidPriority}
)

// ErrorCode returns the envelope code of the first RegistryError in err's chain.
func ErrorCode(err error) (int, bool) {
	var re *RegistryError
	if errors.As(err, &re) {
		return re.Code, true
	}
	return 0, false
}

package domain

import "errors"

// GenerationErrorKind classifies a failed generation call.
type GenerationErrorKind string

const (
	// GenerationConfiguration: required credential or config absent.
	GenerationConfiguration GenerationErrorKind = "configuration"
	// GenerationUpstream: the provider returned a non-success status.
	GenerationUpstream GenerationErrorKind = "upstream"
	// GenerationEmpty: the provider succeeded but returned no usable text.
	GenerationEmpty GenerationErrorKind = "empty_response"
	// GenerationTransport: network or transport failure reaching the provider.
	GenerationTransport GenerationErrorKind = "transport"
)

// GenerationError is the normalized failure shape of a GenerationClient.
// None of the kinds are retried by the adapter; retry policy, if any,
// belongs to the caller.
type GenerationError struct {
	Kind    GenerationErrorKind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError builds a GenerationError with an explicit message.
func NewGenerationError(kind GenerationErrorKind, message string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Message: message, Err: err}
}

// AsGenerationError extracts a GenerationError from an error chain.
func AsGenerationError(err error) (*GenerationError, bool) {
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}

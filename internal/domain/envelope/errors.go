package envelope

import "errors"

// Kind classifies why an envelope could not be unwrapped.
type Kind string

const (
	KindDataMissing    Kind = "DATA_MISSING"
	KindMessageMissing Kind = "MESSAGE_MISSING"
)

// Sentinels for errors.Is matching.
var (
	ErrDataMissing    = errors.New("envelope: data missing")
	ErrMessageMissing = errors.New("envelope: message missing")
)

// Error is returned when an envelope has no usable payload or message.
// Message is safe to show to the end user as-is.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match the Kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrDataMissing:
		return e.Kind == KindDataMissing
	case ErrMessageMissing:
		return e.Kind == KindMessageMissing
	}
	return false
}

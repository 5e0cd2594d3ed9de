// Package envelope unwraps the uniform response wrapper returned by the
// hotel-booking services: { "data": ..., "message": "...", "error": "..." }.
//
// Every network call normalises the two server shapes (success with data,
// failure with message or error) into either a value or a typed *Error, so
// callers never branch on message vs error themselves.
package envelope

import "encoding/json"

// Envelope is the decoded body of a service response.
//
// Data is a pointer so that an absent field and an explicit JSON null are the
// same observation: both decode to nil and both count as "no payload".
type Envelope[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MessageEnvelope is used for endpoints that only answer with a message.
type MessageEnvelope = Envelope[json.RawMessage]

// Of builds an envelope carrying data.
func Of[T any](data T) *Envelope[T] {
	return &Envelope[T]{Data: &data}
}

// HasData reports whether the envelope carries a usable payload.
func (e *Envelope[T]) HasData() bool {
	return e != nil && e.Data != nil
}

// DataOrError returns the payload, or a DataMissing error whose message is
// the envelope's message, else its error, else fallbackMessage.
func (e *Envelope[T]) DataOrError(fallbackMessage string) (T, error) {
	if e.HasData() {
		return *e.Data, nil
	}
	var zero T
	return zero, &Error{Kind: KindDataMissing, Message: e.failureText(e.message(), fallbackMessage)}
}

// DataOrDefault returns the payload, or fallback when there is none. It never
// fails.
func (e *Envelope[T]) DataOrDefault(fallback T) T {
	if e.HasData() {
		return *e.Data
	}
	return fallback
}

// MessageOrError returns the non-empty message, or a MessageMissing error
// whose message is the envelope's error, else fallbackMessage. Data is not
// consulted.
func (e *Envelope[T]) MessageOrError(fallbackMessage string) (string, error) {
	if msg := e.message(); msg != "" {
		return msg, nil
	}
	return "", &Error{Kind: KindMessageMissing, Message: e.failureText("", fallbackMessage)}
}

func (e *Envelope[T]) message() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Envelope[T]) failureText(first, fallback string) string {
	if first != "" {
		return first
	}
	if e != nil && e.Error != "" {
		return e.Error
	}
	return fallback
}

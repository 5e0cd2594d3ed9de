package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrorKind classifies why a call failed.
type ErrorKind string

const (
	// KindResponse means the service answered with an error status.
	KindResponse ErrorKind = "RESPONSE"
	// KindNoResponse means the request was sent but nothing came back.
	KindNoResponse ErrorKind = "NO_RESPONSE"
	// KindRequest covers everything else, including undecodable bodies.
	KindRequest ErrorKind = "REQUEST"
)

// User-facing fallback messages.
const (
	MsgRequestFailed = "Request failed. Please try again."
	MsgNoResponse    = "No response from server. Please check your connection."
	MsgUnknown       = "Something went wrong."
)

// APIError is the user-facing failure of a backend call. Message is always
// safe to show to an end user.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a response error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindResponse && apiErr.StatusCode == status
}

// errorBody is the failure payload services send with error statuses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// responseError builds the error for a non-2xx answer. The body's message
// wins over its error field.
func responseError(resp *resty.Response) *APIError {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)

	msg := firstNonEmpty(body.Message, body.Error, MsgRequestFailed)
	return &APIError{
		Kind:       KindResponse,
		StatusCode: resp.StatusCode(),
		Message:    msg,
	}
}

// transportError classifies an error returned before any response arrived.
// A cancelled context is the caller's doing, not a missing response.
func transportError(err error) *APIError {
	if errors.Is(err, context.Canceled) {
		return requestError(err)
	}
	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return &APIError{Kind: KindNoResponse, Message: MsgNoResponse, Err: err}
	}
	return requestError(err)
}

func requestError(err error) *APIError {
	msg := MsgUnknown
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	return &APIError{Kind: KindRequest, Message: msg, Err: err}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

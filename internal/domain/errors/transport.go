package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies a transport or mapping failure.
type Kind string

const (
	KindInvalidRequest   Kind = "INVALID_REQUEST"   // Caller error, raised before any I/O.
	KindNotFound         Kind = "NOT_FOUND"         // HTTP 404.
	KindServerError      Kind = "SERVER_ERROR"      // HTTP 5xx.
	KindNoResponse       Kind = "NO_RESPONSE"       // Request sent, nothing came back (network, timeout).
	KindMalformed        Kind = "MALFORMED"         // Response not decodable into the expected shape.
	KindEmptyBody        Kind = "EMPTY_BODY"        // 2xx with a null or absent payload.
	KindUnexpectedStatus Kind = "UNEXPECTED_STATUS" // Any other non-2xx status.
)

// TransportError is the typed failure produced by the product API client and
// the DTO mapper. It implements AppError.
type TransportError struct {
	kind          Kind
	status        int
	productID     string
	serverMessage string
	cause         error
}

// NewInvalidRequest reports a request rejected before it reached the network.
func NewInvalidRequest(productID string) *TransportError {
	return &TransportError{kind: KindInvalidRequest, productID: productID}
}

// NewStatusError classifies a non-2xx response. productID is empty for
// collection requests; serverMessage is the backend's "message" field, if any.
func NewStatusError(status int, productID, serverMessage string) *TransportError {
	kind := KindUnexpectedStatus
	switch {
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status >= http.StatusInternalServerError:
		kind = KindServerError
	}

	return &TransportError{
		kind:          kind,
		status:        status,
		productID:     productID,
		serverMessage: serverMessage,
	}
}

// NewNoResponse wraps a failure where no response was received.
func NewNoResponse(productID string, cause error) *TransportError {
	return &TransportError{kind: KindNoResponse, productID: productID, cause: cause}
}

// NewMalformed wraps a decoding or mapping failure.
func NewMalformed(productID string, cause error) *TransportError {
	return &TransportError{kind: KindMalformed, productID: productID, cause: cause}
}

// NewEmptyBody reports a successful response without a payload.
func NewEmptyBody(productID string, status int) *TransportError {
	return &TransportError{kind: KindEmptyBody, productID: productID, status: status}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return e.Message()
}

// Unwrap exposes the underlying cause, if any.
func (e *TransportError) Unwrap() error {
	return e.cause
}

// Kind returns the failure classification.
func (e *TransportError) Kind() Kind {
	return e.kind
}

// Status returns the HTTP status received, or 0 when there was none.
func (e *TransportError) Status() int {
	return e.status
}

// ProductID returns the requested product ID, empty for collection requests.
func (e *TransportError) ProductID() string {
	return e.productID
}

// ServerMessage returns the message supplied by the backend, if any.
func (e *TransportError) ServerMessage() string {
	return e.serverMessage
}

// Message returns the server-supplied message verbatim when present, otherwise
// a fixed fallback for the error kind. Views render this text directly.
func (e *TransportError) Message() string {
	if e.serverMessage != "" {
		return e.serverMessage
	}

	switch e.kind {
	case KindInvalidRequest:
		return "Product ID is required"
	case KindNotFound:
		if e.productID == "" {
			return "No products found"
		}

		return `Product with ID "` + e.productID + `" not found`
	case KindServerError:
		if e.productID == "" {
			return "Server error occurred while fetching products"
		}

		return "Server error occurred while fetching product"
	case KindNoResponse:
		if e.cause != nil {
			return e.cause.Error()
		}

		return "No response from server. Please check if the backend is running."
	case KindMalformed:
		return "Received malformed product data from server"
	case KindEmptyBody:
		return "No product data received from server"
	case KindUnexpectedStatus:
		return fmt.Sprintf("HTTP %d", e.status)
	default:
		return UnknownErrorMessage
	}
}

// HTTPCode maps the failure onto the status a gateway should answer with.
func (e *TransportError) HTTPCode() int {
	switch e.kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindNoResponse:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *TransportError) ErrorCode() string {
	return string(e.kind)
}

// Details returns the underlying cause text, if any.
func (e *TransportError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}

// IsKind reports whether err carries a TransportError of the given kind.
func IsKind(err error, kind Kind) bool {
	var transportErr *TransportError

	return errors.As(err, &transportErr) && transportErr.kind == kind
}

package common

import (
	"net/http"

	"github.com/bornholm/orders/internal/http/handler/webui/common/component"
)

type Error struct {
	err         string
	userMessage string
	statusCode  int
	links       []component.LinkItem
}

// Links implements [WithErrorLinks].
func (e *Error) Links() []component.LinkItem {
	return e.links
}

// StatusCode implements HTTPError.
func (e *Error) StatusCode() int {
	return e.statusCode
}

// Error implements UserFacingError.
func (e *Error) Error() string {
	return e.err
}

// UserMessage implements UserFacingError.
func (e *Error) UserMessage() string {
	return e.userMessage
}

func NewError(err string, userMessage string, statusCode int, links ...component.LinkItem) *Error {
	return &Error{err, userMessage, statusCode, links}
}

var _ UserFacingError = &Error{}
var _ HTTPError = &Error{}
var _ WithErrorLinks = &Error{}

// NewHTTPError returns an error carrying the Czech message of the status.
func NewHTTPError(statusCode int, links ...component.LinkItem) *Error {
	return &Error{http.StatusText(statusCode), statusMessage(statusCode), statusCode, links}
}

func statusMessage(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "Požadavek je neplatný."
	case http.StatusNotFound:
		return "Stránka nebyla nalezena."
	case http.StatusMethodNotAllowed:
		return "Tato operace není povolena."
	case http.StatusTooManyRequests:
		return "Příliš mnoho požadavků, zkuste to prosím za chvíli."
	default:
		return "Došlo k neočekávané chybě."
	}
}

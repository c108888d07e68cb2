// Package rest adapts generic requests into pipeline calls. Controllers
// here are the only place status codes are decided.
package rest

import "net/http"

// Request is a transport-agnostic request: the decoded JSON body keyed by
// field name.
type Request struct {
	Body map[string]interface{}
}

// Response pairs a status code with a body. An error body is serialized as
// an error descriptor by the transport adapter.
type Response struct {
	StatusCode int
	Body       interface{}
}

// Controller handles one request. It never panics and never retries; every
// failure is terminal for that request.
type Controller interface {
	Handle(req Request) Response
}

// ServerError wraps an unexpected capability failure. Its message is
// deliberately generic; the cause never crosses the HTTP boundary.
type ServerError struct {
	Cause error
}

func (e *ServerError) Error() string { return "internal server error" }

func (e *ServerError) Unwrap() error { return e.Cause }

func ok(body interface{}) Response {
	return Response{StatusCode: http.StatusOK, Body: body}
}

func badRequest(err error) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: err}
}

func unauthorized() Response {
	return Response{StatusCode: http.StatusUnauthorized}
}

func serverError(err error) Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: &ServerError{Cause: err}}
}

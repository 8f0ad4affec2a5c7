package client

import "fmt"

const genericErrorMessage = "Error en la búsqueda"

// ServerError is a failure reported by the search endpoint: a non-OK status
// whose body carried an error message (or the generic fallback).
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// TransportError is a failure before a server response could be read:
// network unreachability, cancellation or an undecodable body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", genericErrorMessage, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

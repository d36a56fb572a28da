// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "careerpath/internal/platform/net/http"
	"careerpath/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// JSONOptions tunes request body binding
	JSONOptions = bind.JSONOptions
)

var (
	// Strict rejects unknown fields and empty bodies
	Strict = bind.Strict
	// Lenient ignores unknown fields and treats an empty body as {}
	Lenient = bind.Lenient
)

// OK returns a 200 enveloped response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 enveloped response
func Created(data any) Response { return phttp.Created(data) }

// Raw returns body as is with status, no envelope
func Raw(status int, body any) Response { return phttp.Raw(status, body) }

// Bare is Raw with 200
func Bare(body any) Response { return phttp.Raw(http.StatusOK, body) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Validate runs struct validation on v
func Validate(v any) error { return bind.Validate(v) }

// JSON binds the body into T and calls fn; Strict binding unless opts say otherwise
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return phttp.Error(err)
		}
		return respond(fn(r, in))
	})
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return respond(fn(r)) })
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// respond passes a Response through and envelopes anything else
func respond(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(phttp.Response); ok {
		return resp
	}
	return phttp.OK(out)
}

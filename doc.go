// Package quickserve provides the domain values of a minimal JSON HTTP API:
// the Error value every failure is reported with, the example payloads, and
// the small parsing and validation helpers the route handlers share.
//
// # Key Components
//
//   - Error: immutable failure record {status, message, trace}
//   - Payload: body of the create-item endpoint, validated with
//     go-playground/validator
//   - Item: value synthesized by the get-item endpoint
//
// # Errors
//
// Handlers never write failure responses themselves. They return an *Error
// and the http package translates it into a single JSON body:
//
//	if _, err := quickserve.ParseID(raw); err != nil {
//	    return http.Result{}, err // 400 "Invalid id"
//	}
//
// Error values match the package sentinels through errors.Is:
//
//	errors.Is(quickserve.NotFound(), quickserve.ErrNotFound) // true
//
// See the route package for request matching and the http package for the
// dispatcher, error translator and server lifecycle.
package quickserve

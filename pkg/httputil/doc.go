// Package httputil provides JSON request and response helpers for the
// Ordinatrix HTTP API.
//
// # Responses
//
// [WriteJSON] encodes a value with the given status code. [WriteError]
// turns an error into an [ErrorBody] whose status comes from
// errors.HTTPStatus, so handlers can return domain errors unchanged:
//
//	if err := opts.ValidateAndSetDefaults(); err != nil {
//	    httputil.WriteError(w, err)
//	    return
//	}
//
// # Requests
//
// [DecodeJSON] reads a bounded request body and rejects unknown fields
// and trailing data. Decode failures are INVALID_INPUT errors.
package httputil

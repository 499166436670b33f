// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herodex/internal/platform/constants"
	"github.com/taibuivan/herodex/internal/platform/validate"
)

// DecodeJSON reads the request body and decodes it into target.
//
// The body is capped at [constants.MaxBodyBytes] before decoding; the writer
// is needed so MaxBytesReader can close the connection on overflow. Any
// decode failure maps to [validate.ErrInvalidJSON] so handlers answer
// malformed payloads uniformly.
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxBodyBytes)

	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

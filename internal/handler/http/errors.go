// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Shabalin

package http

import "errors"

// Sentinel errors used by the session-gate middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Sentinel errors raised while decoding request input before it reaches a
// service.
var (
	// ErrInvalidJSONBody is returned when a request body cannot be decoded
	// as JSON at all.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrInvalidOffset is returned when the `offset` query parameter is
	// present but is not a non-negative integer.
	ErrInvalidOffset = errors.New("invalid `offset` query parameter")

	// ErrInvalidPathID is returned when a numeric path parameter (post or
	// comment ID) cannot be parsed as a positive integer.
	ErrInvalidPathID = errors.New("invalid identifier in path")
)

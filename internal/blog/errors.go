// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import "errors"

// Code classifies a user-addressable service error. Every error that the
// service returns to a caller carries exactly one of these codes; transport
// layers map them to status codes without inspecting messages.
type Code string

const (
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeInvalid         Code = "INVALID"
)

// Error is a typed, user-addressable service error. The message is part of
// the contract: clients key off it, so it is never rewritten downstream.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthenticated is returned when a mutating call has no actor.
func Unauthenticated() error {
	return &Error{Code: CodeUnauthenticated, Message: "You must be signed in"}
}

// Forbidden is returned when the actor lacks rights over the resource.
func Forbidden(message string) error {
	return &Error{Code: CodeForbidden, Message: message}
}

// NotFound is returned when an id or slug does not resolve.
func NotFound(message string) error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Conflict is returned on a slug collision. Collisions are never resolved
// automatically (no numeric suffixing) — the caller must pick another name.
func Conflict(message string) error {
	return &Error{Code: CodeConflict, Message: message}
}

// Invalid is returned when field validation fails, before any store access.
func Invalid(message string) error {
	return &Error{Code: CodeInvalid, Message: message}
}

// CodeOf extracts the service error code, or "" for untyped errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err is a service error with the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

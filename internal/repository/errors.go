// Package repository contains data access logic separated from HTTP
// handlers. Sentinel errors defined here let handlers distinguish failure
// scenarios without inspecting driver errors: ErrMemberNotFound maps to an
// HTTP 404 at the endpoint boundary, anything else is a store failure and
// maps to 500.
package repository

import "errors"

// ErrMemberNotFound is returned when a member id does not resolve to a row
// in the members table.
var ErrMemberNotFound = errors.New("member not found")

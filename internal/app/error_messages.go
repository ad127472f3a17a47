// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// YetAnotherNote server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSONProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidJSONProvided = "Invalid JSON was passed"

	// MsgInvalidNoteID is returned when the {id} URL segment is not a valid
	// integer note id.
	MsgInvalidNoteID = "invalid note id"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoteNotFound is returned when a read, update, or delete operation
	// targets a note that does not exist.
	MsgNoteNotFound = "note not found"

	// MsgNoIDsProvided is returned when a batch delete request contains an
	// empty id list.
	MsgNoIDsProvided = "no note IDs provided"
)

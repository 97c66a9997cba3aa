// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings written into
// response bodies by the HTTP handlers.
//
// Clients match on these texts, so they are part of the wire contract.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgEmailAlreadyExists is returned when a user is created or updated
	// with an email that belongs to another user.
	MsgEmailAlreadyExists = "email already exists"
)

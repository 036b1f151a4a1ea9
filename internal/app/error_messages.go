// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the vault
// service handlers and the client that talks to them.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies ({"status": ...} or {"detail": ...}) or log entries.
// Keeping them in one place ensures consistent wording on both sides of the
// wire.
package app

const (
	// MsgVaultRunning is the status reported by GET /.
	MsgVaultRunning = "Secure Vault Running"

	// MsgSaved is returned after a successful POST /upload.
	MsgSaved = "Saved"

	// MsgDeletedSuccessfully is returned after a successful DELETE /files/{id}.
	MsgDeletedSuccessfully = "Deleted successfully"

	// MsgInvalidDataProvided is returned when the multipart form cannot be
	// parsed or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoFileProvided is returned when the upload carries no "file" part.
	MsgNoFileProvided = "no file provided"

	// MsgInvalidFileID is returned when the {id} path parameter is not a
	// positive integer.
	MsgInvalidFileID = "invalid file id"

	// MsgFileNotFound is returned when the metadata row or the blob on disk
	// is missing.
	MsgFileNotFound = "File not found"

	// MsgFileAlreadyExists is returned when the storage name is already taken.
	MsgFileAlreadyExists = "file already exists"

	// MsgUploadTooLarge is returned when the upload exceeds the configured
	// body limit.
	MsgUploadTooLarge = "upload is too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

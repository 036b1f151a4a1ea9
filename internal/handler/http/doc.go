// Package http implements the REST surface of the vault service.
//
// It wires chi routes for status, upload, listing, content download and
// deletion of encrypted files. Request tracing, access logging, response
// compression and permissive CORS are applied as middleware before requests
// reach the [service.FileService].
package http

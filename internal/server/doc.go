// Package server runs the vault service's HTTP listener.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server

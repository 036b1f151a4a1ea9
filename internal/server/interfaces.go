package server

// Server runs the vault HTTP API.
type Server interface {
	// RunServer serves until the process is signalled, then drains in-flight
	// requests.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}

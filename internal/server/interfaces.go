package server

// Server is the lifecycle contract of the API server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}

// Package server wires and runs the application's transport servers.
//
// It opens the HTTP listener for the list API and the gRPC listener for the
// health service, starts the background workers and shuts everything down
// when SIGINT, SIGTERM or SIGQUIT arrives.
package server

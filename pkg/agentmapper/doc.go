// Package agentmapper wires the workshop store, the cloud persistence
// adapter, and the HTTP server into the runnable application, and provides
// the command line entry point used by cmd/agentmapper.
package agentmapper

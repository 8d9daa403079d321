// Package server owns the lifecycle of the inbound HTTP transport: startup,
// signal handling, and graceful shutdown.
package server

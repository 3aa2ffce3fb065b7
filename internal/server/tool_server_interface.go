// Package server provides the MCP server implementation for the AI
// developer tools service.
package server

// AdoptionToolServer defines the interface for the MCP server that handles
// adoption-metrics tool calls from MCP clients.
type AdoptionToolServer interface {
	// Initialize initializes the server with dependencies and configurations.
	Initialize() error

	// Start starts the MCP server on the specified transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error

	// Invoke dispatches one named operation with raw arguments without
	// going through a transport, returning rendered text or a structured
	// failure.
	Invoke(name string, args map[string]any) (string, error)

	// Operations lists the registered operations for discovery.
	Operations() []OperationInfo
}

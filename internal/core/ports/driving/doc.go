// Package driving defines the interfaces through which external actors
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI, MCP, and TUI adapters call
// them.
//
//   - SearchService: executes search requests
//   - IndexBuilder: runs a single-shot index build
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving

// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SearchService answers search requests against an open index
// snapshot. BuildService streams the relational corpus into a fresh
// index and commits it atomically.
package services

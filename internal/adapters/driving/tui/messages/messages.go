// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// SearchCompleted carries a finished search back to the model. Exactly
// one of Response and Err is set.
type SearchCompleted struct {
	Response *domain.SearchResponse
	Err      error
}

// Quit signals the application should exit.
type Quit struct{}

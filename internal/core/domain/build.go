package domain

import "time"

// BuildStats summarises a completed index build.
type BuildStats struct {
	// RunID tags one build's log lines and reports.
	RunID string

	// Books is the number of book rows loaded.
	Books int

	// Categories is the number of category rows loaded.
	Categories int

	// Documents is the number of indexed documents, one per non-blank
	// content line.
	Documents int

	// SkippedBlank counts source lines dropped for blank content.
	SkippedBlank int

	// Elapsed is the wall-clock build duration.
	Elapsed time.Duration
}

package domain

import "time"

// BaselineEntry is an accepted issue. Issues whose fingerprint matches an
// entry are suppressed when linting with the baseline applied.
type BaselineEntry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Fingerprint is the value of Issue.Fingerprint when the entry was saved.
	Fingerprint string

	// RuleID is the rule of the accepted issue.
	RuleID string

	// Path is the file of the accepted issue, relative to the base directory.
	Path string

	// Message is the accepted issue's message.
	Message string

	// CreatedAt is when the entry was recorded.
	CreatedAt time.Time
}

package domain

// ChangeType identifies what happened to a watched file.
type ChangeType string

const (
	// ChangeCreated indicates a new file.
	ChangeCreated ChangeType = "created"

	// ChangeUpdated indicates modified content.
	ChangeUpdated ChangeType = "updated"

	// ChangeDeleted indicates a removed or renamed file.
	ChangeDeleted ChangeType = "deleted"
)

// FileEvent is a change to a watched file.
type FileEvent struct {
	Path string
	Type ChangeType
}

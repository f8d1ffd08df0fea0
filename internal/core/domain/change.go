package domain

// ChangeType classifies a change to a watched file.
type ChangeType string

const (
	// ChangeCreated means the file appeared.
	ChangeCreated ChangeType = "created"
	// ChangeUpdated means the file content was written.
	ChangeUpdated ChangeType = "updated"
	// ChangeDeleted means the file was removed or renamed away.
	ChangeDeleted ChangeType = "deleted"
)

// FileChange is a change notification for a watched file.
type FileChange struct {
	Path string
	Type ChangeType
}

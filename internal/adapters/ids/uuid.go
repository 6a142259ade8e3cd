package ids

import "github.com/google/uuid"

// UUID allocates random version 4 UUIDs.
type UUID struct{}

// NewUUID creates a UUID allocator.
func NewUUID() UUID {
	return UUID{}
}

// NextID returns a new random UUID string.
func (UUID) NextID() string {
	return uuid.NewString()
}

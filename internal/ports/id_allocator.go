package ports

// IDAllocator produces identifiers for new recipes.
type IDAllocator interface {
	NextID() string
}

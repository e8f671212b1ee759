package ecs

// EntityID is a handle to an entity inside one World.
// IDs are never reused within a World, so a stale handle cannot alias a new entity.
type EntityID uint64

// Entity is a tagged handle; its data lives in the World's component maps
type Entity struct {
	ID   EntityID
	Tags map[string]bool
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]bool),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	return e.Tags[tag]
}

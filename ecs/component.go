package ecs

// ComponentID identifies a kind of component, and with it the kind of visual
// an entity represents
type ComponentID uint

// Component is any piece of data attached to an entity
type Component any

// ComponentMap stores an entity's components by kind
type ComponentMap map[ComponentID]Component

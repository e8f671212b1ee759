package components

// NameComponent is the display name of a visual, used by log messages
type NameComponent struct {
	Name string
}

// NewNameComponent names a visual
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{Name: name}
}

func (n *NameComponent) String() string {
	if n == nil || n.Name == "" {
		return "unnamed"
	}
	return n.Name
}

package domain

// DependencyTyping records whether a dependency ships its own type
// declarations.
type DependencyTyping struct {
	Name      string
	SelfTyped bool
}

package graph

import "fmt"

// UndeclaredVertexError reports a vertex referenced in an edge or
// attribute statement before any set_types statement declared it.
type UndeclaredVertexError struct {
	// Name is the undeclared vertex name.
	Name string

	// Line is the 1-based source line of the offending statement, or 0
	// when no position is available.
	Line int
}

func (e *UndeclaredVertexError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s used before declaration", e.Line, e.Name)
	}
	return fmt.Sprintf("%s used before declaration", e.Name)
}

package writers

import "strings"

// Theme controls the visual attributes the dot writer emits. Edge colors
// cycle per statement group so that jointly-required (conjunction) edges
// read as one colored bundle.
type Theme struct {
	// EdgeColors is cycled by unique group id, so every statement's
	// edges share a color distinct from its neighbors'.
	EdgeColors []string

	// NodeColorScheme is the Graphviz colorscheme used for node fills.
	NodeColorScheme string

	// fill returns a fill color (within NodeColorScheme) for a vertex
	// type/name pair.
	fill func(vertexType, vertexName string) string
}

// DefaultTheme colors vertices by type and edges by statement group.
func DefaultTheme() *Theme {
	return &Theme{
		EdgeColors: []string{
			"blue", "red", "green", "forestgreen", "deeppink", "gold",
			"brown", "purple", "cyan2", "yellow", "darkorange",
			"aquamarine", "bisque", "darkolivegreen2", "turquoise",
			"cornflowerblue", "cadetblue", "grey",
		},
		NodeColorScheme: "pastel19",
		fill:            defaultFill,
	}
}

// EdgeColor returns the color for a statement's edge bundle.
func (t *Theme) EdgeColor(uniqueGroupID int) string {
	if len(t.EdgeColors) == 0 {
		return "black"
	}
	return t.EdgeColors[uniqueGroupID%len(t.EdgeColors)]
}

// NodeFill returns the fill color for a vertex.
func (t *Theme) NodeFill(vertexType, vertexName string) string {
	if t.fill == nil {
		return "9"
	}
	return t.fill(vertexType, vertexName)
}

// defaultFill buckets vertices into pastel19 fills by type keywords, with
// the vertex name as a fallback signal for password-like vertices.
func defaultFill(vertexType, vertexName string) string {
	typ := strings.ToLower(vertexType)
	name := strings.ToLower(vertexName)

	switch {
	case containsAny(typ, "pw", "pwd", "password") || containsAny(name, "pw", "pwd", "password"):
		return "1"
	case containsAny(typ, "account", "mail"):
		return "2"
	case containsAny(typ, "finger", "biometric"):
		return "3"
	case containsAny(typ, "password manager"):
		return "4"
	case containsAny(typ, "device"):
		return "5"
	default:
		return "9"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

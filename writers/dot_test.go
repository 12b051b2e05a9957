package writers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamJakob/agtool2/graph"
	"github.com/SamJakob/agtool2/readers"
)

func mustRead(t *testing.T, src string) *graph.Graph {
	t.Helper()
	g, err := readers.NewTxt(nil).ReadGraph("test.txt", src)
	require.NoError(t, err)
	require.NotNil(t, g)
	return g
}

func render(t *testing.T, src string) string {
	t.Helper()
	out, err := NewDot(nil).WriteGraph(mustRead(t, src), "test.dot")
	require.NoError(t, err)
	return string(out)
}

func TestDotMetadata(t *testing.T) {
	w := NewDot(nil)
	assert.Equal(t, "dotwriter", w.ID())
	assert.Equal(t, "dot", w.DefaultFileExtension())
	assert.NotEmpty(t, w.Name())
	assert.NotEmpty(t, w.Version())
}

func TestDotSimpleGraph(t *testing.T) {
	out := render(t, "device: phone\npassword: pin\npin -> phone\n")

	assert.True(t, strings.HasPrefix(out, "digraph accountgraph {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"phone" [label="phone"`)
	assert.Contains(t, out, `"pin" -> "phone" [`)
}

func TestDotNodeDescription(t *testing.T) {
	out := render(t, "device: phone\n* phone: John's phone\n")
	assert.Contains(t, out, `"phone" [label="phone\nJohn's phone"`)
}

func TestDotRecoveryEdgeIsDashed(t *testing.T) {
	out := render(t, "device: phone\npassword: pw\npw = > phone\n")
	assert.Contains(t, out, "style=dashed")
	// The reserved "rec" marker never appears as a printed label.
	assert.NotContains(t, out, `label="rec"`)
}

func TestDotHiddenEdgeIsInvisible(t *testing.T) {
	out := render(t, "device: phone\npassword: pw\npw -invis> phone\n")
	assert.Contains(t, out, "style=invis")
	assert.NotContains(t, out, `label="invis"`)
}

func TestDotEdgeLabel(t *testing.T) {
	out := render(t, "device: phone\npassword: pw\npw -sms> phone\n")
	assert.Contains(t, out, `label="sms"`)
}

func TestDotRecoveryLabelStripsMarker(t *testing.T) {
	out := render(t, "device: phone\npassword: pw\npw =sms> phone\n")
	assert.Contains(t, out, "style=dashed")
	assert.Contains(t, out, `label="sms"`)
}

func TestDotConjunctionJunction(t *testing.T) {
	out := render(t, "password: a, b\ndevice: c\na, b -> c\n")

	// Jointly-required edges merge through a point-shaped junction node.
	assert.Contains(t, out, `"c__g0" [shape=point`)
	assert.Contains(t, out, `"a" -> "c__g0" [`)
	assert.Contains(t, out, `"b" -> "c__g0" [`)
	assert.Contains(t, out, `"c__g0" -> "c" [`)
	assert.Contains(t, out, "arrowhead=none")
	assert.NotContains(t, out, `"a" -> "c" [`)
}

func TestDotIndependentEdgesShareNoJunction(t *testing.T) {
	out := render(t, "password: a, b\ndevice: c\na -> c\nb -> c\n")

	assert.Contains(t, out, `"a" -> "c" [`)
	assert.Contains(t, out, `"b" -> "c" [`)
	assert.NotContains(t, out, "shape=point")
}

func TestDotEdgeColorsCyclePerStatement(t *testing.T) {
	out := render(t, "password: a, b\ndevice: c\na -> c\nb -> c\n")

	theme := DefaultTheme()
	assert.Contains(t, out, `color="`+theme.EdgeColor(0)+`"`)
	assert.Contains(t, out, `color="`+theme.EdgeColor(1)+`"`)
}

func TestDotQuotesSpecialCharacters(t *testing.T) {
	out := render(t, `device: phone`+"\n"+`* phone: a "quoted" note`+"\n")
	assert.Contains(t, out, `\"quoted\"`)
}

func TestThemeEdgeColorCycles(t *testing.T) {
	theme := DefaultTheme()
	n := len(theme.EdgeColors)
	require.Positive(t, n)

	assert.Equal(t, theme.EdgeColors[0], theme.EdgeColor(0))
	assert.Equal(t, theme.EdgeColors[0], theme.EdgeColor(n))
	assert.Equal(t, theme.EdgeColors[1], theme.EdgeColor(n+1))
}

func TestThemeNodeFill(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "1", theme.NodeFill("password", "x"))
	assert.Equal(t, "1", theme.NodeFill("thing", "my_pw"))
	assert.Equal(t, "2", theme.NodeFill("account", "x"))
	assert.Equal(t, "3", theme.NodeFill("fingerprint", "x"))
	assert.Equal(t, "5", theme.NodeFill("device", "x"))
	assert.Equal(t, "9", theme.NodeFill("unknown", "x"))
}

func TestDisplayLabel(t *testing.T) {
	assert.Equal(t, "", displayLabel("rec"))
	assert.Equal(t, "", displayLabel("invis"))
	assert.Equal(t, "sms", displayLabel("rec,sms"))
	assert.Equal(t, "sms", displayLabel("sms"))
	assert.Equal(t, "a,b", displayLabel("a,b"))
}

// WriteGraph accepts hand-built graphs too, not just reader output.
func TestDotHandBuiltGraph(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(&graph.Vertex{Name: "a", Type: "password"}))

	out, err := NewDot(nil).WriteGraph(g, "out.dot")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"a" [label="a"`)
}

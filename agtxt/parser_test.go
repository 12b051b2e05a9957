package agtxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyDocument(t *testing.T) {
	for _, src := range []string{
		"",
		"   \n\n\t\n",
		"# just a comment\n% another\n// and another\n",
		";;;\n;\n",
	} {
		stmts, err := Parse([]byte(src))
		require.NoError(t, err, "source: %q", src)
		assert.Empty(t, stmts, "source: %q", src)
	}
}

func TestParseSetTypes(t *testing.T) {
	stmts, err := Parse([]byte("device: phone1, phone2"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st, ok := stmts[0].(*SetTypes)
	require.True(t, ok)
	assert.Equal(t, "device", st.Type)
	assert.Equal(t, []string{"phone1", "phone2"}, st.Vertices)
	assert.Equal(t, 1, st.Pos().Line)
	assert.Equal(t, 1, st.Pos().Column)
}

func TestParseKeyedAttributes(t *testing.T) {
	stmts, err := Parse([]byte("os=android 14: phone1, phone2"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st, ok := stmts[0].(*SetAttributes)
	require.True(t, ok)
	assert.Equal(t, "os", st.Key)
	assert.Equal(t, "android 14", st.Value)
	assert.Equal(t, []string{"phone1", "phone2"}, st.Vertices)
}

func TestParseListedAttributes(t *testing.T) {
	stmts, err := Parse([]byte("phone1, phone2: os=android"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st, ok := stmts[0].(*SetAttributes)
	require.True(t, ok)
	assert.Equal(t, "os", st.Key)
	assert.Equal(t, "android", st.Value)
	assert.Equal(t, []string{"phone1", "phone2"}, st.Vertices)
}

func TestParseDescriptionShorthand(t *testing.T) {
	stmts, err := Parse([]byte("* phone1, phone2: Phones belonging to John Smith"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st, ok := stmts[0].(*SetAttributes)
	require.True(t, ok)
	assert.Equal(t, "description", st.Key)
	assert.Equal(t, "Phones belonging to John Smith", st.Value)
	assert.Equal(t, []string{"phone1", "phone2"}, st.Vertices)
}

func TestParseSetEdges(t *testing.T) {
	stmts, err := Parse([]byte("pin -> phone"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st, ok := stmts[0].(*SetEdges)
	require.True(t, ok)
	assert.Equal(t, []string{"pin"}, st.Sources)
	assert.Equal(t, []string{"phone"}, st.Sinks)
	assert.Equal(t, Arrow{Type: "-", Label: ""}, st.Arrow)
	assert.False(t, st.HasDescription)
}

func TestParseSetEdgesLists(t *testing.T) {
	stmts, err := Parse([]byte("pin, fingerprint -> phone1, phone2: John's phones"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st, ok := stmts[0].(*SetEdges)
	require.True(t, ok)
	assert.Equal(t, []string{"pin", "fingerprint"}, st.Sources)
	assert.Equal(t, []string{"phone1", "phone2"}, st.Sinks)
	assert.True(t, st.HasDescription)
	assert.Equal(t, "John's phones", st.Description)
}

func TestParseArrowLabels(t *testing.T) {
	cases := []struct {
		src   string
		arrow Arrow
	}{
		{"a -> b", Arrow{Type: "-", Label: ""}},
		{"a -invis> b", Arrow{Type: "-", Label: "invis"}},
		{"a => b", Arrow{Type: "=", Label: ""}},
		{"a = > b", Arrow{Type: "=", Label: ""}},
		{"a =sms> b", Arrow{Type: "=", Label: "sms"}},
		{"a -my-label-2> b", Arrow{Type: "-", Label: "my-label-2"}},
		{"a ~> b", Arrow{Type: "~", Label: ""}},
	}

	for _, tc := range cases {
		stmts, err := Parse([]byte(tc.src))
		require.NoError(t, err, "source: %q", tc.src)
		require.Len(t, stmts, 1, "source: %q", tc.src)
		st, ok := stmts[0].(*SetEdges)
		require.True(t, ok, "source: %q", tc.src)
		assert.Equal(t, tc.arrow, st.Arrow, "source: %q", tc.src)
	}
}

func TestParseMacro(t *testing.T) {
	stmts, err := Parse([]byte("@~:fun"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st, ok := stmts[0].(*Macro)
	require.True(t, ok)
	assert.Equal(t, "~", st.Symbol)
	assert.Equal(t, "fun", st.Substitution)
}

func TestParseSeparatorsAndComments(t *testing.T) {
	src := `
# account model
device: phone        % trailing comment
password: pin; pin -> phone  // two statements on one line
`
	stmts, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assert.IsType(t, &SetTypes{}, stmts[0])
	assert.IsType(t, &SetTypes{}, stmts[1])
	assert.IsType(t, &SetEdges{}, stmts[2])
}

func TestParseStatementPositions(t *testing.T) {
	src := "device: phone\npassword: pin\npin -> phone\n"
	stmts, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assert.Equal(t, 1, stmts[0].Pos().Line)
	assert.Equal(t, 2, stmts[1].Pos().Line)
	assert.Equal(t, 3, stmts[2].Pos().Line)
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	// "device phone" has no colon, arrow or '='; every alternative fails
	// at column 8 where the second token begins.
	_, err := Parse([]byte("device phone"))
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Pos.Line)
	assert.Equal(t, 8, se.Pos.Column)
	assert.Contains(t, err.Error(), "line 1, col 8")
}

func TestParseSyntaxErrorOnLaterLine(t *testing.T) {
	_, err := Parse([]byte("device: phone\n???\n"))
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Pos.Line)
}

func TestParseDanglingArrowReportsDeepestFailure(t *testing.T) {
	// The edge alternative consumes "pin ->" before failing on the missing
	// sink, so its error wins over the shallower attribute/type failures.
	_, err := Parse([]byte("pin ->"))
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "vertex name", se.Expected)
	assert.Equal(t, "end of input", se.Got)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse([]byte("device: phone extra"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end of statement")
}

func TestParseValueStopsAtComment(t *testing.T) {
	stmts, err := Parse([]byte("* phone: John's phone # personal"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	st := stmts[0].(*SetAttributes)
	assert.Equal(t, "John's phone", st.Value)
}

func TestParseValueStopsAtSemicolon(t *testing.T) {
	stmts, err := Parse([]byte("* phone: John's phone; device: phone"))
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	st := stmts[0].(*SetAttributes)
	assert.Equal(t, "John's phone", st.Value)
}

func TestParseMacroErrors(t *testing.T) {
	for _, src := range []string{"@", "@~", "@~:", "@->:x"} {
		_, err := Parse([]byte(src))
		assert.Error(t, err, "source: %q", src)
	}
}

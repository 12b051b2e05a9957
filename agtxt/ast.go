package agtxt

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// Statement is a single parsed expression from the account-graph text
// language. Concrete types are SetTypes, SetAttributes, SetEdges and Macro.
type Statement interface {
	Pos() Position
	statement()
}

// SetTypes declares the type of one or more vertices:
//
//	device: phone1, phone2
type SetTypes struct {
	Type     string   // the type applied to every listed vertex
	Vertices []string // vertex names, in source order
	Start    Position
}

func (s *SetTypes) Pos() Position { return s.Start }
func (*SetTypes) statement()      {}

// SetAttributes assigns a key=value attribute to one or more vertices.
// The language accepts three surface forms:
//
//	os=android: phone1, phone2
//	phone1, phone2: os=android
//	* phone1, phone2: Phones belonging to John Smith
//
// The starred shorthand implies Key == "description".
type SetAttributes struct {
	Key      string
	Value    string
	Vertices []string
	Start    Position
}

func (s *SetAttributes) Pos() Position { return s.Start }
func (*SetAttributes) statement()      {}

// Arrow is the connective of a SetEdges statement. Type is the single
// character before the optional label: "-", "=", or a macro symbol.
type Arrow struct {
	Type  string
	Label string // empty when no label was written
}

// SetEdges links every source vertex to every sink vertex:
//
//	pin, fingerprint -> phone: John's phone
//
// Sources are dependencies; sinks are the dependents that own the
// resulting edges. The optional description after the sink list is
// applied to every sink as a "description" attribute.
type SetEdges struct {
	Sources        []string
	Sinks          []string
	Arrow          Arrow
	Description    string
	HasDescription bool
	Start          Position
}

func (s *SetEdges) Pos() Position { return s.Start }
func (*SetEdges) statement()      {}

// Macro binds a single-character arrow symbol to an edge label:
//
//	@~:fun
//
// Subsequent arrows written with that symbol (~>) carry the label.
type Macro struct {
	Symbol       string
	Substitution string
	Start        Position
}

func (s *Macro) Pos() Position { return s.Start }
func (*Macro) statement()      {}

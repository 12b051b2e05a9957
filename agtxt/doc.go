// Package agtxt implements a parser for the agtool account-graph text
// language.
//
// The language is line-oriented: each line (or semicolon-separated segment)
// holds one expression declaring vertex types, vertex attributes, edges
// between vertices, or an arrow-label macro. End-of-line comments start with
// #, % or //.
//
//	device: phone            # declare a vertex of type "device"
//	password: pin
//	pin -> phone             % pin is required to access phone
//	pin = > phone            // recovery-method shorthand
//
// The parser is a hand-rolled recursive-descent parser over a
// position-tracked byte cursor. Where the grammar is ambiguous at the start
// of a statement the alternatives are tried in fixed order (edges,
// attributes, types) with backtracking, and the failure that made it
// furthest into the statement is the one reported.
//
// Usage:
//
//	stmts, err := agtxt.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parsing stops at the first malformed statement; there is no partial
// result. An empty or comment-only document parses to zero statements.
package agtxt

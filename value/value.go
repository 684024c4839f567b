/*
File    : sparkling/value/value.go
Package : value

Package value defines the literal payload kinds an AST Literal node can
carry: integers, floats, strings, booleans and nil. This is a deliberately
trimmed descendant of a runtime object system — the parser core has no
evaluator, so there is no Array/Map/Set/Function/Struct value here, only
what is needed to transfer a decoded token payload into the tree (spec.md
§1: "The reference-counted runtime value system beyond what is needed to
carry literal and identifier payloads in the AST" is out of scope).
*/
package value

import "fmt"

// Type identifies which concrete literal kind a Value holds.
type Type string

const (
	IntegerType Type = "int"
	FloatType   Type = "float"
	StringType  Type = "string"
	BooleanType Type = "bool"
	NilType     Type = "nil"
)

// Value is the payload a Literal AST node carries. Exactly one of the
// concrete types below backs any given Value.
type Value interface {
	Type() Type
	String() string
}

// Integer is a 64-bit signed integer literal payload.
type Integer struct {
	Val int64
}

func (i Integer) Type() Type     { return IntegerType }
func (i Integer) String() string { return fmt.Sprintf("%d", i.Val) }

// Float is a 64-bit floating point literal payload.
type Float struct {
	Val float64
}

func (f Float) Type() Type     { return FloatType }
func (f Float) String() string { return fmt.Sprintf("%g", f.Val) }

// String is a decoded string literal payload. Identifiers do not use it:
// they travel as a plain Go string in token.Payload.Str and are stored in
// the AST node's Name field.
type String struct {
	Val string
}

func (s String) Type() Type     { return StringType }
func (s String) String() string { return s.Val }

// Boolean is a true/false literal payload.
type Boolean struct {
	Val bool
}

func (b Boolean) Type() Type     { return BooleanType }
func (b Boolean) String() string { return fmt.Sprintf("%t", b.Val) }

// Nil is the singular nil/null literal payload.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

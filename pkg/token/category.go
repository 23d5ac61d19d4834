package token

// Category is a leaf value in the closed token taxonomy described by the
// lexer family specification. It is a flat enum; the two-level hierarchy
// named in the spec (e.g. Keyword.Declaration, Literal.String.Raw) exists
// only as a naming convention here and in the short/long tag tables — there
// is no runtime category tree to walk.
type Category int

const (
	// Text is the default, unclassified category.
	Text Category = iota

	// Keyword family.
	KeywordPlain
	KeywordConstant
	KeywordDeclaration
	KeywordNamespace
	KeywordType
	KeywordReserved

	// Name family.
	Name
	NameFunction
	NameClass
	NameDecorator
	NameBuiltin
	NameVariable
	NameAttribute
	NameTag
	NameNamespace

	// Literal.String family.
	String
	StringSingle
	StringDouble
	StringTriple
	StringRaw
	StringInterpolated
	StringEscape
	StringInterpol // the delimiter punctuation around an interpolated expression

	// Literal.Number family.
	NumberInteger
	NumberFloat
	NumberHex
	NumberOctal
	NumberBinary
	NumberScientific

	// Literal.Boolean.
	LiteralBoolean

	// Comment family.
	CommentSingle
	CommentMultiline
	CommentDoc

	// Operator family.
	OperatorSymbolic
	OperatorWord

	// Punctuation.
	Punctuation

	// Whitespace.
	Whitespace

	// Error is emitted for any single code point the scanner could not
	// classify. It is the only category a scanner is allowed to fall back to
	// instead of aborting (totality, spec §4.2).
	Error
)

var categoryNames = map[Category]string{
	Text:                "Text",
	KeywordPlain:        "Keyword",
	KeywordConstant:     "Keyword.Constant",
	KeywordDeclaration:  "Keyword.Declaration",
	KeywordNamespace:    "Keyword.Namespace",
	KeywordType:         "Keyword.Type",
	KeywordReserved:     "Keyword.Reserved",
	Name:                "Name",
	NameFunction:        "Name.Function",
	NameClass:           "Name.Class",
	NameDecorator:       "Name.Decorator",
	NameBuiltin:         "Name.Builtin",
	NameVariable:        "Name.Variable",
	NameAttribute:       "Name.Attribute",
	NameTag:             "Name.Tag",
	NameNamespace:       "Name.Namespace",
	String:              "Literal.String",
	StringSingle:        "Literal.String.Single",
	StringDouble:        "Literal.String.Double",
	StringTriple:        "Literal.String.Triple",
	StringRaw:           "Literal.String.Raw",
	StringInterpolated:  "Literal.String.Interpolated",
	StringEscape:        "Literal.String.Escape",
	StringInterpol:      "Literal.String.Interpol",
	NumberInteger:       "Literal.Number.Integer",
	NumberFloat:         "Literal.Number.Float",
	NumberHex:           "Literal.Number.Hex",
	NumberOctal:         "Literal.Number.Octal",
	NumberBinary:        "Literal.Number.Binary",
	NumberScientific:    "Literal.Number.Scientific",
	LiteralBoolean:      "Literal.Boolean",
	CommentSingle:       "Comment.Single",
	CommentMultiline:    "Comment.Multiline",
	CommentDoc:          "Comment.Doc",
	OperatorSymbolic:    "Operator",
	OperatorWord:        "Operator.Word",
	Punctuation:         "Punctuation",
	Whitespace:          "Whitespace",
	Error:               "Error",
}

// String returns the category's canonical dotted name, e.g. "Keyword.Declaration".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// IsWhitespace reports whether c is the Whitespace category.
func (c Category) IsWhitespace() bool {
	return c == Whitespace
}

// IsError reports whether c is the Error category.
func (c Category) IsError() bool {
	return c == Error
}

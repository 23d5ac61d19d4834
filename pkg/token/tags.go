package token

// ClassStyle selects which of the two HTML class-naming tables a formatter
// draws from (spec §4.4 / §6).
type ClassStyle int

const (
	// Semantic draws class names from the long tag table, e.g. "syntax-keyword".
	Semantic ClassStyle = iota
	// Compatibility draws class names from the short tag table, e.g. "k",
	// matching the de facto convention used by existing color themes.
	Compatibility
)

// shortTag is the Pygments-style abbreviated tag used by the HTML
// "compatibility" class style.
var shortTag = map[Category]string{
	Text:               "",
	KeywordPlain:       "k",
	KeywordConstant:    "kc",
	KeywordDeclaration: "kd",
	KeywordNamespace:   "kn",
	KeywordType:        "kt",
	KeywordReserved:    "kr",
	Name:               "n",
	NameFunction:       "nf",
	NameClass:          "nc",
	NameDecorator:      "nd",
	NameBuiltin:        "nb",
	NameVariable:       "nv",
	NameAttribute:      "na",
	NameTag:            "nt",
	NameNamespace:      "nn",
	String:             "s",
	StringSingle:       "s1",
	StringDouble:       "s2",
	StringTriple:       "st",
	StringRaw:          "sr",
	StringInterpolated: "si",
	StringEscape:       "se",
	StringInterpol:     "si",
	NumberInteger:      "mi",
	NumberFloat:        "mf",
	NumberHex:          "mh",
	NumberOctal:        "mo",
	NumberBinary:       "mb",
	NumberScientific:   "ms",
	LiteralBoolean:     "kc",
	CommentSingle:      "c1",
	CommentMultiline:   "cm",
	CommentDoc:         "cd",
	OperatorSymbolic:   "o",
	OperatorWord:       "ow",
	Punctuation:        "p",
	Whitespace:         "w",
	Error:              "err",
}

// longTag is the human-readable, namespaced tag used by the HTML "semantic"
// class style.
var longTag = map[Category]string{
	Text:               "syntax-text",
	KeywordPlain:       "syntax-keyword",
	KeywordConstant:    "syntax-keyword-constant",
	KeywordDeclaration: "syntax-keyword-declaration",
	KeywordNamespace:   "syntax-keyword-namespace",
	KeywordType:        "syntax-keyword-type",
	KeywordReserved:    "syntax-keyword-reserved",
	Name:               "syntax-name",
	NameFunction:       "syntax-function",
	NameClass:          "syntax-class",
	NameDecorator:      "syntax-decorator",
	NameBuiltin:        "syntax-builtin",
	NameVariable:       "syntax-variable",
	NameAttribute:      "syntax-attribute",
	NameTag:            "syntax-tag",
	NameNamespace:      "syntax-namespace",
	String:             "syntax-string",
	StringSingle:       "syntax-string-single",
	StringDouble:       "syntax-string-double",
	StringTriple:       "syntax-string-triple",
	StringRaw:          "syntax-string-raw",
	StringInterpolated: "syntax-string-interpolated",
	StringEscape:       "syntax-string-escape",
	StringInterpol:     "syntax-string-interpol",
	NumberInteger:      "syntax-number-integer",
	NumberFloat:        "syntax-number-float",
	NumberHex:          "syntax-number-hex",
	NumberOctal:        "syntax-number-octal",
	NumberBinary:       "syntax-number-binary",
	NumberScientific:   "syntax-number-scientific",
	LiteralBoolean:     "syntax-boolean",
	CommentSingle:      "syntax-comment-single",
	CommentMultiline:   "syntax-comment-multiline",
	CommentDoc:         "syntax-comment-doc",
	OperatorSymbolic:   "syntax-operator",
	OperatorWord:       "syntax-operator-word",
	Punctuation:        "syntax-punctuation",
	Whitespace:         "syntax-whitespace",
	Error:              "syntax-error",
}

// ShortTag returns the compatibility-style tag for c, or "" if c is unknown.
func ShortTag(c Category) string {
	return shortTag[c]
}

// LongTag returns the semantic-style tag for c, or "" if c is unknown.
func LongTag(c Category) string {
	return longTag[c]
}

// Tag returns the class name for c under the given style.
func Tag(c Category, style ClassStyle) string {
	if style == Compatibility {
		return ShortTag(c)
	}
	return LongTag(c)
}

// DefaultContainerClass returns the conventional default container class for
// a class style: "rosettes" for semantic, "highlight" for compatibility.
func DefaultContainerClass(style ClassStyle) string {
	if style == Compatibility {
		return "highlight"
	}
	return "rosettes"
}

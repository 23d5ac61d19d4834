package token

// Role is the semantic grouping consumed by color palettes: many distinct
// categories (every string variant, say) share one role, which is what lets
// categories grow without every theme needing to be re-tuned.
type Role int

const (
	RoleText Role = iota
	RoleKeyword
	RoleKeywordConstant
	RoleNamespace
	RoleType
	RoleName
	RoleFunction
	RoleClass
	RoleDecorator
	RoleBuiltin
	RoleVariable
	RoleAttribute
	RoleTag
	RoleString
	RoleEscape
	RoleInterpolation
	RoleNumber
	RoleBoolean
	RoleComment
	RoleDoc
	RoleOperator
	RolePunctuation
	RoleWhitespace
	RoleError
)

var role = map[Category]Role{
	Text:               RoleText,
	KeywordPlain:       RoleKeyword,
	KeywordConstant:    RoleKeywordConstant,
	KeywordDeclaration: RoleKeyword,
	KeywordNamespace:   RoleNamespace,
	KeywordType:        RoleType,
	KeywordReserved:    RoleKeyword,
	Name:               RoleName,
	NameFunction:       RoleFunction,
	NameClass:          RoleClass,
	NameDecorator:      RoleDecorator,
	NameBuiltin:        RoleBuiltin,
	NameVariable:       RoleVariable,
	NameAttribute:      RoleAttribute,
	NameTag:            RoleTag,
	NameNamespace:      RoleNamespace,
	String:             RoleString,
	StringSingle:       RoleString,
	StringDouble:       RoleString,
	StringTriple:       RoleString,
	StringRaw:          RoleString,
	StringInterpolated: RoleString,
	StringEscape:       RoleEscape,
	StringInterpol:     RoleInterpolation,
	NumberInteger:      RoleNumber,
	NumberFloat:        RoleNumber,
	NumberHex:          RoleNumber,
	NumberOctal:        RoleNumber,
	NumberBinary:       RoleNumber,
	NumberScientific:   RoleNumber,
	LiteralBoolean:     RoleBoolean,
	CommentSingle:      RoleComment,
	CommentMultiline:   RoleComment,
	CommentDoc:         RoleDoc,
	OperatorSymbolic:   RoleOperator,
	OperatorWord:       RoleOperator,
	Punctuation:        RolePunctuation,
	Whitespace:         RoleWhitespace,
	Error:              RoleError,
}

// RoleOf returns the semantic role for c. Every category in the taxonomy has
// an entry; an unknown category maps to RoleText.
func RoleOf(c Category) Role {
	if r, ok := role[c]; ok {
		return r
	}
	return RoleText
}

var roleNames = map[Role]string{
	RoleText:            "Text",
	RoleKeyword:         "Keyword",
	RoleKeywordConstant: "KeywordConstant",
	RoleNamespace:       "Namespace",
	RoleType:            "Type",
	RoleName:            "Name",
	RoleFunction:        "Function",
	RoleClass:           "Class",
	RoleDecorator:       "Decorator",
	RoleBuiltin:         "Builtin",
	RoleVariable:        "Variable",
	RoleAttribute:       "Attribute",
	RoleTag:             "Tag",
	RoleString:          "String",
	RoleEscape:          "Escape",
	RoleInterpolation:   "Interpolation",
	RoleNumber:          "Number",
	RoleBoolean:         "Boolean",
	RoleComment:         "Comment",
	RoleDoc:             "Doc",
	RoleOperator:        "Operator",
	RolePunctuation:     "Punctuation",
	RoleWhitespace:      "Whitespace",
	RoleError:           "Error",
}

// String returns the role's name, e.g. "Keyword".
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

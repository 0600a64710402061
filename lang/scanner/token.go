// File: scanner/token.go
package scanner

import "strconv"

// Kind identifies the category of a lexical token.
type Kind int

// Token kinds
const (
	// KindEOF is never produced by ScanTokens; it is the sentinel value
	// consumers use past the end of a token list. The zero Token is an
	// EOF token.
	KindEOF Kind = iota

	// Single-character punctuation
	KindOpenParen  // (
	KindCloseParen // )
	KindOpenBrace  // {
	KindCloseBrace // }
	KindComma      // ,
	KindDot        // .
	KindMinus      // -
	KindPlus       // +
	KindSemicolon  // ;
	KindSlash      // /
	KindStar       // *

	// One- or two-character operators
	KindBang         // !
	KindBangEqual    // !=
	KindEqual        // =
	KindEqualEqual   // ==
	KindGreater      // >
	KindGreaterEqual // >=
	KindLess         // <
	KindLessEqual    // <=

	// Literals and identifiers
	KindIdentifier
	KindString
	KindNumber

	// Reserved words
	KindKeyword
)

var kindNames = [...]string{
	KindEOF:          "eof",
	KindOpenParen:    "(",
	KindCloseParen:   ")",
	KindOpenBrace:    "{",
	KindCloseBrace:   "}",
	KindComma:        ",",
	KindDot:          ".",
	KindMinus:        "-",
	KindPlus:         "+",
	KindSemicolon:    ";",
	KindSlash:        "/",
	KindStar:         "*",
	KindBang:         "!",
	KindBangEqual:    "!=",
	KindEqual:        "=",
	KindEqualEqual:   "==",
	KindGreater:      ">",
	KindGreaterEqual: ">=",
	KindLess:         "<",
	KindLessEqual:    "<=",
	KindIdentifier:   "identifier",
	KindString:       "string",
	KindNumber:       "number",
	KindKeyword:      "keyword",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Keyword enumerates the language's reserved words.
type Keyword int

// Keywords
const (
	KeywordAnd Keyword = iota
	KeywordClass
	KeywordElse
	KeywordFalse
	KeywordFun
	KeywordFor
	KeywordIf
	KeywordNil
	KeywordOr
	KeywordPrint
	KeywordReturn
	KeywordSuper
	KeywordThis
	KeywordTrue
	KeywordVar
	KeywordWhile
)

// Keywords maps reserved spellings to keyword values. An identifier-shaped
// lexeme whose spelling is in this map is always classified as the keyword,
// never as an identifier.
var Keywords = map[string]Keyword{
	"and":    KeywordAnd,
	"class":  KeywordClass,
	"else":   KeywordElse,
	"false":  KeywordFalse,
	"fun":    KeywordFun,
	"for":    KeywordFor,
	"if":     KeywordIf,
	"nil":    KeywordNil,
	"or":     KeywordOr,
	"print":  KeywordPrint,
	"return": KeywordReturn,
	"super":  KeywordSuper,
	"this":   KeywordThis,
	"true":   KeywordTrue,
	"var":    KeywordVar,
	"while":  KeywordWhile,
}

var keywordNames = [...]string{
	KeywordAnd:    "and",
	KeywordClass:  "class",
	KeywordElse:   "else",
	KeywordFalse:  "false",
	KeywordFun:    "fun",
	KeywordFor:    "for",
	KeywordIf:     "if",
	KeywordNil:    "nil",
	KeywordOr:     "or",
	KeywordPrint:  "print",
	KeywordReturn: "return",
	KeywordSuper:  "super",
	KeywordThis:   "this",
	KeywordTrue:   "true",
	KeywordVar:    "var",
	KeywordWhile:  "while",
}

// String returns the keyword's source spelling.
func (k Keyword) String() string {
	if k >= 0 && int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "keyword(" + strconv.Itoa(int(k)) + ")"
}

// Position locates a token in the source text: the [Start, End) character
// offsets of its lexeme and the 1-based line of its first character.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Line  int `json:"line"`
}

// Token is a classified lexeme plus its source position. Payload fields are
// populated according to Kind: Text holds an identifier's name or a string
// literal's contents (copied out of the source, verbatim, quotes excluded),
// Number holds a number literal's parsed value, and Keyword holds the
// reserved word for KindKeyword tokens.
type Token struct {
	Kind     Kind     `json:"kind"`
	Text     string   `json:"text,omitempty"`
	Number   float64  `json:"number,omitempty"`
	Keyword  Keyword  `json:"keyword,omitempty"`
	Position Position `json:"position"`
}

// String renders the token the way it would appear in source.
func (t Token) String() string {
	switch t.Kind {
	case KindIdentifier:
		return t.Text
	case KindString:
		return strconv.Quote(t.Text)
	case KindNumber:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case KindKeyword:
		return t.Keyword.String()
	default:
		return t.Kind.String()
	}
}

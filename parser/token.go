package parser

import "fmt"

// TokenType enumerates the lexical categories of the language: a handful
// of valued tags (Number, Id, String, Char) and a larger set of nullary
// tags recognized by value alone.
type TokenType int

const (
	tokenEOF TokenType = iota
	tokenIllegal

	tokenNumber
	tokenID
	tokenString
	tokenChar

	tokenClass
	tokenReturn
	tokenIf
	tokenElse
	tokenDef
	tokenNewline
	tokenPrint
	tokenIndent
	tokenDedent
	tokenAnd
	tokenOr
	tokenNot
	tokenEq
	tokenNotEq
	tokenLessOrEq
	tokenGreaterOrEq
	tokenNone
	tokenTrue
	tokenFalse
)

func (tt TokenType) String() string {
	switch tt {
	case tokenEOF:
		return "Eof"
	case tokenIllegal:
		return "illegal"
	case tokenNumber:
		return "Number"
	case tokenID:
		return "Id"
	case tokenString:
		return "String"
	case tokenChar:
		return "Char"
	case tokenClass:
		return "Class"
	case tokenReturn:
		return "Return"
	case tokenIf:
		return "If"
	case tokenElse:
		return "Else"
	case tokenDef:
		return "Def"
	case tokenNewline:
		return "Newline"
	case tokenPrint:
		return "Print"
	case tokenIndent:
		return "Indent"
	case tokenDedent:
		return "Dedent"
	case tokenAnd:
		return "And"
	case tokenOr:
		return "Or"
	case tokenNot:
		return "Not"
	case tokenEq:
		return "Eq"
	case tokenNotEq:
		return "NotEq"
	case tokenLessOrEq:
		return "LessOrEq"
	case tokenGreaterOrEq:
		return "GreaterOrEq"
	case tokenNone:
		return "None"
	case tokenTrue:
		return "True"
	case tokenFalse:
		return "False"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit. Only the field matching Type is
// meaningful: Number for tokenNumber, ID for tokenID, Str for
// tokenString, Ch for tokenChar. Nullary tags carry none of them.
type Token struct {
	Type   TokenType
	Number int64
	ID     string
	Str    string
	Ch     byte
	Line   int
}

// Equal compares tag and, for valued tags, the carried payload — it
// ignores Line, matching the value-equality contract of the source
// language's token type.
func (t Token) Equal(other Token) bool {
	if t.Type != other.Type {
		return false
	}
	switch t.Type {
	case tokenNumber:
		return t.Number == other.Number
	case tokenID:
		return t.ID == other.ID
	case tokenString:
		return t.Str == other.Str
	case tokenChar:
		return t.Ch == other.Ch
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Type {
	case tokenNumber:
		return fmt.Sprintf("Number{%d}", t.Number)
	case tokenID:
		return fmt.Sprintf("Id{%s}", t.ID)
	case tokenString:
		return fmt.Sprintf("String{%s}", t.Str)
	case tokenChar:
		return fmt.Sprintf("Char{%c}", t.Ch)
	default:
		return t.Type.String()
	}
}

var keywords = map[string]TokenType{
	"class":  tokenClass,
	"return": tokenReturn,
	"if":     tokenIf,
	"else":   tokenElse,
	"def":    tokenDef,
	"print":  tokenPrint,
	"and":    tokenAnd,
	"or":     tokenOr,
	"not":    tokenNot,
	"None":   tokenNone,
	"True":   tokenTrue,
	"False":  tokenFalse,
}

package parser

import (
	"io"

	"github.com/mython-lang/mython/ast"
	"github.com/mython-lang/mython/runtime"
)

// parser is a recursive-descent builder over the lexer's token stream. It
// resolves class references (NewInstance targets, parent classes) as it
// goes, which requires class definitions to appear before their first use
// — the same single-pass discipline the source language's own compiler
// follows.
type parser struct {
	lx      *lexer
	classes map[string]*runtime.Class
}

// Parse reads a complete program from r and returns its top-level AST.
func Parse(r io.Reader) (ast.Node, error) {
	lx, err := newLexer(r)
	if err != nil {
		return nil, err
	}
	p := &parser{lx: lx, classes: make(map[string]*runtime.Class)}

	var stmts []ast.Node
	for p.cur().Type != tokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Compound{Statements: stmts}, nil
}

func (p *parser) cur() Token { return p.lx.CurrentToken() }

func (p *parser) advance() error {
	_, err := p.lx.NextToken()
	return err
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return newSyntaxError(p.cur().Line, format, args...)
}

// expect fails unless the current token has type tt; it does not advance.
func (p *parser) expect(tt TokenType) (Token, error) {
	if p.cur().Type != tt {
		return Token{}, p.errorf("expected %s but got %s", tt, p.cur())
	}
	return p.cur(), nil
}

// expectAdvance is expect followed by advance, for the common case where
// the matched token carries no information the caller needs.
func (p *parser) expectAdvance(tt TokenType) (Token, error) {
	tok, err := p.expect(tt)
	if err != nil {
		return Token{}, err
	}
	return tok, p.advance()
}

func (p *parser) curIsChar(c byte) bool {
	return p.cur().Type == tokenChar && p.cur().Ch == c
}

func (p *parser) expectChar(c byte) error {
	if !p.curIsChar(c) {
		return p.errorf("expected %q but got %s", c, p.cur())
	}
	return p.advance()
}

// parseStatement dispatches on the current token's leading keyword; the
// fallback handles both assignment and bare expression statements, since
// both start with an expression and are disambiguated only after parsing
// it (see parseAssignmentOrExprStmt).
func (p *parser) parseStatement() (ast.Node, error) {
	switch p.cur().Type {
	case tokenClass:
		return p.parseClassDef()
	case tokenIf:
		return p.parseIfElse()
	case tokenPrint:
		return p.parsePrintStmt()
	case tokenReturn:
		return p.parseReturnStmt()
	default:
		return p.parseAssignmentOrExprStmt()
	}
}

// parseSuite consumes "Newline Indent statement+ Dedent".
func (p *parser) parseSuite() (ast.Node, error) {
	if _, err := p.expectAdvance(tokenNewline); err != nil {
		return nil, err
	}
	if _, err := p.expectAdvance(tokenIndent); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.cur().Type != tokenDedent {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expectAdvance(tokenDedent); err != nil {
		return nil, err
	}
	return &ast.Compound{Statements: stmts}, nil
}

func (p *parser) parseClassDef() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume Class
		return nil, err
	}
	nameTok, err := p.expect(tokenID)
	if err != nil {
		return nil, err
	}
	name := nameTok.ID
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parent *runtime.Class
	if p.curIsChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parentTok, err := p.expect(tokenID)
		if err != nil {
			return nil, err
		}
		pc, ok := p.classes[parentTok.ID]
		if !ok {
			return nil, p.errorf("class %s inherits from undefined class %s", name, parentTok.ID)
		}
		parent = pc
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if _, err := p.expectAdvance(tokenNewline); err != nil {
		return nil, err
	}
	if _, err := p.expectAdvance(tokenIndent); err != nil {
		return nil, err
	}

	var methods []*runtime.Method
	for p.cur().Type == tokenDef {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if _, err := p.expectAdvance(tokenDedent); err != nil {
		return nil, err
	}

	class, err := runtime.NewClass(name, methods, parent)
	if err != nil {
		return nil, err
	}
	p.classes[name] = class
	return &ast.ClassDefinition{Class: class}, nil
}

func (p *parser) parseMethodDef() (*runtime.Method, error) {
	if err := p.advance(); err != nil { // consume Def
		return nil, err
	}
	nameTok, err := p.expect(tokenID)
	if err != nil {
		return nil, err
	}
	name := nameTok.ID
	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.curIsChar(')') {
		for {
			pidTok, err := p.expect(tokenID)
			if err != nil {
				return nil, err
			}
			params = append(params, pidTok.ID)
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.curIsChar(',') {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	// self is bound by ClassInstance.Call rather than passed as an argument,
	// so it is not counted among the method's formal parameters.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	return &runtime.Method{Name: name, Params: params, Body: body}, nil
}

func (p *parser) parseIfElse() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume If
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	var elseBody ast.Node
	if p.cur().Type == tokenElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfElse{Cond: cond, Then: thenBody, Else: elseBody}, nil
}

func (p *parser) parsePrintStmt() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume Print
		return nil, err
	}
	var args []ast.Node
	if p.cur().Type != tokenNewline {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.curIsChar(',') {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if _, err := p.expectAdvance(tokenNewline); err != nil {
		return nil, err
	}
	return &ast.Print{Args: args}, nil
}

func (p *parser) parseReturnStmt() (ast.Node, error) {
	if err := p.advance(); err != nil { // consume Return
		return nil, err
	}
	var expr ast.Node
	if p.cur().Type != tokenNewline {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		expr = e
	} else {
		expr = &ast.Literal{Value: runtime.None}
	}
	if _, err := p.expectAdvance(tokenNewline); err != nil {
		return nil, err
	}
	return &ast.Return{Expr: expr}, nil
}

// parseAssignmentOrExprStmt parses a full expression and then checks
// whether it's immediately followed by '=': if so, the expression must
// reduce to a dotted-name (VariableValue), and the statement is an
// Assignment or FieldAssignment; otherwise it's a bare expression
// statement, evaluated for side effects with its value discarded.
func (p *parser) parseAssignmentOrExprStmt() (ast.Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.curIsChar('=') {
		vv, ok := expr.(*ast.VariableValue)
		if !ok {
			return nil, p.errorf("left-hand side of assignment must be a name")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectAdvance(tokenNewline); err != nil {
			return nil, err
		}
		if len(vv.Names) == 1 {
			return &ast.Assignment{Name: vv.Names[0], Rhs: rhs}, nil
		}
		object := &ast.VariableValue{Names: vv.Names[:len(vv.Names)-1]}
		field := vv.Names[len(vv.Names)-1]
		return &ast.FieldAssignment{Object: object, Field: field, Rhs: rhs}, nil
	}

	if _, err := p.expectAdvance(tokenNewline); err != nil {
		return nil, err
	}
	return expr, nil
}

// The expression grammar is a standard precedence-climbing ladder:
// or_expr -> and_expr -> not_expr -> comparison -> additive ->
// multiplicative -> unary -> postfix -> primary.

func (p *parser) parseExpr() (ast.Node, error) { return p.parseOr() }

func (p *parser) parseOr() (ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == tokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Or{Lhs: left, Rhs: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == tokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.And{Lhs: left, Rhs: right}
	}
	return left, nil
}

func (p *parser) parseNot() (ast.Node, error) {
	if p.cur().Type == tokenNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Arg: arg}, nil
	}
	return p.parseComparison()
}

func comparatorFor(tok Token) (ast.Comparator, bool) {
	switch {
	case tok.Type == tokenEq:
		return runtime.Equal, true
	case tok.Type == tokenNotEq:
		return runtime.NotEqual, true
	case tok.Type == tokenLessOrEq:
		return runtime.LessOrEqual, true
	case tok.Type == tokenGreaterOrEq:
		return runtime.GreaterOrEqual, true
	case tok.Type == tokenChar && tok.Ch == '<':
		return runtime.Less, true
	case tok.Type == tokenChar && tok.Ch == '>':
		return runtime.Greater, true
	default:
		return nil, false
	}
}

func (p *parser) parseComparison() (ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		cmp, ok := comparatorFor(p.cur())
		if !ok {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Comparison{Cmp: cmp, Lhs: left, Rhs: right}
	}
}

func (p *parser) parseAdditive() (ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curIsChar('+') || p.curIsChar('-') {
		op := p.cur().Ch
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = &ast.Add{Lhs: left, Rhs: right}
		} else {
			left = &ast.Sub{Lhs: left, Rhs: right}
		}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curIsChar('*') || p.curIsChar('/') {
		op := p.cur().Ch
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = &ast.Mult{Lhs: left, Rhs: right}
		} else {
			left = &ast.Div{Lhs: left, Rhs: right}
		}
	}
	return left, nil
}

// parseUnary handles the sole prefix operator, '-'. The lexer only ever
// produces unsigned Number tokens, so negation is purely syntactic: it
// lowers to 0 - operand.
func (p *parser) parseUnary() (ast.Node, error) {
	if p.curIsChar('-') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Sub{Lhs: &ast.Literal{Value: runtime.NumberHandle(0)}, Rhs: operand}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (ast.Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.curIsChar('.') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		idTok, err := p.expect(tokenID)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curIsChar('(') {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.MethodCall{Object: expr, Method: idTok.ID, Args: args}
			continue
		}
		vv, ok := expr.(*ast.VariableValue)
		if !ok {
			return nil, p.errorf("cannot access field %s of a non-variable expression", idTok.ID)
		}
		names := append(append([]string{}, vv.Names...), idTok.ID)
		expr = &ast.VariableValue{Names: names}
	}
	return expr, nil
}

// parseCallArgs expects the current token to be '(' and consumes through
// the matching ')'.
func (p *parser) parseCallArgs() ([]ast.Node, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []ast.Node
	if !p.curIsChar(')') {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.curIsChar(',') {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parsePrimary() (ast.Node, error) {
	tok := p.cur()
	switch tok.Type {
	case tokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: runtime.NumberHandle(tok.Number)}, nil
	case tokenString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: runtime.StringHandle(tok.Str)}, nil
	case tokenNone:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: runtime.None}, nil
	case tokenTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: runtime.BoolHandle(true)}, nil
	case tokenFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: runtime.BoolHandle(false)}, nil
	case tokenID:
		name := tok.ID
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curIsChar('(') {
			if name == "str" {
				args, err := p.parseCallArgs()
				if err != nil {
					return nil, err
				}
				if len(args) != 1 {
					return nil, p.errorf("str() takes exactly one argument")
				}
				return &ast.Stringify{Arg: args[0]}, nil
			}
			class, ok := p.classes[name]
			if !ok {
				return nil, p.errorf("%s is not a known class", name)
			}
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &ast.NewInstance{Class: class, Args: args}, nil
		}
		return &ast.VariableValue{Names: []string{name}}, nil
	case tokenChar:
		if tok.Ch == '(' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, p.errorf("unexpected token %s", tok)
}

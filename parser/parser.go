package parser

import (
	"fmt"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/logoparse/ast"
	"github.com/pontaoski/logoparse/errors"
	"github.com/pontaoski/logoparse/lexer"
	"github.com/pontaoski/logoparse/types"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/logoparse", "parser")

const endKeyword = "END"

// Parser builds an AST from a token slice in a single left-to-right pass.
// Besides the cursor it carries the number of open [ and TO blocks and the
// procedures defined so far.
type Parser struct {
	tokens     *cursor
	depth      int
	procedures map[string]ast.BinaryExpr
}

func New(tokens []types.Token) *Parser {
	return &Parser{
		tokens:     newCursor(tokens),
		procedures: map[string]ast.BinaryExpr{},
	}
}

// Depth is the number of blocks opened and not yet closed.
func (p *Parser) Depth() int {
	return p.depth
}

func (p *Parser) Procedures() map[string]ast.BinaryExpr {
	return p.procedures
}

// Parse parses every token and checks that all blocks were closed.
func Parse(tokens []types.Token) (ast.Program, error) {
	p := New(tokens)
	body := ast.Body{}

	for {
		statements, err := p.ParseProgram()
		if err != nil {
			return ast.Program{}, tracerr.Wrap(err)
		}
		body = append(body, statements...)

		// A top-level ] or END closing a top-level [ ends the pass early.
		if p.tokens.isOutOfBound() {
			break
		}
	}

	if p.depth != 0 {
		return ast.Program{}, tracerr.Wrap(errors.UnterminatedBlock{
			Depth:    p.depth,
			Location: p.tokens.last(),
		})
	}

	return ast.Program{Body: body, Procedures: p.procedures}, nil
}

func ParseFile(path string) (ast.Program, error) {
	tokens, err := lexer.TokenizeFile(path)
	if err != nil {
		return ast.Program{}, err
	}
	plog.Debugf("%s: %d token(s)", path, len(tokens))

	return Parse(tokens)
}

// ParseProgram parses statements until a block closer or the end of input.
// Each statement must be the last thing on its line.
func (p *Parser) ParseProgram() (ast.Body, error) {
	body := ast.Body{}

	for {
		node, err := p.parseCommand()
		if err != nil {
			return nil, err
		}

		switch node.(type) {
		case ast.Empty:
			return body, nil
		case ast.Newline:
			continue
		}
		body = append(body, node)

		if tok, ok := p.tokens.peek(); ok && !tok.IsNewline() && !p.atBlockClose() {
			return nil, errors.TrailingToken{
				Token:    tok.Text,
				Location: tok.Location,
			}
		}
	}
}

func (p *Parser) atBlockClose() bool {
	return p.tokens.nextIs(types.CloseBracket) || p.tokens.nextIs(endKeyword)
}

func (p *Parser) parseCommand() (ast.Node, error) {
	tok, ok := p.tokens.next()
	if !ok {
		return ast.Empty{}, nil
	}

	if node, ok := ast.LookupQuery(tok.Text); ok {
		return node, nil
	}
	if op, ok := ast.LookupUnary(tok.Text); ok {
		return p.parseUnary(op, tok)
	}
	if op, ok := ast.LookupBinary(tok.Text); ok {
		switch op.Kind() {
		case ast.Conditional:
			return p.parseConditional(op, tok)
		case ast.Procedure:
			return p.parseTo(tok)
		}
		return p.parseBinary(op, tok)
	}

	switch tok.Text {
	case types.LiteralPrefix, types.VariablePrefix:
		return p.parseLeaf(tok)
	case types.OpenBracket:
		p.depth++
		return p.parseCommand()
	case types.CloseBracket, endKeyword:
		return p.closeBlock(tok)
	case types.Comment:
		for {
			skipped, ok := p.tokens.next()
			if !ok {
				return ast.Empty{}, nil
			}
			if skipped.IsNewline() {
				return p.parseCommand()
			}
		}
	case types.Newline:
		return ast.Newline{}, nil
	}

	return p.parseCall(tok)
}

func (p *Parser) closeBlock(tok types.Token) (ast.Node, error) {
	if p.depth == 0 {
		return nil, errors.UnbalancedBlock{
			Token:    tok.Text,
			Location: tok.Location,
		}
	}
	p.depth--
	return ast.Empty{}, nil
}

func (p *Parser) parseLeaf(prefix types.Token) (ast.Node, error) {
	tok, ok := p.tokens.peek()
	if !ok || tok.IsNewline() {
		return nil, errors.MissingValue{
			Prefix:   prefix.Text,
			Location: prefix.Location,
		}
	}
	p.tokens.next()

	if prefix.Text == types.VariablePrefix {
		return ast.Variable(tok.Text), nil
	}
	return ast.Literal(tok.Text), nil
}

// parseOperand parses one sub-expression of cmd. A line end, block end or
// end of input where an expression belongs makes the operand missing.
func (p *Parser) parseOperand(cmd types.Token, operand string) (ast.Node, error) {
	node, err := p.parseCommand()
	if err != nil {
		return nil, errors.MalformedOperand{
			Command:  cmd.Text,
			Operand:  operand,
			Location: cmd.Location,
			Err:      err,
		}
	}

	switch node.(type) {
	case ast.Empty, ast.Newline:
		return nil, errors.MalformedOperand{
			Command:  cmd.Text,
			Operand:  operand,
			Location: cmd.Location,
		}
	}
	return node, nil
}

func (p *Parser) parseUnary(op ast.UnaryOp, tok types.Token) (ast.Node, error) {
	child, err := p.parseOperand(tok, "operand")
	if err != nil {
		return nil, err
	}

	return ast.UnaryExpr{Op: op, Child: child}, nil
}

func (p *Parser) parseBinary(op ast.BinaryOp, tok types.Token) (ast.Node, error) {
	lhs, err := p.parseOperand(tok, "first operand")
	if err != nil {
		return nil, err
	}
	rhs, err := p.parseOperand(tok, "second operand")
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{Op: op, LHS: lhs, RHS: rhs}, nil
}

// parseConditional handles IF and WHILE: a condition followed by a block
// that runs until the ] or END closing it.
func (p *Parser) parseConditional(op ast.BinaryOp, tok types.Token) (ast.Node, error) {
	cond, err := p.parseOperand(tok, "condition")
	if err != nil {
		return nil, err
	}

	body, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{Op: op, LHS: cond, RHS: body}, nil
}

// parseList collects the arguments of a call or the parameters of a
// definition. It stops once a newline is consumed or is next in line, and
// before a block closer or the end of input.
func (p *Parser) parseList(cmd types.Token, item string) (ast.Body, error) {
	list := ast.Body{}

	for {
		if p.tokens.isOutOfBound() || p.atBlockClose() {
			return list, nil
		}

		node, err := p.parseCommand()
		if err != nil {
			return nil, errors.MalformedOperand{
				Command:  cmd.Text,
				Operand:  fmt.Sprintf("%s %d", item, len(list)+1),
				Location: cmd.Location,
				Err:      err,
			}
		}

		switch node.(type) {
		case ast.Newline, ast.Empty:
			return list, nil
		}
		list = append(list, node)

		if p.tokens.nextIs(types.Newline) {
			return list, nil
		}
	}
}

func (p *Parser) parseTo(tok types.Token) (ast.Node, error) {
	p.depth++

	name, ok := p.tokens.next()
	if !ok || name.IsNewline() {
		return nil, errors.MalformedOperand{
			Command:  tok.Text,
			Operand:  "procedure name",
			Location: tok.Location,
		}
	}

	def, err := p.parseDefinition(tok, name)
	if err != nil {
		return nil, err
	}

	if _, ok := p.procedures[name.Text]; ok {
		plog.Warningf("%s: procedure %s redefined", name.Location.From, name.Text)
	}
	p.procedures[name.Text] = def
	plog.Debugf("%s: registered procedure %s with %d parameter(s)", name.Location.From, name.Text, len(def.LHS.(ast.Body)))

	return def, nil
}

// parseDefinition is called past the procedure name. The definition is
// registered by the caller, so the body cannot refer to the procedure itself.
func (p *Parser) parseDefinition(tok, name types.Token) (ast.BinaryExpr, error) {
	cmd := tok
	cmd.Text = tok.Text + " " + name.Text

	formals, err := p.parseList(cmd, "parameter")
	if err != nil {
		return ast.BinaryExpr{}, err
	}

	body, err := p.ParseProgram()
	if err != nil {
		return ast.BinaryExpr{}, err
	}

	return ast.BinaryExpr{
		Op:   ast.Func,
		Name: name.Text,
		LHS:  formals,
		RHS:  body,
	}, nil
}

func (p *Parser) parseCall(tok types.Token) (ast.Node, error) {
	if _, ok := p.procedures[tok.Text]; !ok {
		return nil, errors.UnknownCommand{
			Name:     tok.Text,
			Location: tok.Location,
		}
	}

	args, err := p.parseList(tok, "argument")
	if err != nil {
		return nil, err
	}

	return ast.Caller{Name: tok.Text, Args: args}, nil
}

package cq

import "fmt"

// Parse reads a single conjunctive query from text. Grammar:
//
//	query := name "(" varlist? ")" " :- " atom ("," " " atom)*
//	atom  := name "(" varlist ")"
//	varlist := name ("," " " name)*
//
// head_vars ⊆ vars(body) is not checked here; that is an evaluator-entry
// concern (see rowexec), since a parser has no notion of "the body's
// variables" beyond syntax.
func Parse(text string) (*Query, error) {
	p := &parser{lex: newLexer(text)}
	q, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	if p.lex.pos != len(text) {
		return nil, ErrParse.New(fmt.Sprintf("unexpected trailing input at position %d", p.lex.pos))
	}
	return q, nil
}

type parser struct {
	lex *lexer
}

func (p *parser) parseQuery() (*Query, error) {
	head := p.lex.next()
	if head.typ != nameToken {
		return nil, ErrParse.New("expected a query head name")
	}
	if p.lex.next().typ != lparenToken {
		return nil, ErrParse.New("expected '(' after query head name")
	}
	headVars, err := p.parseVarListOptional()
	if err != nil {
		return nil, err
	}
	if p.lex.next().typ != rparenToken {
		return nil, ErrParse.New("expected ')' closing head variable list")
	}
	if !p.lex.expectLiteral(" :- ") {
		return nil, ErrParse.New("expected ' :- ' after query head")
	}

	first, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	body := []Atom{first}
	for p.lex.expectLiteral(", ") {
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		body = append(body, atom)
	}

	return &Query{Head: head.val, HeadVars: headVars, Body: body}, nil
}

func (p *parser) parseAtom() (Atom, error) {
	name := p.lex.next()
	if name.typ != nameToken {
		return Atom{}, ErrParse.New("expected an atom name")
	}
	if p.lex.next().typ != lparenToken {
		return Atom{}, ErrParse.New(fmt.Sprintf("expected '(' after atom name %q", name.val))
	}
	vars, err := p.parseVarList()
	if err != nil {
		return Atom{}, err
	}
	if p.lex.next().typ != rparenToken {
		return Atom{}, ErrParse.New(fmt.Sprintf("expected ')' closing atom %q", name.val))
	}
	return Atom{Name: name.val, Vars: vars}, nil
}

// parseVarListOptional parses a comma-separated variable list that may be
// empty (used for the query head, e.g. "q()").
func (p *parser) parseVarListOptional() ([]string, error) {
	if p.lex.peekByte(')') {
		return nil, nil
	}
	return p.parseVarList()
}

// parseVarList parses a non-empty comma-separated variable list (used for
// atom argument lists, which the grammar never allows to be empty).
func (p *parser) parseVarList() ([]string, error) {
	first := p.lex.next()
	if first.typ != nameToken {
		return nil, ErrParse.New("expected a variable name")
	}
	vars := []string{first.val}
	for p.lex.expectLiteral(", ") {
		tok := p.lex.next()
		if tok.typ != nameToken {
			return nil, ErrParse.New("expected a variable name after ','")
		}
		vars = append(vars, tok.val)
	}
	return vars, nil
}

package formula

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/symalg"
	"github.com/npillmayer/symalg/term"
)

// --- Grammar ---------------------------------------------------------------

// Formula    ::=  Expr [ '=' Expr ]
// Expr       ::=  Product { ('+' | '-') Product }
// Product    ::=  Unary { ('*' | '/') Unary }
// Unary      ::=  '-' Unary  |  Primary
// Primary    ::=  number
// Primary    ::=  constant                      // #pi
// Primary    ::=  ident                         // x, or i for the imaginary unit
// Primary    ::=  ident '[' Expr { ',' Expr } ']'
// Primary    ::=  ident '(' Expr ')'            // neg, inv, im
// Primary    ::=  '(' Expr ')'
//
// Binary operators are left-associative. Sums and products are flattened
// while building, i.e. a + b + c is a single sum with three addends.

// SyntaxError is an error in the textual representation of a formula.
type SyntaxError struct {
	Span symalg.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Span, e.Msg)
}

// Resolver looks up the term bound to a name. Parse substitutes a copy of
// the term for an identifier if the resolver knows it.
type Resolver func(name string) (term.Term, bool)

// Option configures a single call to Parse.
type Option func(*parser)

// WithResolver substitutes identifiers bound by r.
func WithResolver(r Resolver) Option {
	return func(p *parser) {
		p.resolve = r
	}
}

// WithConstant makes a constant available as #name, in addition to the
// pre-registered constants.
func WithConstant(c *term.Constant) Option {
	return func(p *parser) {
		p.constants[c.Name] = c
	}
}

// constants known to every reader
var constants = map[string]*term.Constant{
	"e":  term.Const("e", 2.7182819, 2.7182818),
	"pi": term.Const("pi", 3.1415927, 3.1415926),
}

// functions with a single argument
var functions = map[string]func(term.Term) term.Term{
	"neg": term.Negate,
	"inv": term.Reciprocal,
	"im":  term.Imaginary,
}

// Parse reads a formula. On malformed input it returns a *SyntaxError.
func Parse(input string, opts ...Option) (t term.Term, err error) {
	s, err := NewScanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{scan: s, constants: make(map[string]*term.Constant, len(constants))}
	for name, c := range constants {
		p.constants[name] = c
	}
	for _, opt := range opts {
		opt(p)
	}
	s.SetErrorHandler(func(e error) {
		if se, ok := e.(*SyntaxError); ok {
			panic(se)
		}
		var span symalg.Span
		if p.tok != nil {
			span = p.tok.Span()
		}
		panic(&SyntaxError{Span: span, Msg: e.Error()})
	})
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			tracer().Errorf("%q: %v", input, se)
			t, err = nil, se
		}
	}()
	p.next()
	t = p.formula()
	tracer().Debugf("%q ⇒ %s", input, t)
	return t, nil
}

// MustParse is like Parse but panics if the input cannot be read. It
// simplifies safe initialization of global variables holding formulas.
func MustParse(input string, opts ...Option) term.Term {
	t, err := Parse(input, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// ---------------------------------------------------------------------------

type parser struct {
	scan      *Scanner
	tok       symalg.Token // lookahead
	resolve   Resolver
	constants map[string]*term.Constant
}

func (p *parser) next() {
	p.tok = p.scan.NextToken()
}

func (p *parser) is(t symalg.TokType) bool {
	return p.tok.TokType() == t
}

func (p *parser) fail(format string, args ...interface{}) {
	panic(&SyntaxError{Span: p.tok.Span(), Msg: fmt.Sprintf(format, args...)})
}

func (p *parser) expect(t symalg.TokType) {
	if !p.is(t) {
		p.fail("expected %s, found %s", TokenName(t), p.found())
	}
	p.next()
}

func (p *parser) found() string {
	if p.is(symalg.EOF) {
		return TokenName(symalg.EOF)
	}
	return fmt.Sprintf("%q", p.tok.Lexeme())
}

func (p *parser) formula() term.Term {
	lhs := p.expr()
	if p.is('=') {
		p.next()
		rhs := p.expr()
		lhs = term.Equals(lhs, rhs)
	}
	if !p.is(symalg.EOF) {
		p.fail("unexpected %s", p.found())
	}
	return lhs
}

func (p *parser) expr() term.Term {
	addends := []term.Term{p.product()}
	for p.is('+') || p.is('-') {
		minus := p.is('-')
		p.next()
		a := p.product()
		if minus {
			a = term.Negate(a)
		}
		addends = append(addends, a)
	}
	return term.SumOf(addends...)
}

func (p *parser) product() term.Term {
	factors := []term.Term{p.unary()}
	for p.is('*') || p.is('/') {
		div := p.is('/')
		p.next()
		f := p.unary()
		if div {
			f = term.Reciprocal(f)
		}
		factors = append(factors, f)
	}
	return term.ProductOf(factors...)
}

func (p *parser) unary() term.Term {
	if p.is('-') {
		p.next()
		return term.Negate(p.unary())
	}
	return p.primary()
}

func (p *parser) primary() term.Term {
	tok := p.tok
	switch tok.TokType() {
	case NUM:
		p.next()
		v, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil || math.IsInf(v, 0) {
			panic(&SyntaxError{Span: tok.Span(), Msg: fmt.Sprintf("malformed number %q", tok.Lexeme())})
		}
		return term.Lit(v)
	case CONST:
		p.next()
		name := tok.Lexeme()[1:]
		c, ok := p.constants[name]
		if !ok {
			panic(&SyntaxError{Span: tok.Span(), Msg: fmt.Sprintf("unknown constant #%s", name)})
		}
		return term.Clone(c)
	case IDENT:
		p.next()
		return p.identifier(tok)
	case '(':
		p.next()
		t := p.expr()
		p.expect(')')
		return t
	}
	p.fail("expected operand, found %s", p.found())
	return nil
}

func (p *parser) identifier(tok symalg.Token) term.Term {
	name := tok.Lexeme()
	if p.is('[') {
		p.next()
		index := []term.Term{p.expr()}
		for p.is(',') {
			p.next()
			index = append(index, p.expr())
		}
		p.expect(']')
		return term.IndexedVar(name, index...)
	}
	if p.is('(') {
		fn, ok := functions[name]
		if !ok {
			panic(&SyntaxError{Span: tok.Span(), Msg: fmt.Sprintf("unknown function %s", name)})
		}
		p.next()
		arg := p.expr()
		p.expect(')')
		return fn(arg)
	}
	if p.resolve != nil {
		if t, ok := p.resolve(name); ok {
			tracer().Debugf("substituting %s = %s", name, t)
			return term.Clone(t)
		}
	}
	if name == "i" {
		return term.Imaginary(term.Lit(1))
	}
	return term.Var(name)
}

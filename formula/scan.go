package formula

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/symalg"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types. Single-character literals use their character code as
// token type.
const (
	NUM   symalg.TokType = -2
	IDENT symalg.TokType = -3
	CONST symalg.TokType = -4
)

// The tokens representing literal one-char lexemes
var literals = []string{"+", "-", "*", "/", "=", "(", ")", "[", "]", ","}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

// compiledLexer creates the lexmachine DFA on first use.
func compiledLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[0-9]+(\.[0-9]+)?([eE][\+\-]?[0-9]+)?`), makeToken(NUM))
		lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(IDENT))
		lexer.Add([]byte(`\#([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(CONST))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(symalg.TokType(lit[0])))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id symalg.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// TokenName returns a readable name for a token type.
func TokenName(t symalg.TokType) string {
	switch t {
	case symalg.EOF:
		return "end of input"
	case NUM:
		return "number"
	case IDENT:
		return "identifier"
	case CONST:
		return "constant"
	}
	return fmt.Sprintf("'%c'", rune(t))
}

// ---------------------------------------------------------------------------

// Scanner splits formula text into tokens.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     uint64
}

// NewScanner creates a scanner for a given input.
func NewScanner(input string) (*Scanner, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, Error: logError, end: uint64(len(input))}, nil
}

// SetErrorHandler sets an error handler for the scanner. Illegal input is
// reported to the handler and skipped.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken returns the next token of the input. At the end of the input it
// returns a token of type symalg.EOF.
func (s *Scanner) NextToken() symalg.Token {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			fail := ui.FailTC
			if fail <= ui.StartTC {
				fail = ui.StartTC + 1
			}
			if fail > len(ui.Text) {
				fail = len(ui.Text)
			}
			s.Error(&SyntaxError{
				Span: symalg.Span{uint64(ui.StartTC), uint64(fail)},
				Msg:  fmt.Sprintf("illegal input %q", string(ui.Text[ui.StartTC:fail])),
			})
			s.scanner.TC = fail
		} else {
			s.Error(err)
			return token{kind: symalg.EOF, span: symalg.Span{s.end, s.end}}
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return token{kind: symalg.EOF, span: symalg.Span{s.end, s.end}}
	}
	t := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q", TokenName(symalg.TokType(t.Type)), t.Lexeme)
	return token{
		kind:   symalg.TokType(t.Type),
		lexeme: string(t.Lexeme),
		span:   symalg.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
	}
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

type token struct {
	kind   symalg.TokType
	lexeme string
	span   symalg.Span
}

func (t token) TokType() symalg.TokType {
	return t.kind
}

func (t token) Lexeme() string {
	return t.lexeme
}

func (t token) Span() symalg.Span {
	return t.span
}

package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/symalg/formula"
	"github.com/npillmayer/symalg/session"
	"github.com/npillmayer/symalg/simplify"
	"github.com/npillmayer/symalg/term"
)

const help = `:def name = formula   bind name to the normal form of formula
:tree formula         print formula as a tree
:vars formula         list the variables of formula
:stats formula        show which rules fired to simplify formula
:bindings             list the visible bindings
:push [name]          open a new scope
:pop                  close the current scope
:help                 show this text
:quit                 leave the session
formula               print the normal form of formula`

// Intp is our interpreter object.
type Intp struct {
	engine   *simplify.Engine
	scopes   *session.ScopeTree
	repl     *readline.Instance
	out      *Display
	last     term.Term
	maxDepth int // nesting limit for input formulas, 0 for none
}

// NewIntp creates an interpreter for interactive sessions.
func NewIntp(e *simplify.Engine) (*Intp, error) {
	repl, err := readline.New("symalg> ")
	if err != nil {
		return nil, err
	}
	intp := newIntp(e, display)
	intp.repl = repl
	return intp, nil
}

func newIntp(e *simplify.Engine, out *Display) *Intp {
	return &Intp{
		engine:   e,
		scopes:   session.NewScopeTree(),
		out:      out,
		maxDepth: maxDepth,
	}
}

// LoadInitFile evaluates a file of commands, one per line.
func (intp *Intp) LoadInitFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open init file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("%s:%d: %v", filename, lineno, err)
		}
	}
	return scanner.Err()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	intp.out.Info("Welcome to symalg, enter :help for a list of commands")
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			intp.out.Error(err)
			continue
		}
		if quit {
			break
		}
	}
	fmt.Println("Good bye!")
}

var errUsage = errors.New("usage")

// Eval executes a command or simplifies a formula, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		t, err := intp.simplify(line)
		if err != nil {
			return false, err
		}
		intp.out.Result(t)
		return false, nil
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Debugf("command %s %q", cmd, arg)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help":
		intp.out.Info("%s", help)
	case ":def":
		return false, intp.define(arg)
	case ":tree":
		f, err := intp.read(arg)
		if err != nil {
			return false, err
		}
		intp.out.Tree(f)
	case ":vars":
		f, err := intp.read(arg)
		if err != nil {
			return false, err
		}
		intp.out.Vars(term.Variables(f))
	case ":stats":
		f, err := intp.read(arg)
		if err != nil {
			return false, err
		}
		res, err := intp.engine.Run(f)
		if err != nil {
			return false, err
		}
		intp.out.Result(res.Term)
		intp.out.Stats(res)
	case ":bindings":
		intp.out.Bindings(intp.scopes.Current())
	case ":push":
		if arg == "" {
			arg = fmt.Sprintf("scope-%d", intp.depth()+1)
		}
		intp.scopes.PushNewScope(arg)
	case ":pop":
		sc := intp.scopes.PopScope()
		if sc == nil {
			return false, errors.New("cannot close the global scope")
		}
		if n := sc.Bindings().Size(); n > 0 {
			intp.out.Info("closed scope %s, dropped %d %s", sc.Name, n, plural(n, "binding"))
		}
	default:
		return false, fmt.Errorf("unknown command %s, enter :help for a list of commands", cmd)
	}
	return false, nil
}

// define binds a name to a simplified formula in the current scope.
func (intp *Intp) define(arg string) error {
	eq := strings.Index(arg, "=")
	if eq < 0 {
		return fmt.Errorf("%w: :def name = formula", errUsage)
	}
	name := strings.TrimSpace(arg[:eq])
	if !isIdentifier(name) {
		return fmt.Errorf("cannot bind %q: not an identifier", name)
	}
	t, err := intp.simplify(arg[eq+1:])
	if err != nil {
		return err
	}
	b, _ := intp.scopes.Current().Define(name, t)
	intp.out.Info("%s", b)
	return nil
}

// read parses a formula, substituting bound names. An empty input denotes
// the most recent result.
func (intp *Intp) read(input string) (term.Term, error) {
	if strings.TrimSpace(input) == "" {
		if intp.last == nil {
			return nil, fmt.Errorf("%w: formula expected", errUsage)
		}
		return intp.last, nil
	}
	return parse(input, intp.maxDepth, formula.WithResolver(intp.scopes.Current().Resolver()))
}

func (intp *Intp) simplify(input string) (term.Term, error) {
	f, err := intp.read(input)
	if err != nil {
		return nil, err
	}
	t, err := intp.engine.Simplify(f)
	if err != nil {
		return nil, err
	}
	intp.last = t
	return t, nil
}

func (intp *Intp) depth() int {
	n := 0
	for sc := intp.scopes.Current(); sc.Parent != nil; sc = sc.Parent {
		n++
	}
	return n
}

func isIdentifier(s string) bool {
	if s == "" || s == "i" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return false
		}
	}
	return true
}

/*
Package suite runs regression suites of formulas.

A suite is a YAML document listing formulas together with their expected
normal form:

    name: basics
    cases:
      - name: like terms
        input: 2*x + 3*x
        expect: 5*x
      - input: 1/(1/x)
        expect: x

A case passes if the input and the expected formula simplify to the same
term. Comparing normal forms instead of text allows the expectation to be
written in any convenient notation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package suite

import (
	"errors"
	"fmt"
	"io"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symalg/formula"
	"github.com/npillmayer/symalg/simplify"
	"github.com/npillmayer/symalg/term"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'symalg.suite'.
func tracer() tracing.Trace {
	return tracing.Select("symalg.suite")
}

// Suite is a named list of test cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a formula together with the expected result of simplifying it.
type Case struct {
	Name   string `yaml:"name,omitempty"`
	Input  string `yaml:"input"`
	Expect string `yaml:"expect"`
}

// Title returns the name of a case, or its input if the case is unnamed.
func (c Case) Title() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Input
}

// Load reads a single suite from a YAML document.
func Load(r io.Reader) (*Suite, error) {
	s := &Suite{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("suite: empty document")
		}
		return nil, fmt.Errorf("suite: cannot decode: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadAll reads every suite of a multi-document YAML stream.
func LoadAll(r io.Reader) ([]*Suite, error) {
	dec := yaml.NewDecoder(r)
	var suites []*Suite
	for {
		s := &Suite{}
		err := dec.Decode(s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return suites, fmt.Errorf("suite: cannot decode document %d: %w", len(suites)+1, err)
		}
		if err = s.validate(); err != nil {
			return suites, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// Fingerprint identifies the contents of a suite: suites with equal names and
// equal cases have equal fingerprints.
func (s *Suite) Fingerprint() string {
	h, err := structhash.Hash(s, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint suite %s: %v", s.Name, err)
		return ""
	}
	return h
}

func (s *Suite) validate() error {
	for i, c := range s.Cases {
		if c.Input == "" {
			return fmt.Errorf("suite %q: case %d has no input", s.Name, i+1)
		}
		if c.Expect == "" {
			return fmt.Errorf("suite %q: case %q has no expectation", s.Name, c.Title())
		}
	}
	return nil
}

// Result is the outcome of running a single case.
type Result struct {
	Case     Case
	Got      term.Term // normal form of the input
	Want     term.Term // normal form of the expectation
	Rewrites int
	Err      error
}

// Passed is a predicate: did the case succeed?
func (r Result) Passed() bool {
	return r.Err == nil && term.IsEqual(r.Got, r.Want)
}

// Run simplifies every case of the suite with engine e. Options are handed
// to the formula reader.
func (s *Suite) Run(e *simplify.Engine, opts ...formula.Option) []Result {
	results := make([]Result, len(s.Cases))
	passed := 0
	for i, c := range s.Cases {
		results[i] = runCase(e, c, opts)
		if results[i].Passed() {
			passed++
		} else {
			tracer().Infof("%s: case %q failed", s.Name, c.Title())
		}
	}
	tracer().Infof("suite %s [%s]: %d of %d cases passed", s.Name, s.Fingerprint(),
		passed, len(s.Cases))
	return results
}

func runCase(e *simplify.Engine, c Case, opts []formula.Option) Result {
	res := Result{Case: c}
	in, err := formula.Parse(c.Input, opts...)
	if err != nil {
		res.Err = fmt.Errorf("input: %w", err)
		return res
	}
	want, err := formula.Parse(c.Expect, opts...)
	if err != nil {
		res.Err = fmt.Errorf("expectation: %w", err)
		return res
	}
	run, err := e.Run(in)
	res.Got, res.Rewrites = run.Term, run.Rewrites
	if err != nil {
		res.Err = err
		return res
	}
	if res.Want, err = e.Simplify(want); err != nil {
		res.Err = fmt.Errorf("expectation: %w", err)
	}
	return res
}

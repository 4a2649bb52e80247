/*
Package session holds named formulas for interactive work.

Bindings are stored in symbol tables, which are attached to scopes. Scopes
are organized in a tree; name resolution walks up the tree from the current
scope to the global one.

A binding is substituted when a formula referencing it is read, not later.
Redefining a name therefore leaves formulas already built from its earlier
value untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package session

import (
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symalg/term"
)

// tracer traces with key 'symalg.session'.
func tracer() tracing.Trace {
	return tracing.Select("symalg.session")
}

// --- Bindings --------------------------------------------------------------

// Binding is a name bound to a term.
type Binding struct {
	name string
	Term term.Term
}

// NewBinding creates a new binding of a name to t.
func NewBinding(name string, t term.Term) *Binding {
	return &Binding{name: name, Term: t}
}

// Name gets the binding's name.
func (b *Binding) Name() string {
	return b.name
}

// String is a debug Stringer for bindings.
func (b *Binding) String() string {
	return fmt.Sprintf("%s := %s", b.name, b.Term)
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store bindings (map-like semantics).
type SymbolTable struct {
	Table map[string]*Binding
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: make(map[string]*Binding)}
}

// Resolve checks for a binding in the symbol table.
// Returns a binding or nil.
func (t *SymbolTable) Resolve(name string) *Binding {
	return t.Table[name]
}

// Define binds a name to a term. The name may not be empty.
// Overwrites an existing binding with this name, if any.
// Returns the new binding and the previously stored binding (or nil).
func (t *SymbolTable) Define(name string, value term.Term) (*Binding, *Binding) {
	if len(name) == 0 {
		return nil, nil
	}
	b := NewBinding(name, value)
	old := t.Insert(b)
	return b, old
}

// Insert inserts a pre-created binding.
func (t *SymbolTable) Insert(b *Binding) *Binding {
	old := t.Resolve(b.name)
	t.Table[b.name] = b
	return old
}

// Size counts the bindings in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each binding in the table in order of names, executing
// a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Binding)) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain bindings. Scopes link back to a
// parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Bindings returns the symbol table of a scope.
func (s *Scope) Bindings() *SymbolTable {
	return s.symtab
}

// Define binds a name in the scope. Returns the new binding and the previously
// stored binding under this name, if any.
func (s *Scope) Define(name string, value term.Term) (*Binding, *Binding) {
	tracer().P("scope", s.Name).Debugf("%s := %s", name, value)
	return s.symtab.Define(name, value)
}

// Resolve finds a binding. Returns the binding (or nil) and a scope. The scope
// is the scope (of a scope-tree-path) the binding was found in.
func (s *Scope) Resolve(name string) (*Binding, *Scope) {
	for ; s != nil; s = s.Parent {
		if b := s.symtab.Resolve(name); b != nil {
			return b, s
		}
	}
	return nil, nil
}

// Resolver returns a lookup function for bound terms, suitable for the
// formula reader.
func (s *Scope) Resolver() func(string) (term.Term, bool) {
	return func(name string) (term.Term, bool) {
		if b, _ := s.Resolve(name); b != nil {
			return b.Term, true
		}
		return nil, false
	}
}

// Each iterates over the bindings visible from s, in order of names. A
// binding shadowed by an inner scope is not visited.
func (s *Scope) Each(mapper func(string, *Binding, *Scope)) {
	visible := NewSymbolTable()
	where := make(map[string]*Scope)
	for sc := s; sc != nil; sc = sc.Parent {
		sc.symtab.Each(func(name string, b *Binding) {
			if visible.Resolve(name) == nil {
				visible.Insert(b)
				where[name] = sc
			}
		})
	}
	visible.Each(func(name string, b *Binding) {
		mapper(name, b, where[name])
	})
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during a session, thus
// building a tree from scopes which are pushed an popped to/from the stack.
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// NewScopeTree creates a scope tree with a global scope.
func NewScopeTree() *ScopeTree {
	st := &ScopeTree{}
	st.PushNewScope("global")
	return st
}

// Current gets the current scope of a stack (TOS).
func (st *ScopeTree) Current() *Scope {
	if st.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return st.ScopeTOS
}

// Globals gets the outermost scope, containing global bindings.
func (st *ScopeTree) Globals() *Scope {
	if st.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return st.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes.
func (st *ScopeTree) PushNewScope(nm string) *Scope {
	scp := st.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the global scope
		st.ScopeBase = newsc
	}
	st.ScopeTOS = newsc
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope. The global scope is never
// popped; PopScope returns nil instead.
func (st *ScopeTree) PopScope() *Scope {
	if st.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	if st.ScopeTOS == st.ScopeBase {
		return nil
	}
	sc := st.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	st.ScopeTOS = sc.Parent
	return sc
}

// Package language defines the GraphQL document AST. Every node
// implements the absinthe.Node capability so documents can be folded
// by the traversal engine; identity is the node pointer, and children
// are returned in source order.
package language

import (
	"github.com/mechabyte/absinthe"
)

// SourceLocation records where a node appeared in the source document.
type SourceLocation struct {
	Line   int
	Column int
}

// Definition is a top-level entry of a document: an operation or a
// fragment definition.
type Definition interface {
	absinthe.Node
	isDefinition()
}

// Selection is an entry of a selection set: a field, a fragment
// spread, or an inline fragment.
type Selection interface {
	absinthe.Node
	isSelection()
}

// Value is an input value literal.
type Value interface {
	absinthe.Node
	isValue()
}

// TypeReference names a type in variable definitions and fragment
// type conditions: named, list, or non-null.
type TypeReference interface {
	absinthe.Node
	isTypeReference()
}

// Document is the root of a parsed GraphQL document.
type Document struct {
	Definitions []Definition
	Loc         *SourceLocation
}

func (d *Document) NodeKey() any { return d }

func (d *Document) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(d.Definitions))
	for _, def := range d.Definitions {
		children = append(children, def)
	}
	return children
}

// Operations returns the document's operation definitions in order.
func (d *Document) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns the document's fragment definitions keyed by name.
func (d *Document) Fragments() map[string]*FragmentDefinition {
	frags := make(map[string]*FragmentDefinition)
	for _, def := range d.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok {
			frags[frag.Name] = frag
		}
	}
	return frags
}

// OperationType distinguishes queries, mutations and subscriptions.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// OperationDefinition is a named or anonymous operation.
type OperationDefinition struct {
	Operation           OperationType
	Name                string
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        []Selection
	Loc                 *SourceLocation
}

func (o *OperationDefinition) NodeKey() any { return o }
func (o *OperationDefinition) isDefinition() {}

func (o *OperationDefinition) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0,
		len(o.VariableDefinitions)+len(o.Directives)+len(o.SelectionSet))
	for _, v := range o.VariableDefinitions {
		children = append(children, v)
	}
	for _, d := range o.Directives {
		children = append(children, d)
	}
	for _, s := range o.SelectionSet {
		children = append(children, s)
	}
	return children
}

// VariableDefinition declares an operation variable with its type and
// optional default.
type VariableDefinition struct {
	Variable     *Variable
	Type         TypeReference
	DefaultValue Value
	Loc          *SourceLocation
}

func (v *VariableDefinition) NodeKey() any { return v }

func (v *VariableDefinition) Children(st absinthe.State) []absinthe.Node {
	children := []absinthe.Node{v.Variable, v.Type}
	if v.DefaultValue != nil {
		children = append(children, v.DefaultValue)
	}
	return children
}

// Variable is a `$name` reference.
type Variable struct {
	Name string
	Loc  *SourceLocation
}

func (v *Variable) NodeKey() any { return v }
func (v *Variable) isValue() {}
func (v *Variable) Children(st absinthe.State) []absinthe.Node { return nil }

// Field is a selection of a single field, possibly aliased, with
// arguments, directives and a nested selection set.
type Field struct {
	Alias        string
	Name         string
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet []Selection
	Loc          *SourceLocation
}

func (f *Field) NodeKey() any { return f }
func (f *Field) isSelection() {}

func (f *Field) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0,
		len(f.Arguments)+len(f.Directives)+len(f.SelectionSet))
	for _, a := range f.Arguments {
		children = append(children, a)
	}
	for _, d := range f.Directives {
		children = append(children, d)
	}
	for _, s := range f.SelectionSet {
		children = append(children, s)
	}
	return children
}

// Argument is a name/value pair on a field or directive.
type Argument struct {
	Name  string
	Value Value
	Loc   *SourceLocation
}

func (a *Argument) NodeKey() any { return a }

func (a *Argument) Children(st absinthe.State) []absinthe.Node {
	if a.Value == nil {
		return nil
	}
	return []absinthe.Node{a.Value}
}

// Directive is an `@name(args)` annotation.
type Directive struct {
	Name      string
	Arguments []*Argument
	Loc       *SourceLocation
}

func (d *Directive) NodeKey() any { return d }

func (d *Directive) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(d.Arguments))
	for _, a := range d.Arguments {
		children = append(children, a)
	}
	return children
}

// FragmentDefinition is a named fragment with a type condition.
type FragmentDefinition struct {
	Name          string
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  []Selection
	Loc           *SourceLocation
}

func (f *FragmentDefinition) NodeKey() any { return f }
func (f *FragmentDefinition) isDefinition() {}

func (f *FragmentDefinition) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0,
		1+len(f.Directives)+len(f.SelectionSet))
	if f.TypeCondition != nil {
		children = append(children, f.TypeCondition)
	}
	for _, d := range f.Directives {
		children = append(children, d)
	}
	for _, s := range f.SelectionSet {
		children = append(children, s)
	}
	return children
}

// FragmentSpread is a `...name` selection.
type FragmentSpread struct {
	Name       string
	Directives []*Directive
	Loc        *SourceLocation
}

func (f *FragmentSpread) NodeKey() any { return f }
func (f *FragmentSpread) isSelection() {}

func (f *FragmentSpread) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(f.Directives))
	for _, d := range f.Directives {
		children = append(children, d)
	}
	return children
}

// InlineFragment is a `... on Type { ... }` selection.
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  []Selection
	Loc           *SourceLocation
}

func (f *InlineFragment) NodeKey() any { return f }
func (f *InlineFragment) isSelection() {}

func (f *InlineFragment) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0,
		1+len(f.Directives)+len(f.SelectionSet))
	if f.TypeCondition != nil {
		children = append(children, f.TypeCondition)
	}
	for _, d := range f.Directives {
		children = append(children, d)
	}
	for _, s := range f.SelectionSet {
		children = append(children, s)
	}
	return children
}

// NamedType references a type by name.
type NamedType struct {
	Name string
	Loc  *SourceLocation
}

func (t *NamedType) NodeKey() any { return t }
func (t *NamedType) isTypeReference() {}
func (t *NamedType) Children(st absinthe.State) []absinthe.Node { return nil }

// ListType wraps an element type reference.
type ListType struct {
	Type TypeReference
	Loc  *SourceLocation
}

func (t *ListType) NodeKey() any { return t }
func (t *ListType) isTypeReference() {}

func (t *ListType) Children(st absinthe.State) []absinthe.Node {
	return []absinthe.Node{t.Type}
}

// NonNullType wraps a type reference that may not be null.
type NonNullType struct {
	Type TypeReference
	Loc  *SourceLocation
}

func (t *NonNullType) NodeKey() any { return t }
func (t *NonNullType) isTypeReference() {}

func (t *NonNullType) Children(st absinthe.State) []absinthe.Node {
	return []absinthe.Node{t.Type}
}

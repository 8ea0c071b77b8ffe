// Package schema models a GraphQL type system and the operations built
// on top of the traversal engine: reachable-type collection and rule
// validation. Named types implement the absinthe.Node capability with
// their name as identity; type references are resolved through the
// *Schema carried as the traversal state's schema value, so recursive
// type definitions form cycles the engine's seen set cuts.
package schema

import (
	"fmt"

	"github.com/mechabyte/absinthe"
)

// Kind classifies a type definition.
type Kind string

const (
	KindScalar      Kind = "scalar"
	KindObject      Kind = "object"
	KindInterface   Kind = "interface"
	KindUnion       Kind = "union"
	KindEnum        Kind = "enum"
	KindInputObject Kind = "input_object"
)

// Type is a named type definition. All implementations are also
// absinthe.Node so the type graph can be folded directly.
type Type interface {
	absinthe.Node
	TypeName() string
	TypeKind() Kind
}

// TypeRef references a type in a field or argument position: a bare
// name, a list wrapper, or a non-null wrapper.
type TypeRef interface {
	// NamedType returns the name at the bottom of the wrapper chain.
	NamedType() string
	// String renders the reference in SDL notation, e.g. "[User!]!".
	String() string
}

// NamedRef references a type by name.
type NamedRef string

func (r NamedRef) NamedType() string { return string(r) }
func (r NamedRef) String() string { return string(r) }

// ListRef wraps an element reference.
type ListRef struct{ Of TypeRef }

func (r ListRef) NamedType() string { return r.Of.NamedType() }
func (r ListRef) String() string { return "[" + r.Of.String() + "]" }

// NonNullRef wraps a reference that may not be null.
type NonNullRef struct{ Of TypeRef }

func (r NonNullRef) NamedType() string { return r.Of.NamedType() }
func (r NonNullRef) String() string { return r.Of.String() + "!" }

// Named, ListOf and NonNull build type references.
func Named(name string) TypeRef { return NamedRef(name) }
func ListOf(of TypeRef) TypeRef { return ListRef{Of: of} }
func NonNull(of TypeRef) TypeRef { return NonNullRef{Of: of} }

// resolveRef looks the reference's named type up in the traversal
// state's schema. Child expansion skips unresolved names; the
// validation rules report them (the engine never validates).
func resolveRef(ref TypeRef, st absinthe.State) (Type, bool) {
	s, ok := st.Schema.(*Schema)
	if !ok || s == nil || ref == nil {
		return nil, false
	}
	return s.Lookup(ref.NamedType())
}

// Scalar is a leaf type. Int, Float, String, Boolean and ID are
// pre-registered on every schema.
type Scalar struct {
	Name        string
	Description string
}

func (t *Scalar) TypeName() string { return t.Name }
func (t *Scalar) TypeKind() Kind { return KindScalar }
func (t *Scalar) NodeKey() any { return t.Name }

func (t *Scalar) Children(st absinthe.State) []absinthe.Node { return nil }

// EnumValue is one member of an enum.
type EnumValue struct {
	Name        string
	Description string
	Deprecation string
}

// Enum is a set of named values.
type Enum struct {
	Name        string
	Description string
	Values      []*EnumValue
}

func (t *Enum) TypeName() string { return t.Name }
func (t *Enum) TypeKind() Kind { return KindEnum }
func (t *Enum) NodeKey() any { return t.Name }

func (t *Enum) Children(st absinthe.State) []absinthe.Node { return nil }

// Argument is a named, typed input to a field.
type Argument struct {
	Name        string
	Description string
	Type        TypeRef
	Default     any
}

func (a *Argument) NodeKey() any { return a }

func (a *Argument) Children(st absinthe.State) []absinthe.Node {
	if t, ok := resolveRef(a.Type, st); ok {
		return []absinthe.Node{t}
	}
	return nil
}

// Field is a named, typed member of an object, interface or input
// object. Its traversal children are its arguments followed by the
// referenced type's definition, resolved through the schema.
type Field struct {
	Name        string
	Description string
	Type        TypeRef
	Args        []*Argument
	Deprecation string
}

func (f *Field) NodeKey() any { return f }

func (f *Field) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(f.Args)+1)
	for _, a := range f.Args {
		children = append(children, a)
	}
	if t, ok := resolveRef(f.Type, st); ok {
		children = append(children, t)
	}
	return children
}

// Object is an output type with ordered fields, optionally declaring
// interfaces it implements (by name).
type Object struct {
	Name        string
	Description string
	Fields      []*Field
	Interfaces  []string
}

func (t *Object) TypeName() string { return t.Name }
func (t *Object) TypeKind() Kind { return KindObject }
func (t *Object) NodeKey() any { return t.Name }

func (t *Object) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(t.Fields)+len(t.Interfaces))
	for _, f := range t.Fields {
		children = append(children, f)
	}
	for _, name := range t.Interfaces {
		if iface, ok := resolveRef(Named(name), st); ok {
			children = append(children, iface)
		}
	}
	return children
}

// Field returns the object's field by name, or nil.
func (t *Object) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Interface is an abstract output type with ordered fields.
type Interface struct {
	Name        string
	Description string
	Fields      []*Field
}

func (t *Interface) TypeName() string { return t.Name }
func (t *Interface) TypeKind() Kind { return KindInterface }
func (t *Interface) NodeKey() any { return t.Name }

func (t *Interface) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(t.Fields))
	for _, f := range t.Fields {
		children = append(children, f)
	}
	return children
}

// Union is an output type whose value is one of several object types.
type Union struct {
	Name        string
	Description string
	Types       []string
}

func (t *Union) TypeName() string { return t.Name }
func (t *Union) TypeKind() Kind { return KindUnion }
func (t *Union) NodeKey() any { return t.Name }

func (t *Union) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(t.Types))
	for _, name := range t.Types {
		if member, ok := resolveRef(Named(name), st); ok {
			children = append(children, member)
		}
	}
	return children
}

// InputObject is an input type with ordered fields.
type InputObject struct {
	Name        string
	Description string
	Fields      []*Field
}

func (t *InputObject) TypeName() string { return t.Name }
func (t *InputObject) TypeKind() Kind { return KindInputObject }
func (t *InputObject) NodeKey() any { return t.Name }

func (t *InputObject) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(t.Fields))
	for _, f := range t.Fields {
		children = append(children, f)
	}
	return children
}

// assert Node capability at compile time.
var (
	_ Type = (*Scalar)(nil)
	_ Type = (*Enum)(nil)
	_ Type = (*Object)(nil)
	_ Type = (*Interface)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*InputObject)(nil)

	_ absinthe.Node = (*Field)(nil)
	_ absinthe.Node = (*Argument)(nil)
)

func kindOf(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", t.TypeKind(), t.TypeName())
}

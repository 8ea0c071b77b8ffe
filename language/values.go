package language

import (
	"github.com/mechabyte/absinthe"
)

// IntValue is an integer literal.
type IntValue struct {
	Value int64
	Loc   *SourceLocation
}

func (v *IntValue) NodeKey() any { return v }
func (v *IntValue) isValue() {}
func (v *IntValue) Children(st absinthe.State) []absinthe.Node { return nil }

// FloatValue is a float literal.
type FloatValue struct {
	Value float64
	Loc   *SourceLocation
}

func (v *FloatValue) NodeKey() any { return v }
func (v *FloatValue) isValue() {}
func (v *FloatValue) Children(st absinthe.State) []absinthe.Node { return nil }

// StringValue is a string literal.
type StringValue struct {
	Value string
	Loc   *SourceLocation
}

func (v *StringValue) NodeKey() any { return v }
func (v *StringValue) isValue() {}
func (v *StringValue) Children(st absinthe.State) []absinthe.Node { return nil }

// BooleanValue is a boolean literal.
type BooleanValue struct {
	Value bool
	Loc   *SourceLocation
}

func (v *BooleanValue) NodeKey() any { return v }
func (v *BooleanValue) isValue() {}
func (v *BooleanValue) Children(st absinthe.State) []absinthe.Node { return nil }

// EnumValue is a bare enum name literal.
type EnumValue struct {
	Name string
	Loc  *SourceLocation
}

func (v *EnumValue) NodeKey() any { return v }
func (v *EnumValue) isValue() {}
func (v *EnumValue) Children(st absinthe.State) []absinthe.Node { return nil }

// NullValue is the null literal.
type NullValue struct {
	Loc *SourceLocation
}

func (v *NullValue) NodeKey() any { return v }
func (v *NullValue) isValue() {}
func (v *NullValue) Children(st absinthe.State) []absinthe.Node { return nil }

// ListValue is a list literal.
type ListValue struct {
	Values []Value
	Loc    *SourceLocation
}

func (v *ListValue) NodeKey() any { return v }
func (v *ListValue) isValue() {}

func (v *ListValue) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(v.Values))
	for _, val := range v.Values {
		children = append(children, val)
	}
	return children
}

// ObjectValue is an input object literal.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    *SourceLocation
}

func (v *ObjectValue) NodeKey() any { return v }
func (v *ObjectValue) isValue() {}

func (v *ObjectValue) Children(st absinthe.State) []absinthe.Node {
	children := make([]absinthe.Node, 0, len(v.Fields))
	for _, f := range v.Fields {
		children = append(children, f)
	}
	return children
}

// ObjectField is a single name/value entry of an input object literal.
type ObjectField struct {
	Name  string
	Value Value
	Loc   *SourceLocation
}

func (f *ObjectField) NodeKey() any { return f }

func (f *ObjectField) Children(st absinthe.State) []absinthe.Node {
	if f.Value == nil {
		return nil
	}
	return []absinthe.Node{f.Value}
}

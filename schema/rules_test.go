package schema

import (
	"errors"
	"testing"
)

func TestValidateWellFormedSchema(t *testing.T) {
	if err := Validate(testSchema(t)); err != nil {
		t.Errorf("Validate returned %v, want nil", err)
	}
}

func TestValidateMissingQueryRoot(t *testing.T) {
	s := New()
	if err := Validate(s); err == nil {
		t.Error("schema without query root validated, want error")
	}

	s.QueryType = "Query" // named but never registered
	var undefined *UndefinedTypeError
	if err := Validate(s); !errors.As(err, &undefined) {
		t.Errorf("err = %v, want *UndefinedTypeError", err)
	}
}

func TestValidateUndefinedFieldType(t *testing.T) {
	s := New()
	s.QueryType = "Query"
	mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
		{Name: "widget", Type: Named("Widget")}, // Widget never defined
	}})

	err := Validate(s)
	var undefined *UndefinedTypeError
	if !errors.As(err, &undefined) {
		t.Fatalf("err = %v, want *UndefinedTypeError", err)
	}
	if undefined.Name != "Widget" {
		t.Errorf("missing type = %q, want Widget", undefined.Name)
	}
}

func TestValidateInputObjectInOutputPosition(t *testing.T) {
	s := New()
	s.QueryType = "Query"
	mustRegister(t, s, &InputObject{Name: "UserInput", Fields: []*Field{
		{Name: "name", Type: Named("String")},
	}})
	mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
		{Name: "user", Type: Named("UserInput")},
	}})

	if err := Validate(s); err == nil {
		t.Error("input object in output position validated, want error")
	}
}

func TestValidateObjectInInputPosition(t *testing.T) {
	s := New()
	s.QueryType = "Query"
	mustRegister(t, s, &Object{Name: "User", Fields: []*Field{
		{Name: "id", Type: NonNull(Named("ID"))},
	}})
	mustRegister(t, s, &InputObject{Name: "Filter", Fields: []*Field{
		{Name: "owner", Type: Named("User")}, // object type in input position
	}})
	mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
		{Name: "search", Type: Named("User"), Args: []*Argument{
			{Name: "filter", Type: Named("Filter")},
		}},
	}})

	if err := Validate(s); err == nil {
		t.Error("object type in input position validated, want error")
	}
}

func TestValidateObjectArgument(t *testing.T) {
	s := New()
	s.QueryType = "Query"
	mustRegister(t, s, &Object{Name: "User", Fields: []*Field{
		{Name: "id", Type: NonNull(Named("ID"))},
	}})
	mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
		{Name: "search", Type: Named("User"), Args: []*Argument{
			{Name: "like", Type: Named("User")}, // objects are not input types
		}},
	}})

	if err := Validate(s); err == nil {
		t.Error("object-typed argument validated, want error")
	}
}

func TestValidateEmptyUnionAndEnum(t *testing.T) {
	t.Run("empty union", func(t *testing.T) {
		s := New()
		s.QueryType = "Query"
		mustRegister(t, s, &Union{Name: "Anything"})
		mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
			{Name: "thing", Type: Named("Anything")},
		}})
		if err := Validate(s); err == nil {
			t.Error("empty union validated, want error")
		}
	})

	t.Run("empty enum", func(t *testing.T) {
		s := New()
		s.QueryType = "Query"
		mustRegister(t, s, &Enum{Name: "Mood"})
		mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
			{Name: "mood", Type: Named("Mood")},
		}})
		if err := Validate(s); err == nil {
			t.Error("empty enum validated, want error")
		}
	})
}

func TestValidateUnionMembers(t *testing.T) {
	s := New()
	s.QueryType = "Query"
	mustRegister(t, s, &Enum{Name: "Mood", Values: []*EnumValue{{Name: "HAPPY"}}})
	mustRegister(t, s, &Union{Name: "Anything", Types: []string{"Mood"}}) // not an object
	mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
		{Name: "thing", Type: Named("Anything")},
	}})

	if err := Validate(s); err == nil {
		t.Error("union with non-object member validated, want error")
	}
}

func TestValidateBadNames(t *testing.T) {
	s := New()
	s.QueryType = "Query"
	mustRegister(t, s, &Object{Name: "Query", Fields: []*Field{
		{Name: "bad-name", Type: Named("String")},
	}})

	if err := Validate(s); err == nil {
		t.Error("field name with hyphen validated, want error")
	}
}

func TestValidateRecursiveSchemaTerminates(t *testing.T) {
	// Self- and mutually recursive types must not loop the validator.
	s := testSchema(t)
	done := make(chan error, 1)
	go func() { done <- Validate(s) }()

	if err := <-done; err != nil {
		t.Errorf("Validate returned %v, want nil", err)
	}
}

func mustRegister(t *testing.T, s *Schema, typ Type) {
	t.Helper()
	if err := s.RegisterType(typ); err != nil {
		t.Fatalf("RegisterType(%s): %v", typ.TypeName(), err)
	}
}

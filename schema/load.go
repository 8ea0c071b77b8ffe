package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition document format, YAML or JSON (JSON is a YAML subset):
//
//	schema:
//	  query: Query
//	  mutation: Mutation
//	types:
//	  - name: Query
//	    kind: object
//	    fields:
//	      - name: user
//	        type: User
//	        args:
//	          - name: id
//	            type: ID!
//	  - name: User
//	    kind: object
//	    fields:
//	      - name: id
//	        type: ID!
//	      - name: friends
//	        type: "[User!]"

type document struct {
	Schema rootsDoc  `yaml:"schema"`
	Types  []typeDoc `yaml:"types"`
}

type rootsDoc struct {
	Query        string `yaml:"query"`
	Mutation     string `yaml:"mutation"`
	Subscription string `yaml:"subscription"`
}

type typeDoc struct {
	Name        string     `yaml:"name"`
	Kind        string     `yaml:"kind"`
	Description string     `yaml:"description"`
	Fields      []fieldDoc `yaml:"fields"`
	Values      []valueDoc `yaml:"values"`
	Types       []string   `yaml:"types"`      // union members
	Interfaces  []string   `yaml:"interfaces"` // object implements list
}

type fieldDoc struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	Args        []argDoc `yaml:"args"`
	Deprecation string   `yaml:"deprecation"`
}

type argDoc struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Default     any    `yaml:"default"`
}

type valueDoc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Deprecation string `yaml:"deprecation"`
}

// UnmarshalYAML lets enum values be written either as bare strings or
// as mappings with a description.
func (v *valueDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v.Name = node.Value
		return nil
	}
	type plain valueDoc
	return node.Decode((*plain)(v))
}

// LoadFile reads a schema definition document from path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema definition: %w", err)
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load parses a schema definition document and builds a Schema. The
// result is structurally complete but not validated; call Validate to
// check references and placement.
func Load(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema definition: %w", err)
	}

	s := New()
	s.QueryType = doc.Schema.Query
	s.MutationType = doc.Schema.Mutation
	s.SubscriptionType = doc.Schema.Subscription

	for _, td := range doc.Types {
		t, err := buildType(td)
		if err != nil {
			return nil, err
		}
		if err := s.RegisterType(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func buildType(td typeDoc) (Type, error) {
	if td.Name == "" {
		return nil, fmt.Errorf("type with kind %q has no name", td.Kind)
	}
	switch Kind(td.Kind) {
	case KindScalar:
		return &Scalar{Name: td.Name, Description: td.Description}, nil

	case KindObject:
		fields, err := buildFields(td.Name, td.Fields)
		if err != nil {
			return nil, err
		}
		return &Object{
			Name:        td.Name,
			Description: td.Description,
			Fields:      fields,
			Interfaces:  td.Interfaces,
		}, nil

	case KindInterface:
		fields, err := buildFields(td.Name, td.Fields)
		if err != nil {
			return nil, err
		}
		return &Interface{Name: td.Name, Description: td.Description, Fields: fields}, nil

	case KindUnion:
		return &Union{Name: td.Name, Description: td.Description, Types: td.Types}, nil

	case KindEnum:
		values := make([]*EnumValue, 0, len(td.Values))
		for _, vd := range td.Values {
			values = append(values, &EnumValue{
				Name:        vd.Name,
				Description: vd.Description,
				Deprecation: vd.Deprecation,
			})
		}
		return &Enum{Name: td.Name, Description: td.Description, Values: values}, nil

	case KindInputObject:
		fields, err := buildFields(td.Name, td.Fields)
		if err != nil {
			return nil, err
		}
		return &InputObject{Name: td.Name, Description: td.Description, Fields: fields}, nil

	default:
		return nil, fmt.Errorf("type %s: unknown kind %q", td.Name, td.Kind)
	}
}

func buildFields(typeName string, docs []fieldDoc) ([]*Field, error) {
	fields := make([]*Field, 0, len(docs))
	for _, fd := range docs {
		ref, err := ParseTypeRef(fd.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", typeName, fd.Name, err)
		}
		args := make([]*Argument, 0, len(fd.Args))
		for _, ad := range fd.Args {
			argRef, err := ParseTypeRef(ad.Type)
			if err != nil {
				return nil, fmt.Errorf("argument %s.%s(%s): %w", typeName, fd.Name, ad.Name, err)
			}
			args = append(args, &Argument{
				Name:        ad.Name,
				Description: ad.Description,
				Type:        argRef,
				Default:     ad.Default,
			})
		}
		fields = append(fields, &Field{
			Name:        fd.Name,
			Description: fd.Description,
			Type:        ref,
			Args:        args,
			Deprecation: fd.Deprecation,
		})
	}
	return fields, nil
}

// ParseTypeRef parses SDL type notation: "User", "User!", "[User]",
// "[User!]!" and deeper nestings.
func ParseTypeRef(expr string) (TypeRef, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type expression")
	}

	if strings.HasSuffix(expr, "!") {
		inner, err := ParseTypeRef(expr[:len(expr)-1])
		if err != nil {
			return nil, err
		}
		if _, doubled := inner.(NonNullRef); doubled {
			return nil, fmt.Errorf("invalid type expression %q: doubled non-null", expr)
		}
		return NonNull(inner), nil
	}

	if strings.HasPrefix(expr, "[") {
		if !strings.HasSuffix(expr, "]") {
			return nil, fmt.Errorf("invalid type expression %q: unbalanced brackets", expr)
		}
		inner, err := ParseTypeRef(expr[1 : len(expr)-1])
		if err != nil {
			return nil, err
		}
		return ListOf(inner), nil
	}

	if strings.ContainsAny(expr, "[]! ") {
		return nil, fmt.Errorf("invalid type expression %q", expr)
	}
	return Named(expr), nil
}

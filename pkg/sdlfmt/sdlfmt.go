// Package sdlfmt renders a schema's reachable type graph as GraphQL
// SDL text and as an aligned type report. Output order is stable:
// root operation types first, everything else alphabetical, built-in
// scalars omitted.
package sdlfmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mechabyte/absinthe/schema"
)

var builtins = map[string]bool{
	"Int": true, "Float": true, "String": true, "Boolean": true, "ID": true,
}

// Format renders the schema as SDL.
func Format(s *schema.Schema) (string, error) {
	types, err := orderedTypes(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeSchemaBlock(&b, s)
	for _, t := range types {
		b.WriteString("\n")
		writeType(&b, t)
	}
	return b.String(), nil
}

// TypeTable renders an aligned name/kind/member-count report of the
// reachable types, built-ins included.
func TypeTable(s *schema.Schema) (string, error) {
	collected, err := schema.CollectTypes(s)
	if err != nil {
		return "", err
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].TypeName() < collected[j].TypeName()
	})

	nameW, kindW := runewidth.StringWidth("TYPE"), runewidth.StringWidth("KIND")
	for _, t := range collected {
		if w := runewidth.StringWidth(t.TypeName()); w > nameW {
			nameW = w
		}
		if w := runewidth.StringWidth(string(t.TypeKind())); w > kindW {
			kindW = w
		}
	}

	var b strings.Builder
	row := func(name, kind, members string) {
		b.WriteString(runewidth.FillRight(name, nameW+2))
		b.WriteString(runewidth.FillRight(kind, kindW+2))
		b.WriteString(members)
		b.WriteString("\n")
	}
	row("TYPE", "KIND", "MEMBERS")
	for _, t := range collected {
		row(t.TypeName(), string(t.TypeKind()), fmt.Sprintf("%d", memberCount(t)))
	}
	return b.String(), nil
}

func memberCount(t schema.Type) int {
	switch n := t.(type) {
	case *schema.Object:
		return len(n.Fields)
	case *schema.Interface:
		return len(n.Fields)
	case *schema.InputObject:
		return len(n.Fields)
	case *schema.Enum:
		return len(n.Values)
	case *schema.Union:
		return len(n.Types)
	default:
		return 0
	}
}

// orderedTypes collects reachable types and sorts them roots-first,
// then alphabetically, dropping built-in scalars.
func orderedTypes(s *schema.Schema) ([]schema.Type, error) {
	collected, err := schema.CollectTypes(s)
	if err != nil {
		return nil, err
	}

	rootRank := map[string]int{}
	for i, name := range []string{s.QueryType, s.MutationType, s.SubscriptionType} {
		if name != "" {
			rootRank[name] = i + 1
		}
	}

	var types []schema.Type
	for _, t := range collected {
		if builtins[t.TypeName()] {
			continue
		}
		types = append(types, t)
	}
	sort.SliceStable(types, func(i, j int) bool {
		ri, rj := rootRank[types[i].TypeName()], rootRank[types[j].TypeName()]
		if ri != rj {
			if ri == 0 {
				return false
			}
			if rj == 0 {
				return true
			}
			return ri < rj
		}
		return types[i].TypeName() < types[j].TypeName()
	})
	return types, nil
}

func writeSchemaBlock(b *strings.Builder, s *schema.Schema) {
	b.WriteString("schema {\n")
	if s.QueryType != "" {
		fmt.Fprintf(b, "  query: %s\n", s.QueryType)
	}
	if s.MutationType != "" {
		fmt.Fprintf(b, "  mutation: %s\n", s.MutationType)
	}
	if s.SubscriptionType != "" {
		fmt.Fprintf(b, "  subscription: %s\n", s.SubscriptionType)
	}
	b.WriteString("}\n")
}

func writeType(b *strings.Builder, t schema.Type) {
	switch n := t.(type) {
	case *schema.Scalar:
		writeDescription(b, n.Description, "")
		fmt.Fprintf(b, "scalar %s\n", n.Name)

	case *schema.Enum:
		writeDescription(b, n.Description, "")
		fmt.Fprintf(b, "enum %s {\n", n.Name)
		for _, v := range n.Values {
			writeDescription(b, v.Description, "  ")
			fmt.Fprintf(b, "  %s%s\n", v.Name, deprecation(v.Deprecation))
		}
		b.WriteString("}\n")

	case *schema.Union:
		writeDescription(b, n.Description, "")
		fmt.Fprintf(b, "union %s = %s\n", n.Name, strings.Join(n.Types, " | "))

	case *schema.Object:
		writeDescription(b, n.Description, "")
		implements := ""
		if len(n.Interfaces) > 0 {
			implements = " implements " + strings.Join(n.Interfaces, " & ")
		}
		fmt.Fprintf(b, "type %s%s {\n", n.Name, implements)
		writeFields(b, n.Fields)
		b.WriteString("}\n")

	case *schema.Interface:
		writeDescription(b, n.Description, "")
		fmt.Fprintf(b, "interface %s {\n", n.Name)
		writeFields(b, n.Fields)
		b.WriteString("}\n")

	case *schema.InputObject:
		writeDescription(b, n.Description, "")
		fmt.Fprintf(b, "input %s {\n", n.Name)
		writeFields(b, n.Fields)
		b.WriteString("}\n")
	}
}

func writeFields(b *strings.Builder, fields []*schema.Field) {
	for _, f := range fields {
		writeDescription(b, f.Description, "  ")
		fmt.Fprintf(b, "  %s%s: %s%s\n",
			f.Name, argList(f.Args), f.Type.String(), deprecation(f.Deprecation))
	}
}

func argList(args []*schema.Argument) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		part := fmt.Sprintf("%s: %s", a.Name, a.Type.String())
		if a.Default != nil {
			part += " = " + renderValue(a.Default)
		}
		parts[i] = part
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func deprecation(reason string) string {
	if reason == "" {
		return ""
	}
	return fmt.Sprintf(" @deprecated(reason: %q)", reason)
}

func writeDescription(b *strings.Builder, desc, indent string) {
	if desc == "" {
		return
	}
	fmt.Fprintf(b, "%s\"\"\"%s\"\"\"\n", indent, desc)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mechabyte/absinthe/pkg/sdlfmt"
	"github.com/mechabyte/absinthe/schema"
)

var typesCmd = &cobra.Command{
	Use:   "types <schema-file>",
	Short: "List the types reachable from the schema roots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schema.LoadFile(args[0])
		if err != nil {
			return err
		}
		table, err := sdlfmt.TypeTable(s)
		if err != nil {
			return err
		}
		fmt.Print(table)
		return nil
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <schema-file>",
	Short: "Render a schema definition as GraphQL SDL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schema.LoadFile(args[0])
		if err != nil {
			return err
		}
		out, err := sdlfmt.Format(s)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

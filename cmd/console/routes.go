package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/JaimeStill/registry-admin/internal/routetable"
	"github.com/JaimeStill/registry-admin/pkg/navigation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRoutesCmd() *cobra.Command {
	var (
		scope  string
		flat   bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the composed route table",
		Long: `Print the protected or public route table, either as the grouped
navigation tree or as the flattened registration list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := routetable.ParseScope(scope)
			if err != nil {
				return fmt.Errorf("--scope %q: %w", scope, err)
			}

			table := routetable.Compose()

			var out any
			if flat {
				descriptors, err := table.Flat(s)
				if err != nil {
					return err
				}
				out = navigation.Entries(descriptors)
			} else if s == routetable.ScopeProtected {
				out = table.ProtectedGroups()
			} else {
				out = table.PublicGroups()
			}

			return write(cmd.OutOrStdout(), format, out)
		},
	}

	cmd.Flags().StringVar(&scope, "scope", string(routetable.ScopeProtected), "route scope (protected|public)")
	cmd.Flags().BoolVar(&flat, "flat", false, "print the flattened registration list")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml|json)")

	return cmd
}

func newDuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates",
		Short: "List paths registered more than once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dups := routetable.Compose().Duplicates()
			w := cmd.OutOrStdout()

			if len(dups) == 0 {
				fmt.Fprintln(w, "no duplicate paths")
				return nil
			}

			for _, scope := range []routetable.Scope{routetable.ScopeProtected, routetable.ScopePublic} {
				for _, path := range dups[scope] {
					fmt.Fprintf(w, "%s\t%s\n", scope, path)
				}
			}
			return nil
		},
	}
}

func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

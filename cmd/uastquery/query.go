package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uastcore/uastquery"
	"github.com/uastcore/uastquery/internal/demotree"
	"github.com/uastcore/uastquery/uastxml"
)

// ErrQueryRequired is returned when the query command's expression
// argument is empty. A missing argument is rejected earlier by the
// command's argument validation.
var ErrQueryRequired = errors.New("query expression required")

func queryCmd() *cobra.Command {
	var (
		input string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "query <xpath> <file>",
		Short: "Evaluate an XPath expression against a UAST tree",
		Long: `Evaluate an XPath 1.0 expression against a tree read from file.

Examples:
  uastquery query "//Function" tree.json            # node-set, printed as JSON
  uastquery query "count(//Call) > 0" tree.json -k boolean
  uastquery query "count(//Call)" tree.json -k number
  uastquery query "string(//Function[1]/@token)" tree.json -k string`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			if query == "" {
				return ErrQueryRequired
			}

			file := ""
			if len(args) > 1 {
				file = args[1]
			}

			return runQuery(cmd, query, file, input, kind)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, overrides the positional file argument")
	cmd.Flags().StringVarP(&kind, "kind", "k", "nodeset", "result kind: nodeset, boolean, number, string")

	return cmd
}

func runQuery(cmd *cobra.Command, query, file, input, kind string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	roleLookup, roleResolve, err := loadRoleTable(firstNonEmpty(roleCfg, cfg.RoleTableFile))
	if err != nil {
		return err
	}

	path := firstNonEmpty(input, file)

	root, iface, err := loadTree(cmd.InOrStdin(), path, roleResolve)
	if err != nil {
		return err
	}

	if n := countNodes(iface, root); cfg.MaxTreeNodes > 0 && n > cfg.MaxTreeNodes {
		return fmt.Errorf("tree has %d nodes, exceeds configured max_tree_nodes %d", n, cfg.MaxTreeNodes)
	}

	ctx := uast.NewContext(iface, roleLookup)
	defer ctx.Close()

	writer := cmd.OutOrStdout()

	switch strings.ToLower(kind) {
	case "nodeset", "":
		nodes := ctx.FilterNodes(root, query)
		if err := ctx.LastError(); err != nil {
			return err
		}

		return writeResult(writer, nodes, iface, cfg.OutputFormat)
	case "boolean", "bool":
		result := ctx.FilterBool(root, query)
		if err := ctx.LastError(); err != nil {
			return err
		}

		fmt.Fprintln(writer, result)

		return nil
	case "number":
		result := ctx.FilterNumber(root, query)
		if err := ctx.LastError(); err != nil {
			return err
		}

		fmt.Fprintln(writer, result)

		return nil
	case "string":
		result := ctx.FilterString(root, query)
		if err := ctx.LastError(); err != nil {
			return err
		}

		fmt.Fprintln(writer, result)

		return nil
	default:
		return fmt.Errorf("unsupported result kind %q", kind)
	}
}

// loadTree reads path (or stdin, if path is "" or "-") as either JSON
// (a *demotree.Node tree) or XML (re-imported via uastxml.Load),
// auto-detected the same way the CLI this one is modeled on
// distinguishes a serialized tree from a source file.
func loadTree(stdin io.Reader, path string, roleResolve uastxml.RoleResolver) (uast.Node, uast.NodeInterface, error) {
	var r io.Reader

	switch path {
	case "", "-":
		r = stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		r = f
	}

	if strings.HasSuffix(path, ".xml") {
		root, err := uastxml.Load(r)
		if err != nil {
			return nil, nil, err
		}

		return root, uastxml.NewInterface(roleResolve), nil
	}

	var root *demotree.Node
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, nil, fmt.Errorf("decode tree: %w", err)
	}

	return root, demotree.Interface{}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}

// writeResult writes a node-set result in the configured output format:
// "text" prints one internal type per line, anything else (including
// the default "json") encodes the host nodes as a JSON array.
func writeResult(w io.Writer, nodes []uast.Node, iface uast.NodeInterface, format string) error {
	if strings.ToLower(format) == "text" {
		for _, n := range nodes {
			fmt.Fprintln(w, iface.InternalType(n))
		}

		return nil
	}

	return writeJSON(w, nodes)
}

// countNodes walks root with a plain pre-order Iterator (no projection,
// no XPath compile) so a tree over the configured max_tree_nodes limit
// is rejected before the more expensive filter/iterator work runs.
func countNodes(iface uast.NodeInterface, root uast.Node) int {
	it := uast.NewIterator(iface, root, uast.PreOrder)

	count := 0

	for {
		if _, ok := it.Next(); !ok {
			break
		}

		count++
	}

	return count
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

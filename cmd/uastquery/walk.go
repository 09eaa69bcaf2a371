package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uastcore/uastquery"
)

func walkCmd() *cobra.Command {
	var (
		input string
		order string
	)

	cmd := &cobra.Command{
		Use:   "walk <file>",
		Short: "Print every node's internal type in the given traversal order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}

			return runWalk(cmd, file, input, order)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, overrides the positional file argument")
	cmd.Flags().StringVarP(&order, "order", "r", "pre", "traversal order: pre, post, level, position")

	return cmd
}

func runWalk(cmd *cobra.Command, file, input, order string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	_, roleResolve, err := loadRoleTable(firstNonEmpty(roleCfg, cfg.RoleTableFile))
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

	treeOrder, err := parseOrder(order)
	if err != nil {
		return err
	}

	it := uast.NewIterator(iface, root, treeOrder)
	writer := cmd.OutOrStdout()

	if strings.ToLower(cfg.OutputFormat) == "json" || cfg.OutputFormat == "" {
		var types []string

		for {
			n, ok := it.Next()
			if !ok {
				break
			}

			types = append(types, iface.InternalType(n))
		}

		return writeJSON(writer, types)
	}

	for {
		n, ok := it.Next()
		if !ok {
			break
		}

		fmt.Fprintln(writer, iface.InternalType(n))
	}

	return nil
}

func parseOrder(s string) (uast.TreeOrder, error) {
	switch strings.ToLower(s) {
	case "pre", "":
		return uast.PreOrder, nil
	case "post":
		return uast.PostOrder, nil
	case "level":
		return uast.LevelOrder, nil
	case "position":
		return uast.PositionOrder, nil
	default:
		return 0, fmt.Errorf("unsupported traversal order %q", s)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/estree-tools/estree"
	"github.com/estree-tools/estree/ast"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Show node type frequencies for a parsed file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := parseSourceType()
	if err != nil {
		return err
	}

	var src *estree.Source
	if len(args) == 1 && args[0] != "-" {
		src, err = estree.NewFileSource(args[0])
	} else {
		src, err = estree.NewReaderSource("<stdin>", cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	prog, err := estree.Build(src, st)
	if err != nil {
		return err
	}

	counts := map[string]int{}
	total := 0
	ast.Walk(prog, func(n ast.Node) bool {
		counts[n.Type()]++
		total++
		return true
	})

	// Most frequent first, ties by name.
	types := maps.Keys(counts)
	slices.SortFunc(types, func(a, b string) int {
		if d := counts[b] - counts[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"Node type", "Count"})
	for _, typ := range types {
		tw.AppendRow(table.Row{typ, humanize.Comma(int64(counts[typ]))})
	}
	tw.AppendFooter(table.Row{"Total", humanize.Comma(int64(total))})
	tw.Render()

	fmt.Fprintf(cmd.OutOrStdout(), "%s nodes across %s types\n",
		humanize.Comma(int64(total)), humanize.Comma(int64(len(types))))
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/estree-tools/estree"
	"github.com/estree-tools/estree/ast"
)

// repl reads one statement per line and prints its rendered AST.
// Failures are reported and the loop keeps going; Ctrl-D exits.
func repl(cmd *cobra.Command, st ast.SourceType) error {
	out := cmd.OutOrStdout()
	prompt := color.New(color.FgGreen, color.Bold).Sprint("> ")
	warn := color.New(color.FgYellow).FprintfFunc()
	fail := color.New(color.FgRed).FprintfFunc()

	fmt.Fprintf(out, "estree %s interactive mode. Statements must fit on one line; Ctrl-D exits.\n", estree.Version)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		prog, err := estree.Build(estree.NewStringSource(line), st)
		if err != nil {
			warn(out, "%s\n", explain(err))
			continue
		}
		rendered, err := renderMode(prog)
		if err != nil {
			fail(out, "%s\n", explain(err))
			continue
		}
		fmt.Fprint(out, rendered)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

// printBannerTree draws a small tree, the closest thing this command
// has to a mascot.
func printBannerTree(out io.Writer) {
	leaves := color.New(color.FgGreen)
	trunk := color.New(color.FgHiYellow)
	leaves.Fprintln(out, "   *")
	leaves.Fprintln(out, "  ***")
	leaves.Fprintln(out, " *****")
	leaves.Fprintln(out, "*******")
	trunk.Fprintln(out, "   |")
	fmt.Fprintln(out, " estree")
}

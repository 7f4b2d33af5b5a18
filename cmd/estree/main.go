// Command estree parses JavaScript and prints the resulting ESTree
// AST as an ASCII tree. Without a file argument and with a terminal
// on standard input it drops into a line-by-line REPL.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"github.com/estree-tools/estree"
	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/builder"
	"github.com/estree-tools/estree/printer"
)

var (
	verbosity  int
	sourceType string
	short      bool
	configFile string
	noColor    bool
	showTree   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "estree [file]",
		Short: "JavaScript source to ESTree AST converter",
		Long: `estree parses JavaScript source text and prints its ESTree AST
as an indented ASCII tree. Reads the named file, or standard input
when the file is "-" or absent; an interactive terminal starts the
REPL instead.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			setupLogging(verbosity)
			return loadConfig(cmd)
		},
		RunE: runRoot,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "verbosity: repeat up to -vvvv for debug output")
	pf.StringVar(&sourceType, "source-type", "script", "parse goal, script or module")
	pf.BoolVar(&short, "short", false, "suppress type and loc fields in the rendered tree")
	pf.StringVar(&configFile, "config", "", "config file (default $HOME/.estree.yaml)")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&showTree, "tree", false, "print a tree and exit")

	rootCmd.AddCommand(statsCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging maps the -v count onto slog levels: 0 errors only, 1
// warnings, 2 info, 3 debug, 4 debug with source positions.
func setupLogging(v int) {
	opts := &slog.HandlerOptions{Level: slog.LevelError}
	switch {
	case v <= 0:
		opts.Level = slog.LevelError
	case v == 1:
		opts.Level = slog.LevelWarn
	case v == 2:
		opts.Level = slog.LevelInfo
	default:
		opts.Level = slog.LevelDebug
		opts.AddSource = v >= 4
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}

// loadConfig layers an optional YAML config file under the flags.
// Flags that were set explicitly always win.
func loadConfig(cmd *cobra.Command) error {
	vp := viper.New()
	if configFile != "" {
		vp.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			vp.AddConfigPath(home)
		}
		vp.SetConfigName(".estree")
		vp.SetConfigType("yaml")
	}
	vp.SetEnvPrefix("ESTREE")
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		// The default config file is optional; a named one must load.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		slog.Debug("loaded config", "file", vp.ConfigFileUsed())
	}

	for _, key := range []string{"source-type", "short"} {
		if flag := cmd.Flags().Lookup(key); flag != nil && !flag.Changed && vp.IsSet(key) {
			if err := flag.Value.Set(vp.GetString(key)); err != nil {
				return fmt.Errorf("config key %s: %w", key, err)
			}
		}
	}
	return nil
}

func parseSourceType() (ast.SourceType, error) {
	switch sourceType {
	case "script":
		return ast.ScriptSource, nil
	case "module":
		return ast.ModuleSource, nil
	}
	return "", fmt.Errorf("invalid source type %q, want script or module", sourceType)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if showTree {
		printBannerTree(cmd.OutOrStdout())
		return nil
	}

	st, err := parseSourceType()
	if err != nil {
		return err
	}

	var src *estree.Source
	switch {
	case len(args) == 1 && args[0] != "-":
		src, err = estree.NewFileSource(args[0])
	case len(args) == 0 && isatty.IsTerminal(os.Stdin.Fd()):
		return repl(cmd, st)
	default:
		src, err = estree.NewReaderSource("<stdin>", cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	prog, err := estree.Build(src, st)
	if err != nil {
		return err
	}
	return renderTo(cmd, prog)
}

func renderTo(cmd *cobra.Command, prog *ast.Program) error {
	out, err := renderMode(prog)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func renderMode(value any) (string, error) {
	if short {
		return estree.RenderShort(value)
	}
	return estree.Render(value)
}

// explain distinguishes the two failure classes for the user: a
// feature gap is valid JavaScript this front-end does not translate
// yet, anything else is a defect in the input.
func explain(err error) string {
	var unsupported *builder.UnsupportedFeatureError
	if errors.As(err, &unsupported) {
		return fmt.Sprintf("not translated yet: %s", unsupported.Feature)
	}
	var nesting *printer.InvalidNestingLevelError
	if errors.As(err, &nesting) {
		return fmt.Sprintf("internal: %v", nesting)
	}
	return err.Error()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "estree %s\n", estree.Version)
		},
	}
}

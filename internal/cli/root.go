// Package cli implements the linebreak command-line interface: a thin
// wrapper around the linebreak package for running the algorithm against
// an item script or a plain-text paragraph, with optional TOML-tuned
// demerit parameters and a Graphviz rendering of the chosen line sequence.
//
// All commands support --verbose (-v) for debug-level logging, following
// the pattern of carrying a logger through context.Context rather than
// a package-level global.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/linebreak"
	"seehuhn.de/go/linebreak/dsl"
	"seehuhn.de/go/linebreak/tokenize"
)

var (
	version string
	commit  string
)

// SetVersion sets the version metadata shown by --version, normally called
// from main with values injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// breakOpts holds the command-line flags for the break command.
type breakOpts struct {
	script     string
	text       string
	width      float64
	config     string
	dot        string
	outputFile string
}

// Execute runs the linebreak CLI and returns an error if the command fails.
func Execute() error {
	var verbose bool
	opts := breakOpts{width: 72}

	root := &cobra.Command{
		Use:          "linebreak",
		Short:        "Compute Knuth-Plass optimal line breaks for an item stream",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreak(cmd.Context(), opts, os.Stdout)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("linebreak %s\ncommit: %s\n", version, commit))

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVar(&opts.script, "script", "", "path to an item-script file (see package dsl); - reads stdin")
	root.Flags().StringVar(&opts.text, "text", "", "path to a plain-text paragraph; - reads stdin")
	root.Flags().Float64Var(&opts.width, "width", 72, "target line width")
	root.Flags().StringVar(&opts.config, "config", "", "TOML file overlaying the demerit parameters")
	root.Flags().StringVar(&opts.dot, "dot", "", "write an SVG rendering of the chosen line sequence to this path")
	root.Flags().StringVarP(&opts.outputFile, "output", "o", "", "write the line report here instead of stdout")

	return root.ExecuteContext(context.Background())
}

func runBreak(ctx context.Context, opts breakOpts, stdout io.Writer) error {
	logger := loggerFromContext(ctx)

	items, err := loadItems(opts)
	if err != nil {
		return err
	}
	logger.Debugf("loaded %d items", len(items))

	lbOpts, err := loadOptions(opts.config, linebreak.Options{})
	if err != nil {
		return err
	}

	lines, err := linebreak.Break(items, opts.width, lbOpts)
	if err != nil {
		return fmt.Errorf("break: %w", err)
	}
	logger.Infof("computed %d lines at width %.1f", len(lines), opts.width)

	out := stdout
	if opts.outputFile != "" {
		f, err := os.Create(opts.outputFile)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}
	fmt.Fprint(out, linebreak.Dump(lines))

	if opts.dot != "" {
		svg, err := renderDOT(ctx, linesToDOT(items, lines))
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.dot, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.dot, err)
		}
		logger.Infof("wrote %s", opts.dot)
	}
	return nil
}

func loadItems(opts breakOpts) ([]linebreak.Item, error) {
	switch {
	case opts.script != "":
		data, err := readSource(opts.script)
		if err != nil {
			return nil, err
		}
		items, err := dsl.Compile(string(data))
		if err != nil {
			return nil, err
		}
		return items, nil

	case opts.text != "":
		data, err := readSource(opts.text)
		if err != nil {
			return nil, err
		}
		return tokenize.Text(string(data), tokenize.Options{}), nil

	default:
		return nil, fmt.Errorf("one of --script or --text is required")
	}
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Package main is the entry point for the Miles system prompt CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gerunddev/miles/internal/config"
	"github.com/gerunddev/miles/internal/log"
	"github.com/gerunddev/miles/internal/prompt"
	"github.com/gerunddev/miles/internal/tui"
)

// previewRunner opens the composed prompt in the pager.
// It can be replaced in tests to avoid starting a terminal program.
var previewRunner = tui.RunPreview

// stdinPath is the --file value that reads a section from stdin.
const stdinPath = "-"

// composeOptions holds the flag values of the root command.
type composeOptions struct {
	configPath string
	files      []string
	sections   []string
	preview    bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts composeOptions

	rootCmd := &cobra.Command{
		Use:   "miles",
		Short: "Compose the Miles system prompt",
		Long: `Miles prints the system prompt for the XXL Vibe product architect.

The six built-in persona sections always come first, in a fixed order.
Extension sections are appended after them in this order: files listed in
the config "extensions" key, the config "sections" key, --file values, then
--section values. Blank sections are dropped with a warning. Relative paths
in the config "extensions" key are resolved against the config file's
directory; --file paths are resolved against the working directory.

Examples:
  miles                                   # Built-in prompt only
  miles -s "Extra rule: always confirm destructive actions."
  miles -f branding.md -f policy.md       # Append sections from files
  cat tenant.md | miles -f -              # Append a section from stdin
  miles --preview                         # Scroll through the result`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to config file (default ~/.config/miles/config.json)")
	rootCmd.Flags().StringArrayVarP(&opts.files, "file", "f", nil,
		"Append an extension section read from a file, or - for stdin (repeatable)")
	rootCmd.Flags().StringArrayVarP(&opts.sections, "section", "s", nil,
		"Append an inline extension section (repeatable)")
	rootCmd.Flags().BoolVar(&opts.preview, "preview", false,
		"Open the composed prompt in a scrollable preview")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(sectionsCmd())

	return rootCmd
}

// runCompose builds the prompt from the built-ins plus every configured
// extension and writes it to stdout or the preview.
func runCompose(cmd *cobra.Command, opts composeOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if err := applyLogLevel(cfg.LogLevel, opts.verbose); err != nil {
		return err
	}

	extensions, err := collectExtensions(cmd.InOrStdin(), cfg, opts)
	if err != nil {
		return err
	}

	result := prompt.BuildSystemPrompt(extensions...)
	included := countIncluded(extensions)
	log.Debug("composed system prompt",
		"builtin", len(prompt.BuiltinSections()),
		"extensions", included,
		"dropped", len(extensions)-included,
		"chars", len(result))

	if opts.preview {
		return previewRunner("Miles", result, len(prompt.BuiltinSections())+included)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

// loadConfig reads the config from path, or from the standard location when
// path is empty. An explicit path must exist.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	return config.LoadFromPath(path)
}

func applyLogLevel(name string, verbose bool) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	if verbose {
		level = charmlog.DebugLevel
	}
	log.SetLevel(level)
	return nil
}

// collectExtensions gathers extension sections in their documented order.
func collectExtensions(stdin io.Reader, cfg *config.Config, opts composeOptions) ([]string, error) {
	extensions, err := cfg.ExtensionSections()
	if err != nil {
		return nil, err
	}

	readStdin := false
	for _, path := range opts.files {
		if path == stdinPath {
			if readStdin {
				return nil, errors.New("stdin (-) can only be used once")
			}
			readStdin = true

			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			warnIfBlank(string(data), "stdin")
			extensions = append(extensions, string(data))
			continue
		}

		content, err := config.ReadSectionFile(path)
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, content)
	}

	for i, section := range opts.sections {
		warnIfBlank(section, fmt.Sprintf("--section[%d]", i))
	}

	return append(extensions, opts.sections...), nil
}

// warnIfBlank reports a section that composition will drop.
func warnIfBlank(section, source string) {
	if prompt.Normalize(section) == "" {
		log.Warn("blank extension section will be skipped", "source", source)
	}
}

// countIncluded returns how many extensions survive normalization.
func countIncluded(extensions []string) int {
	n := 0
	for _, s := range extensions {
		if prompt.Normalize(s) != "" {
			n++
		}
	}
	return n
}

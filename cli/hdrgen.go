// Package cli implements the hdrgen command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/hdrgen"
	"github.com/teranos/hdrgen/config"
	"github.com/teranos/hdrgen/errors"
	"github.com/teranos/hdrgen/golang"
	"github.com/teranos/hdrgen/logger"
	"github.com/teranos/hdrgen/rust"
	"github.com/teranos/hdrgen/zig"
)

const usageLine = "Usage: hdrgen <header_file.h>"

// HdrgenCmd represents the hdrgen command
var HdrgenCmd = &cobra.Command{
	Use:   "hdrgen <header_file.h>",
	Short: "Generate enum source from a C constant header",
	Long: `Generate enumerated-type source code from a C-style header of grouped
integer constants.

The header groups "const long Name = Value;" declarations under
"/* module Name */" markers; each marker becomes one enum in the generated
output, written to stdout. Modules without constants are skipped, and the
"UIA_" prefix is stripped from module names.

The target language comes from configuration (HDRGEN_LANG, ~/.hdrgen/
config.toml, or a project hdrgen.toml), not from a flag. The default is Zig.

Examples:
  hdrgen uiautomation.h                   # Zig enums to stdout
  HDRGEN_LANG=rust hdrgen uiautomation.h  # Rust enums instead
  hdrgen uiautomation.h > generated.zig`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if err := logger.Initialize(cfg.Verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	RunE: runHdrgen,
}

func init() {
	HdrgenCmd.AddCommand(VersionCmd)
}

func runHdrgen(cmd *cobra.Command, args []string) error {
	// Missing argument and missing file both print a message and terminate
	// normally. The exit status stays zero for both; callers scripting
	// around the original tool relied on that.
	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	gen, err := generatorFor(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: File %s not found.\n", path)
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", path)
	}

	result := hdrgen.Parse(string(contents))
	logParseStats(result, gen)

	fmt.Fprintln(cmd.OutOrStdout(), gen.GenerateFile(result))
	return nil
}

// generatorFor picks the emitter for the configured target language
func generatorFor(cfg *config.Config) (hdrgen.Generator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Lang)) {
	case "zig":
		return zig.NewGenerator(), nil
	case "go", "golang":
		return golang.NewGenerator(cfg.GoPackage), nil
	case "rust", "rs":
		return rust.NewGenerator(), nil
	default:
		return nil, errors.Newf("invalid language: %s (supported: zig, go, rust)", cfg.Lang)
	}
}

// logParseStats reports module and constant counts on stderr. Invisible at
// the default verbosity.
func logParseStats(result *hdrgen.Result, gen hdrgen.Generator) {
	empty := 0
	constants := 0
	for _, m := range result.Modules {
		if len(m.Constants) == 0 {
			empty++
			logger.Debugw("Skipping empty module", "module", m.Name)
			continue
		}
		constants += len(m.Constants)
		logger.Debugw("Parsed module", "module", m.Name, "constants", len(m.Constants))
	}
	logger.Infow("Parsed header",
		"lang", gen.Language(),
		"modules", len(result.Modules),
		"empty", empty,
		"constants", constants)
}

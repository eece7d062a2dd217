package cmd

import (
	"github.com/cottand/elmgen/backend"
	"github.com/cottand/elmgen/internal/log"
	"github.com/cottand/elmgen/internal/sample"
	"github.com/cottand/elmgen/name"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var GenerateCmd = &cobra.Command{
	Use:          "generate",
	Short:        "Render the built-in sample definitions to .elm files",
	RunE:         runGenerate,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var (
	generateOutPath *string
	logLevel        *int
)

func init() {
	generateOutPath = GenerateCmd.Flags().StringP("out", "o", "elm-out", "directory to write generated files to")
	logLevel = GenerateCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	slog.SetDefault(log.DefaultLogger)
	log.SetLevel(slog.Level(*logLevel))

	files := backend.Modules(sample.Definitions())
	modules := make([]name.Module, 0, len(files))
	for module := range files {
		modules = append(modules, module)
	}
	slices.Sort(modules)

	for _, module := range modules {
		if err := write(module, files[module], *generateOutPath); err != nil {
			return err
		}
	}
	return nil
}

// write puts a module's source at out/Its/Dotted/Path.elm.
func write(module name.Module, source, outPath string) error {
	relative := strings.ReplaceAll(string(module), ".", string(os.PathSeparator)) + ".elm"
	target := filepath.Join(outPath, relative)
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return errors.Wrapf(err, "could not create output directory for %v", module)
	}
	if err := os.WriteFile(target, []byte(source), 0o644); err != nil {
		return errors.Wrapf(err, "could not write %v", target)
	}
	slog.Info("wrote file", "module", module, "path", target)
	return nil
}

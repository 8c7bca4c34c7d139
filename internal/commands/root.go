// Package commands implements the pathlist command-line interface.
package commands

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/pathlist"
	"github.com/jmgilman/go/pathlist/errors"
	"github.com/jmgilman/go/pathlist/fs/billy"
	"github.com/jmgilman/go/pathlist/internal/config"
	"github.com/jmgilman/go/pathlist/internal/output"
)

// app carries state shared by all subcommands. It is populated by the root
// command's PersistentPreRunE once flags have been parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	viper   *viper.Viper
	cfgFile string

	cfg      *config.Config
	printer  *output.Printer
	explorer *pathlist.Explorer
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, viper: config.NewViper()}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

// newRootCmd creates the root command with every subcommand attached.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathlist",
		Short: "Explore directory trees with bounded, counted listings",
		Long: `pathlist lists directories and renders directory trees.

Listings print as counted previews such as "(#3) [a, b, c]" and are truncated
to a configurable number of lines so huge directories stay readable.

Examples:
  pathlist ls                       # direct children of the working directory
  pathlist rls src --pattern .go    # every Go file below src
  pathlist tree --depth 2           # two levels of the working directory`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default: ./pathlist.yaml or the user config directory)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Int("max-lines", 0, "Maximum lines shown for a listing")
	flags.Int("max-width", 0, "Maximum width of a single-line listing")
	flags.String("format", "", "Output format: text, json or yaml")

	for key, name := range map[string]string{
		config.KeyLogLevel: "log-level",
		config.KeyMaxLines: "max-lines",
		config.KeyMaxWidth: "max-width",
		config.KeyFormat:   "format",
	} {
		_ = a.viper.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(newLsCmd(a))
	cmd.AddCommand(newRlsCmd(a))
	cmd.AddCommand(newTreeCmd(a))

	return cmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.viper, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.printer = output.New(a.stdout, a.stderr, cfg.Format)

	if cfg.File != "" && cfg.LogLevel == pathlist.LogLevelDebug {
		a.printer.Info("Loaded config: " + cfg.File)
	}

	a.explorer = pathlist.New(billy.NewLocal(),
		pathlist.WithLogger(pathlist.NewLogger(a.stderr, cfg.LogLevel)),
		pathlist.WithMaxLines(cfg.MaxLines),
		pathlist.WithMaxWidth(cfg.MaxWidth),
	)
	return nil
}

func (a *app) reportError(err error) {
	printer := a.printer
	if printer == nil {
		printer = output.New(a.stdout, a.stderr, output.FormatText)
	}
	printer.Error(err)
}

// resolvePath turns the optional path argument into an absolute Path. The
// local provider is rooted at "/", so relative paths must be resolved here.
func resolvePath(args []string) (pathlist.Path, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return pathlist.Path{}, errors.WrapFS(err, "resolve", target)
	}
	return pathlist.NewPath(filepath.ToSlash(abs)), nil
}
